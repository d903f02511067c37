package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierbriand/dolmenwood-sub001/internal/config"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/redis"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/creatures"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/tables"
)

var loadRedisAddr string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load YAML table and creature definitions into Redis",
	Long: `Read the YAML data directory and write every table and creature into
Redis, so later runs can use --redis-backed storage and history.
Existing entries with the same names are replaced.`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadRedisAddr, "redis", "", "redis address (defaults to DOLMENWOOD_REDIS_ADDR)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	addr := loadRedisAddr
	if addr == "" {
		addr = cfg.RedisAddr
	}
	if addr == "" {
		return errors.InvalidArgument("a redis address is required, via --redis or DOLMENWOOD_REDIS_ADDR")
	}

	client, err := redis.NewClient(addr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}

	// The YAML repositories validate everything on load, so nothing
	// defective reaches Redis.
	tableSource, err := tables.NewYAMLRepository(&tables.YAMLConfig{Dir: cfg.TablesDir()})
	if err != nil {
		return err
	}
	creatureSource, err := creatures.NewYAMLRepository(&creatures.YAMLConfig{Dir: cfg.CreaturesDir()})
	if err != nil {
		return err
	}

	tableSink, err := tables.NewRedisRepository(&tables.RedisConfig{Client: client})
	if err != nil {
		return err
	}
	creatureSink, err := creatures.NewRedisRepository(&creatures.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	ctx := context.Background()

	tableList, err := tableSource.List(ctx)
	if err != nil {
		return err
	}
	for _, table := range tableList.Tables {
		if err := tableSink.Save(ctx, table); err != nil {
			return err
		}
	}

	creatureList, err := creatureSource.List(ctx)
	if err != nil {
		return err
	}
	for _, creature := range creatureList.Creatures {
		if err := creatureSink.Save(ctx, creature); err != nil {
			return err
		}
	}

	fmt.Printf("Loaded %d tables and %d creatures into %s\n",
		len(tableList.Tables), len(creatureList.Creatures), addr)
	return nil
}
