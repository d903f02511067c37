package tables

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	redisclient "github.com/xavierbriand/dolmenwood-sub001/internal/redis"
)

const (
	// Key pattern: table:{name}
	tableKeyPrefix = "table:"
	// Set of all stored table names, kept for List
	tableIndexKey = "table:__names"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

// RedisRepository is the Redis-backed table store. It is exported
// because the load command needs the Writer side as well as the read
// port.
type RedisRepository struct {
	client redisclient.Client
}

// Ensure RedisRepository implements both ports
var (
	_ Repository = (*RedisRepository)(nil)
	_ Writer     = (*RedisRepository)(nil)
)

// NewRedisRepository creates a Redis-backed table repository. Tables
// are stored as JSON values and indexed in a name set for listing.
func NewRedisRepository(cfg *RedisConfig) (*RedisRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &RedisRepository{client: cfg.Client}, nil
}

// GetByName retrieves a table by its exact name
func (r *RedisRepository) GetByName(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("table name is required")
	}

	data, err := r.client.Get(ctx, tableKeyPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.TableNotFound(input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get table %q", input.Name)
	}

	var table entities.LookupTable
	if err := json.Unmarshal([]byte(data), &table); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal table %q", input.Name)
	}

	return &GetOutput{Table: &table}, nil
}

// List returns all stored tables, ordered by name
func (r *RedisRepository) List(ctx context.Context) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, tableIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list table names")
	}
	sort.Strings(names)

	out := make([]*entities.LookupTable, 0, len(names))
	for _, name := range names {
		got, err := r.GetByName(ctx, GetInput{Name: name})
		if err != nil {
			if errors.IsTableNotFound(err) {
				// Index entry outlived its value; skip it.
				continue
			}
			return nil, err
		}
		out = append(out, got.Table)
	}

	return &ListOutput{Tables: out}, nil
}

// Save stores or replaces a table under its name
func (r *RedisRepository) Save(ctx context.Context, table *entities.LookupTable) error {
	if table == nil {
		return errors.InvalidArgument("table cannot be nil")
	}
	if table.Name == "" {
		return errors.InvalidArgument("table name is required")
	}

	data, err := json.Marshal(table)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal table %q", table.Name)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tableKeyPrefix+table.Name, data, 0)
	pipe.SAdd(ctx, tableIndexKey, table.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store table %q", table.Name)
	}

	return nil
}
