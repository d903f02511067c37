package creatures

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
	// Key pattern: creature:{name}
	creatureKeyPrefix = "creature:"
	// Set of all stored creature names, kept for List
	creatureIndexKey = "creature:__names"
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

// RedisRepository is the Redis-backed creature store. It is exported
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

// NewRedisRepository creates a Redis-backed creature repository.
func NewRedisRepository(cfg *RedisConfig) (*RedisRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &RedisRepository{client: cfg.Client}, nil
}

// GetByName retrieves a creature by its exact name
func (r *RedisRepository) GetByName(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	data, err := r.client.Get(ctx, creatureKeyPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.CreatureNotFound(input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get creature %q", input.Name)
	}

	var creature entities.CreatureDefinition
	if err := json.Unmarshal([]byte(data), &creature); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal creature %q", input.Name)
	}

	return &GetOutput{Creature: &creature}, nil
}

// List returns all stored creatures, ordered by name
func (r *RedisRepository) List(ctx context.Context) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, creatureIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creature names")
	}
	sort.Strings(names)

	out := make([]*entities.CreatureDefinition, 0, len(names))
	for _, name := range names {
		got, err := r.GetByName(ctx, GetInput{Name: name})
		if err != nil {
			if errors.IsCreatureNotFound(err) {
				// Index entry outlived its value; skip it.
				continue
			}
			return nil, err
		}
		out = append(out, got.Creature)
	}

	return &ListOutput{Creatures: out}, nil
}

// Save stores or replaces a creature under its name
func (r *RedisRepository) Save(ctx context.Context, creature *entities.CreatureDefinition) error {
	if creature == nil {
		return errors.InvalidArgument("creature cannot be nil")
	}
	if creature.Name == "" {
		return errors.InvalidArgument("creature name is required")
	}

	data, err := json.Marshal(creature)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal creature %q", creature.Name)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, creatureKeyPrefix+creature.Name, data, 0)
	pipe.SAdd(ctx, creatureIndexKey, creature.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store creature %q", creature.Name)
	}

	return nil
}
