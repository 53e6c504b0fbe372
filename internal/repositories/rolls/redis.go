package rolls

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/pkg/clock"
	"github.com/natelandau/valentina-sub000/internal/pkg/idgen"
	redisclient "github.com/natelandau/valentina-sub000/internal/redis"
)

const (
	// Key pattern: roll:{id}, index roll:character:{character_id}
	rollKeyPrefix        = "roll:"
	characterIndexPrefix = "roll:character:"

	defaultTTL = 24 * time.Hour

	errRecordNil       = "record cannot be nil"
	errRollCharacterID = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis rolls repository
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed rolls repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = idgen.NewUUID("roll")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  g,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.CharacterID == "" {
		return nil, errors.InvalidArgument(errRollCharacterID)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	now := r.clock.Now()
	rec := input.Record
	if rec.ID == "" {
		rec.ID = r.idGen.Generate()
	}
	rec.RolledAt = now
	rec.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll record")
	}

	indexKey := characterIndexPrefix + rec.CharacterID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, rollKeyPrefix+rec.ID, data, ttl)
	pipe.ZAdd(ctx, indexKey, goredis.Z{Score: float64(now.UnixNano()), Member: rec.ID})
	// The index outlives its newest member by the member's TTL, so an
	// expired record never strands a live index forever
	pipe.Expire(ctx, indexKey, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to record roll")
	}

	return &RecordOutput{Record: rec}, nil
}

func (r *redisRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errRollCharacterID)
	}

	indexKey := characterIndexPrefix + input.CharacterID
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roll index")
	}

	records := make([]*RollRecord, 0, len(ids))
	var expired []interface{}
	for _, id := range ids {
		result, err := r.client.Get(ctx, rollKeyPrefix+id).Result()
		if err != nil {
			if err == goredis.Nil {
				expired = append(expired, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to read roll record")
		}

		var rec RollRecord
		if err := json.Unmarshal([]byte(result), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll record")
		}
		records = append(records, &rec)
	}

	// Lazily prune index entries whose record has expired
	if len(expired) > 0 {
		if err := r.client.ZRem(ctx, indexKey, expired...).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to prune roll index")
		}
	}

	return &ListByCharacterOutput{Records: records}, nil
}
