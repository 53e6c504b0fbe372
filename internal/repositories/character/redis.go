package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/pkg/clock"
	redisclient "github.com/natelandau/valentina-sub000/internal/redis"
)

const (
	characterKeyPrefix  = "character:"
	userIndexPrefix     = "character:user:"
	campaignIndexPrefix = "character:campaign:"

	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errUserIDEmpty      = "user ID cannot be empty"
	errCampaignIDEmpty  = "campaign ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	now := r.clock.Now().Unix()
	input.Character.CreatedAt = now
	input.Character.UpdatedAt = now

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Character.UserID != "" {
		pipe.SAdd(ctx, userIndexPrefix+input.Character.UserID, input.Character.ID)
	}
	if input.Character.CampaignID != "" {
		pipe.SAdd(ctx, campaignIndexPrefix+input.Character.CampaignID, input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char wod.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: &char}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var existing wod.Character
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing character")
	}

	input.Character.CreatedAt = existing.CreatedAt
	input.Character.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	// Re-index on owner or campaign change
	if existing.UserID != input.Character.UserID {
		if existing.UserID != "" {
			pipe.SRem(ctx, userIndexPrefix+existing.UserID, existing.ID)
		}
		if input.Character.UserID != "" {
			pipe.SAdd(ctx, userIndexPrefix+input.Character.UserID, input.Character.ID)
		}
	}
	if existing.CampaignID != input.Character.CampaignID {
		if existing.CampaignID != "" {
			pipe.SRem(ctx, campaignIndexPrefix+existing.CampaignID, existing.ID)
		}
		if input.Character.CampaignID != "" {
			pipe.SAdd(ctx, campaignIndexPrefix+input.Character.CampaignID, input.Character.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var existing wod.Character
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if existing.UserID != "" {
		pipe.SRem(ctx, userIndexPrefix+existing.UserID, existing.ID)
	}
	if existing.CampaignID != "" {
		pipe.SRem(ctx, campaignIndexPrefix+existing.CampaignID, existing.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByUserID(ctx context.Context, input ListByUserIDInput) (*ListByUserIDOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, userIndexPrefix+input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for user")
	}

	return &ListByUserIDOutput{Characters: r.getMany(ctx, ids)}, nil
}

func (r *redisRepository) ListByCampaignID(ctx context.Context, input ListByCampaignIDInput) (*ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, campaignIndexPrefix+input.CampaignID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for campaign")
	}

	return &ListByCampaignIDOutput{Characters: r.getMany(ctx, ids)}, nil
}

// getMany resolves an index's member IDs, skipping entries whose
// document has gone missing or no longer parses
func (r *redisRepository) getMany(ctx context.Context, ids []string) []*wod.Character {
	chars := make([]*wod.Character, 0, len(ids))
	for _, id := range ids {
		result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
		if err != nil {
			slog.WarnContext(ctx, "skipping unresolvable character in index",
				"character_id", id,
				"error", err)
			continue
		}

		var char wod.Character
		if err := json.Unmarshal([]byte(result), &char); err != nil {
			slog.WarnContext(ctx, "skipping unparseable character in index",
				"character_id", id,
				"error", err)
			continue
		}
		chars = append(chars, &char)
	}
	return chars
}
