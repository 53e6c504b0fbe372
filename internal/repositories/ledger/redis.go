package ledger

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/natelandau/valentina-sub000/internal/errors"
	redisclient "github.com/natelandau/valentina-sub000/internal/redis"
)

const (
	ledgerKeyPrefix = "ledger:"

	errUserIDEmpty     = "user ID cannot be empty"
	errCampaignIDEmpty = "campaign ID cannot be empty"
	errAmountNegative  = "amount cannot be negative"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis ledger repository
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func balanceKey(userID, campaignID string) string {
	return ledgerKeyPrefix + userID + ":" + campaignID
}

func validateKey(userID, campaignID string) error {
	if userID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	if campaignID == "" {
		return errors.InvalidArgument(errCampaignIDEmpty)
	}
	return nil
}

// load reads the balance document; an unwritten balance is zero
func (r *redisRepository) load(ctx context.Context, userID, campaignID string) (*Balance, error) {
	result, err := r.client.Get(ctx, balanceKey(userID, campaignID)).Result()
	if err != nil {
		if err == redis.Nil {
			return &Balance{UserID: userID, CampaignID: campaignID}, nil
		}
		return nil, errors.Wrapf(err, "failed to get balance")
	}

	var bal Balance
	if err := json.Unmarshal([]byte(result), &bal); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal balance")
	}
	return &bal, nil
}

func (r *redisRepository) store(ctx context.Context, bal *Balance) error {
	data, err := json.Marshal(bal)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal balance")
	}
	if err := r.client.Set(ctx, balanceKey(bal.UserID, bal.CampaignID), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store balance")
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.UserID, input.CampaignID); err != nil {
		return nil, err
	}

	bal, err := r.load(ctx, input.UserID, input.CampaignID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Balance: bal}, nil
}

func (r *redisRepository) Award(ctx context.Context, input AwardInput) (*AwardOutput, error) {
	if err := validateKey(input.UserID, input.CampaignID); err != nil {
		return nil, err
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument(errAmountNegative)
	}

	bal, err := r.load(ctx, input.UserID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	bal.Current += input.Amount
	bal.Lifetime += input.Amount

	if err := r.store(ctx, bal); err != nil {
		return nil, err
	}
	return &AwardOutput{Balance: bal}, nil
}

func (r *redisRepository) Spend(ctx context.Context, input SpendInput) (*SpendOutput, error) {
	if err := validateKey(input.UserID, input.CampaignID); err != nil {
		return nil, err
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument(errAmountNegative)
	}

	bal, err := r.load(ctx, input.UserID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	if bal.Current < input.Amount {
		return nil, errors.NotEnoughPointsf(
			"need %d experience but only %d available", input.Amount, bal.Current)
	}
	bal.Current -= input.Amount

	if err := r.store(ctx, bal); err != nil {
		return nil, err
	}
	return &SpendOutput{Balance: bal}, nil
}

func (r *redisRepository) Refund(ctx context.Context, input RefundInput) (*RefundOutput, error) {
	if err := validateKey(input.UserID, input.CampaignID); err != nil {
		return nil, err
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument(errAmountNegative)
	}

	bal, err := r.load(ctx, input.UserID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	// Refunds restore spendable experience only. Lifetime tracks what
	// was earned, which a refund does not change.
	bal.Current += input.Amount

	if err := r.store(ctx, bal); err != nil {
		return nil, err
	}
	return &RefundOutput{Balance: bal}, nil
}

func (r *redisRepository) AddCoolPoints(ctx context.Context, input AddCoolPointsInput) (*AddCoolPointsOutput, error) {
	if err := validateKey(input.UserID, input.CampaignID); err != nil {
		return nil, err
	}
	if input.Count < 0 {
		return nil, errors.InvalidArgument("count cannot be negative")
	}

	bal, err := r.load(ctx, input.UserID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	xp := input.Count * CoolPointValue
	bal.CoolPoints += input.Count
	bal.Current += xp
	bal.Lifetime += xp

	if err := r.store(ctx, bal); err != nil {
		return nil, err
	}
	return &AddCoolPointsOutput{Balance: bal}, nil
}
