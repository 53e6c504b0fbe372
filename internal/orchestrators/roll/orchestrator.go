// Package roll implements the d10 dice pool orchestrator
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/natelandau/valentina-sub000/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/repositories/rolls"
)

const (
	// DieSize is the only die these pools roll
	DieSize = 10

	// DefaultDifficulty applies when the input leaves difficulty unset
	DefaultDifficulty = 6

	// MaxPoolSize caps the number of dice in a single roll
	MaxPoolSize = 100
)

// Service defines the interface for dice pool operations
type Service interface {
	// RollPool rolls a pool of d10s against a difficulty and records
	// the result in the character's roll history
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)

	// ListRolls retrieves a character's unexpired roll history
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	RollsRepo rolls.Repository
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.RollsRepo == nil {
		vb.RequiredField("RollsRepo")
	}

	return vb.Build()
}

// Orchestrator implements the roll service
type Orchestrator struct {
	rollsRepo rolls.Repository
	roller    dice.Roller
}

// NewOrchestrator creates a new roll orchestrator with the given dependencies
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Orchestrator{
		rollsRepo: cfg.RollsRepo,
		roller:    roller,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// rollEntity implements core.Entity so rolls can be attributed to the
// character that made them
type rollEntity struct {
	id string
}

func (e *rollEntity) GetID() string   { return e.id }
func (e *rollEntity) GetType() string { return "character" }

var _ core.Entity = (*rollEntity)(nil)

// RollPool rolls a pool of d10s against a difficulty.
//
// Each die at or above the difficulty is a success, except tens, which
// are criticals. Ones are botches. Criticals and botches cancel pairwise;
// surviving criticals count double and surviving botches subtract. A
// negative result is a botch, zero is a failure, and a result exceeding
// the pool size is a critical.
func (o *Orchestrator) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Pool < 0 {
		return nil, errors.InvalidArgumentf("pool cannot be negative, got %d", input.Pool)
	}
	if input.Pool > MaxPoolSize {
		return nil, errors.InvalidArgumentf("pool cannot exceed %d, got %d", MaxPoolSize, input.Pool)
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = DefaultDifficulty
	}
	if difficulty < 0 || difficulty > DieSize {
		return nil, errors.InvalidArgumentf("difficulty must be between 0 and %d, got %d", DieSize, input.Difficulty)
	}

	rolled, err := o.roller.RollN(input.Pool, DieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", input.Pool, DieSize)
	}

	var successes, criticals, botches int
	for _, die := range rolled {
		switch {
		case die == 1:
			botches++
		case die == DieSize:
			criticals++
		case die >= difficulty:
			successes++
		}
	}

	result := successes + 2*max(0, criticals-botches) - max(0, botches-criticals)
	resultType := classify(result, input.Pool)

	entity := &rollEntity{id: input.CharacterID}

	record := &rolls.RollRecord{
		CharacterID: entity.GetID(),
		CampaignID:  input.CampaignID,
		Pool:        input.Pool,
		Difficulty:  difficulty,
		Dice:        rolled,
		Successes:   successes,
		Criticals:   criticals,
		Botches:     botches,
		Result:      result,
		ResultType:  string(resultType),
	}

	recorded, err := o.rollsRepo.Record(ctx, rolls.RecordInput{
		Record: record,
		TTL:    input.TTL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record roll")
	}

	slog.InfoContext(ctx, "rolled dice pool",
		"character_id", entity.GetID(),
		"pool", input.Pool,
		"difficulty", difficulty,
		"result", result,
		"result_type", resultType,
	)

	return &RollPoolOutput{
		Record:     recorded.Record,
		Dice:       rolled,
		Successes:  successes,
		Criticals:  criticals,
		Botches:    botches,
		Result:     result,
		ResultType: resultType,
	}, nil
}

// ListRolls retrieves a character's unexpired roll history, most
// recent first
func (o *Orchestrator) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.rollsRepo.ListByCharacter(ctx, rolls.ListByCharacterInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rolls")
	}

	return &ListRollsOutput{Records: out.Records}, nil
}

func classify(result, pool int) ResultType {
	switch {
	case result < 0:
		return ResultBotch
	case result == 0:
		return ResultFailure
	case result > pool:
		return ResultCritical
	default:
		return ResultSuccess
	}
}
