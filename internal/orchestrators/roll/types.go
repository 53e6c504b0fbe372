package roll

import (
	"time"

	"github.com/natelandau/valentina-sub000/internal/repositories/rolls"
)

// ResultType classifies the outcome of a d10 pool roll
type ResultType string

const (
	ResultBotch    ResultType = "BOTCH"
	ResultFailure  ResultType = "FAILURE"
	ResultSuccess  ResultType = "SUCCESS"
	ResultCritical ResultType = "CRITICAL"
)

// RollPoolInput defines the input for rolling a d10 pool
type RollPoolInput struct {
	CharacterID string
	CampaignID  string
	Pool        int
	// Difficulty defaults to 6 when zero
	Difficulty int
	// TTL overrides how long the roll stays in history. Zero uses the
	// repository default.
	TTL time.Duration
}

// RollPoolOutput defines the output for rolling a d10 pool
type RollPoolOutput struct {
	Record     *rolls.RollRecord
	Dice       []int
	Successes  int
	Criticals  int
	Botches    int
	Result     int
	ResultType ResultType
}

// ListRollsInput defines the input for reading a character's roll history
type ListRollsInput struct {
	CharacterID string
}

// ListRollsOutput defines the output for reading a character's roll history
type ListRollsOutput struct {
	Records []*rolls.RollRecord
}
