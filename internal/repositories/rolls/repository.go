// Package rolls provides short-lived persistence for d10 roll results,
// so recent rolls can be reviewed before they age out.
package rolls

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsmock github.com/natelandau/valentina-sub000/internal/repositories/rolls Repository

import (
	"context"
	"time"
)

// RollRecord is one resolved dice pool roll
type RollRecord struct {
	ID          string
	CharacterID string
	CampaignID  string

	Pool       int
	Difficulty int
	Dice       []int
	Successes  int
	Criticals  int
	Botches    int
	Result     int
	ResultType string

	RolledAt  time.Time
	ExpiresAt time.Time
}

// Repository defines the interface for roll history persistence.
// Records expire on their own; there is no delete.
type Repository interface {
	// Record stores a roll result with the given TTL
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)

	// ListByCharacter retrieves the unexpired rolls for a character,
	// most recent first
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error)
}

// RecordInput defines the input for storing a roll
type RecordInput struct {
	Record *RollRecord
	TTL    time.Duration
}

// RecordOutput defines the output for storing a roll
type RecordOutput struct {
	Record *RollRecord
}

// ListByCharacterInput defines the input for listing a character's rolls
type ListByCharacterInput struct {
	CharacterID string
}

// ListByCharacterOutput defines the output for listing a character's rolls
type ListByCharacterOutput struct {
	Records []*RollRecord
}
