// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/natelandau/valentina-sub000/internal/repositories/character Repository

import (
	"context"

	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByUserID retrieves all characters owned by a user
	ListByUserID(ctx context.Context, input ListByUserIDInput) (*ListByUserIDOutput, error)

	// ListByCampaignID retrieves all characters in a campaign
	ListByCampaignID(ctx context.Context, input ListByCampaignIDInput) (*ListByCampaignIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *wod.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *wod.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *wod.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *wod.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *wod.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByUserIDInput defines the input for listing characters by owner
type ListByUserIDInput struct {
	UserID string
}

// ListByUserIDOutput defines the output for listing characters by owner
type ListByUserIDOutput struct {
	Characters []*wod.Character
}

// ListByCampaignIDInput defines the input for listing characters by campaign
type ListByCampaignIDInput struct {
	CampaignID string
}

// ListByCampaignIDOutput defines the output for listing characters by campaign
type ListByCampaignIDOutput struct {
	Characters []*wod.Character
}
