// Package ledger provides persistence for campaign experience
// balances. A balance is keyed by user and campaign: experience is
// earned and spent per campaign, never across campaigns.
package ledger

//go:generate mockgen -destination=mock/mock_repository.go -package=ledgermock github.com/natelandau/valentina-sub000/internal/repositories/ledger Repository

import (
	"context"
)

// CoolPointValue is the experience awarded per cool point
const CoolPointValue = 10

// Balance is a user's experience standing within one campaign.
// Current is spendable; Lifetime only ever grows and tracks total
// experience earned.
type Balance struct {
	UserID     string
	CampaignID string
	Current    int
	Lifetime   int
	CoolPoints int
}

// Repository defines the interface for experience balance persistence
type Repository interface {
	// Get retrieves a balance. A balance that was never written reads
	// as zero, not NotFound.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Award grants experience, increasing both current and lifetime
	Award(ctx context.Context, input AwardInput) (*AwardOutput, error)

	// Spend deducts experience from the current balance
	// Returns errors.NotEnoughPoints if the balance cannot cover it
	Spend(ctx context.Context, input SpendInput) (*SpendOutput, error)

	// Refund returns previously spent experience to the current
	// balance without touching lifetime
	Refund(ctx context.Context, input RefundInput) (*RefundOutput, error)

	// AddCoolPoints grants cool points, each worth CoolPointValue
	// experience to both current and lifetime
	AddCoolPoints(ctx context.Context, input AddCoolPointsInput) (*AddCoolPointsOutput, error)
}

// GetInput defines the input for reading a balance
type GetInput struct {
	UserID     string
	CampaignID string
}

// GetOutput defines the output for reading a balance
type GetOutput struct {
	Balance *Balance
}

// AwardInput defines the input for granting experience
type AwardInput struct {
	UserID     string
	CampaignID string
	Amount     int
}

// AwardOutput defines the output for granting experience
type AwardOutput struct {
	Balance *Balance
}

// SpendInput defines the input for spending experience
type SpendInput struct {
	UserID     string
	CampaignID string
	Amount     int
}

// SpendOutput defines the output for spending experience
type SpendOutput struct {
	Balance *Balance
}

// RefundInput defines the input for refunding experience
type RefundInput struct {
	UserID     string
	CampaignID string
	Amount     int
}

// RefundOutput defines the output for refunding experience
type RefundOutput struct {
	Balance *Balance
}

// AddCoolPointsInput defines the input for granting cool points
type AddCoolPointsInput struct {
	UserID     string
	CampaignID string
	Count      int
}

// AddCoolPointsOutput defines the output for granting cool points
type AddCoolPointsOutput struct {
	Balance *Balance
}
