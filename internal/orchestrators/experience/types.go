package experience

import (
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/repositories/ledger"
)

// CostToUpgradeInput defines the input for pricing an upgrade
type CostToUpgradeInput struct {
	CharacterID string
	TraitName   string
	// Amount defaults to 1 when zero
	Amount int
}

// CostToUpgradeOutput defines the output for pricing an upgrade
type CostToUpgradeOutput struct {
	Cost int
}

// SavingsFromDowngradeInput defines the input for pricing a downgrade
type SavingsFromDowngradeInput struct {
	CharacterID string
	TraitName   string
	Amount      int
}

// SavingsFromDowngradeOutput defines the output for pricing a downgrade
type SavingsFromDowngradeOutput struct {
	Savings int
}

// UpgradeInput defines the input for raising a trait
type UpgradeInput struct {
	CharacterID string
	TraitName   string
	Amount      int
}

// UpgradeOutput defines the output for raising a trait
type UpgradeOutput struct {
	Character *wod.Character
	Trait     *wod.CharacterTrait
	Cost      int
}

// DowngradeInput defines the input for lowering a trait
type DowngradeInput struct {
	CharacterID string
	TraitName   string
	Amount      int
}

// DowngradeOutput defines the output for lowering a trait
type DowngradeOutput struct {
	Character *wod.Character
	Trait     *wod.CharacterTrait
	Savings   int
}

// AwardExperienceInput defines the input for granting campaign
// experience
type AwardExperienceInput struct {
	UserID     string
	CampaignID string
	Amount     int
}

// AwardExperienceOutput defines the output for granting campaign
// experience
type AwardExperienceOutput struct {
	Balance *ledger.Balance
}

// AddCoolPointsInput defines the input for granting cool points
type AddCoolPointsInput struct {
	UserID     string
	CampaignID string
	Count      int
}

// AddCoolPointsOutput defines the output for granting cool points
type AddCoolPointsOutput struct {
	Balance *ledger.Balance
}

// GetBalanceInput defines the input for reading a balance
type GetBalanceInput struct {
	UserID     string
	CampaignID string
}

// GetBalanceOutput defines the output for reading a balance
type GetBalanceOutput struct {
	Balance *ledger.Balance
}
