// Package experience implements the trait point economy: pricing trait
// upgrades and downgrades and applying them against a character's
// freebie points or a campaign experience balance. Each call mutates
// exactly one trait and exactly one balance.
package experience

//go:generate mockgen -destination=mock/mock_service.go -package=experiencemock github.com/natelandau/valentina-sub000/internal/orchestrators/experience Service

import (
	"context"
	"log/slog"

	"github.com/natelandau/valentina-sub000/internal/catalog"
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/repositories/character"
	"github.com/natelandau/valentina-sub000/internal/repositories/ledger"
)

// Service defines the interface for trait point operations
type Service interface {
	// CostToUpgrade prices raising a trait without applying anything
	// Returns errors.TraitAtMaxValue if any step would exceed the max
	CostToUpgrade(ctx context.Context, input *CostToUpgradeInput) (*CostToUpgradeOutput, error)

	// SavingsFromDowngrade prices lowering a trait without applying
	// anything
	// Returns errors.TraitAtMinValue if any step would go below zero
	SavingsFromDowngrade(ctx context.Context, input *SavingsFromDowngradeInput) (*SavingsFromDowngradeOutput, error)

	// UpgradeWithFreebie raises a trait, paying from the character's
	// freebie points
	// Returns errors.NotEnoughPoints if the balance cannot cover it
	UpgradeWithFreebie(ctx context.Context, input *UpgradeInput) (*UpgradeOutput, error)

	// UpgradeWithXP raises a trait, paying from the campaign
	// experience balance
	UpgradeWithXP(ctx context.Context, input *UpgradeInput) (*UpgradeOutput, error)

	// DowngradeWithFreebie lowers a trait, returning the savings to
	// the character's freebie points
	DowngradeWithFreebie(ctx context.Context, input *DowngradeInput) (*DowngradeOutput, error)

	// DowngradeWithXP lowers a trait, returning the savings to the
	// campaign experience balance
	DowngradeWithXP(ctx context.Context, input *DowngradeInput) (*DowngradeOutput, error)

	// AwardExperience grants campaign experience to a user
	AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error)

	// AddCoolPoints grants cool points, each worth experience
	AddCoolPoints(ctx context.Context, input *AddCoolPointsInput) (*AddCoolPointsOutput, error)

	// GetBalance reads a user's campaign experience balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)
}

// Config holds the dependencies for the experience orchestrator
type Config struct {
	CharacterRepo character.Repository
	LedgerRepo    ledger.Repository
	Catalog       catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.LedgerRepo == nil {
		vb.RequiredField("LedgerRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	ledgerRepo    ledger.Repository
	catalog       catalog.Catalog
}

// NewOrchestrator creates a new experience orchestrator with the
// provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		ledgerRepo:    cfg.LedgerRepo,
		catalog:       cat,
	}, nil
}

// multiplier resolves the per-dot price for a trait. A vampire pays a
// discounted rate for their own clan's disciplines.
func (o *orchestrator) multiplier(char *wod.Character, trait *wod.CharacterTrait) int {
	if trait.Category == wod.CategoryDisciplines &&
		char.Clan.IsValid() && char.Clan.HasDiscipline(trait.Name) {
		return catalog.ClanDisciplineMultiplier
	}
	return o.catalog.Multiplier(trait.Name, trait.Category)
}

func (o *orchestrator) costToUpgrade(char *wod.Character, trait *wod.CharacterTrait, amount int) (int, error) {
	mult := o.multiplier(char, trait)

	cost := 0
	value := trait.Value
	for i := 0; i < amount; i++ {
		value++
		if value > trait.MaxValue {
			return 0, errors.TraitAtMaxValuef(
				"%s cannot be raised above its max value of %d", trait.Name, trait.MaxValue)
		}

		// First dots sometimes have a different cost
		if value == 0 {
			cost += o.catalog.FirstDotCost(trait.Name, trait.Category)
		} else {
			cost += value * mult
		}
	}
	return cost, nil
}

func (o *orchestrator) savingsFromDowngrade(char *wod.Character, trait *wod.CharacterTrait, amount int) (int, error) {
	mult := o.multiplier(char, trait)

	savings := 0
	value := trait.Value
	for i := 0; i < amount; i++ {
		if value-1 < 0 {
			return 0, errors.TraitAtMinValuef(
				"%s cannot be lowered below zero", trait.Name)
		}

		// First dots sometimes have a different cost
		if value == 0 {
			savings += o.catalog.FirstDotCost(trait.Name, trait.Category)
		} else {
			savings += value * mult
		}
		value--
	}
	return savings, nil
}

// loadTrait fetches the character and the named trait in one step
func (o *orchestrator) loadTrait(ctx context.Context, characterID, traitName string) (*wod.Character, *wod.CharacterTrait, error) {
	if characterID == "" {
		return nil, nil, errors.InvalidArgument("character ID is required")
	}
	if traitName == "" {
		return nil, nil, errors.InvalidArgument("trait name is required")
	}

	got, err := o.characterRepo.Get(ctx, character.GetInput{ID: characterID})
	if err != nil {
		return nil, nil, err
	}

	trait := got.Character.Trait(traitName)
	if trait == nil {
		return nil, nil, errors.NotFoundf("character %s has no trait named %s", characterID, traitName)
	}
	return got.Character, trait, nil
}

func normalizeAmount(amount int) (int, error) {
	if amount < 0 {
		return 0, errors.InvalidArgument("amount cannot be negative")
	}
	if amount == 0 {
		return 1, nil
	}
	return amount, nil
}

func (o *orchestrator) CostToUpgrade(ctx context.Context, input *CostToUpgradeInput) (*CostToUpgradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	char, trait, err := o.loadTrait(ctx, input.CharacterID, input.TraitName)
	if err != nil {
		return nil, err
	}

	cost, err := o.costToUpgrade(char, trait, amount)
	if err != nil {
		return nil, err
	}
	return &CostToUpgradeOutput{Cost: cost}, nil
}

func (o *orchestrator) SavingsFromDowngrade(ctx context.Context, input *SavingsFromDowngradeInput) (*SavingsFromDowngradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	char, trait, err := o.loadTrait(ctx, input.CharacterID, input.TraitName)
	if err != nil {
		return nil, err
	}

	savings, err := o.savingsFromDowngrade(char, trait, amount)
	if err != nil {
		return nil, err
	}
	return &SavingsFromDowngradeOutput{Savings: savings}, nil
}

func (o *orchestrator) UpgradeWithFreebie(ctx context.Context, input *UpgradeInput) (*UpgradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	char, trait, err := o.loadTrait(ctx, input.CharacterID, input.TraitName)
	if err != nil {
		return nil, err
	}

	cost, err := o.costToUpgrade(char, trait, amount)
	if err != nil {
		return nil, err
	}

	if char.FreebiePoints < cost {
		return nil, errors.NotEnoughPointsf(
			"upgrading %s costs %d freebie points but only %d remain",
			trait.Name, cost, char.FreebiePoints)
	}

	char.FreebiePoints -= cost
	trait.Value += amount

	updated, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save upgraded trait")
	}

	slog.InfoContext(ctx, "trait upgraded with freebie points",
		"character_id", char.ID,
		"trait", trait.Name,
		"cost", cost)

	return &UpgradeOutput{
		Character: updated.Character,
		Trait:     updated.Character.Trait(trait.Name),
		Cost:      cost,
	}, nil
}

func (o *orchestrator) UpgradeWithXP(ctx context.Context, input *UpgradeInput) (*UpgradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	char, trait, err := o.loadTrait(ctx, input.CharacterID, input.TraitName)
	if err != nil {
		return nil, err
	}

	cost, err := o.costToUpgrade(char, trait, amount)
	if err != nil {
		return nil, err
	}

	if _, err := o.ledgerRepo.Spend(ctx, ledger.SpendInput{
		UserID:     char.UserID,
		CampaignID: char.CampaignID,
		Amount:     cost,
	}); err != nil {
		return nil, err
	}

	trait.Value += amount

	updated, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		// The experience is already spent; put it back before failing
		if _, refundErr := o.ledgerRepo.Refund(ctx, ledger.RefundInput{
			UserID:     char.UserID,
			CampaignID: char.CampaignID,
			Amount:     cost,
		}); refundErr != nil {
			slog.ErrorContext(ctx, "failed to refund experience after save failure",
				"character_id", char.ID,
				"amount", cost,
				"error", refundErr)
		}
		return nil, errors.Wrap(err, "failed to save upgraded trait")
	}

	slog.InfoContext(ctx, "trait upgraded with experience",
		"character_id", char.ID,
		"trait", trait.Name,
		"cost", cost)

	return &UpgradeOutput{
		Character: updated.Character,
		Trait:     updated.Character.Trait(trait.Name),
		Cost:      cost,
	}, nil
}

func (o *orchestrator) DowngradeWithFreebie(ctx context.Context, input *DowngradeInput) (*DowngradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	char, trait, err := o.loadTrait(ctx, input.CharacterID, input.TraitName)
	if err != nil {
		return nil, err
	}

	savings, err := o.savingsFromDowngrade(char, trait, amount)
	if err != nil {
		return nil, err
	}

	char.FreebiePoints += savings
	trait.Value -= amount

	updated, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save downgraded trait")
	}

	return &DowngradeOutput{
		Character: updated.Character,
		Trait:     updated.Character.Trait(trait.Name),
		Savings:   savings,
	}, nil
}

func (o *orchestrator) DowngradeWithXP(ctx context.Context, input *DowngradeInput) (*DowngradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	char, trait, err := o.loadTrait(ctx, input.CharacterID, input.TraitName)
	if err != nil {
		return nil, err
	}

	savings, err := o.savingsFromDowngrade(char, trait, amount)
	if err != nil {
		return nil, err
	}

	if _, err := o.ledgerRepo.Refund(ctx, ledger.RefundInput{
		UserID:     char.UserID,
		CampaignID: char.CampaignID,
		Amount:     savings,
	}); err != nil {
		return nil, err
	}

	trait.Value -= amount

	updated, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		// The refund already landed; take it back before failing
		if _, spendErr := o.ledgerRepo.Spend(ctx, ledger.SpendInput{
			UserID:     char.UserID,
			CampaignID: char.CampaignID,
			Amount:     savings,
		}); spendErr != nil {
			slog.ErrorContext(ctx, "failed to reverse refund after save failure",
				"character_id", char.ID,
				"amount", savings,
				"error", spendErr)
		}
		return nil, errors.Wrap(err, "failed to save downgraded trait")
	}

	return &DowngradeOutput{
		Character: updated.Character,
		Trait:     updated.Character.Trait(trait.Name),
		Savings:   savings,
	}, nil
}

func (o *orchestrator) AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.ledgerRepo.Award(ctx, ledger.AwardInput{
		UserID:     input.UserID,
		CampaignID: input.CampaignID,
		Amount:     input.Amount,
	})
	if err != nil {
		return nil, err
	}
	return &AwardExperienceOutput{Balance: out.Balance}, nil
}

func (o *orchestrator) AddCoolPoints(ctx context.Context, input *AddCoolPointsInput) (*AddCoolPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.ledgerRepo.AddCoolPoints(ctx, ledger.AddCoolPointsInput{
		UserID:     input.UserID,
		CampaignID: input.CampaignID,
		Count:      input.Count,
	})
	if err != nil {
		return nil, err
	}
	return &AddCoolPointsOutput{Balance: out.Balance}, nil
}

func (o *orchestrator) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.ledgerRepo.Get(ctx, ledger.GetInput{
		UserID:     input.UserID,
		CampaignID: input.CampaignID,
	})
	if err != nil {
		return nil, err
	}
	return &GetBalanceOutput{Balance: out.Balance}, nil
}
