// Package chargen implements random character generation: dot pools
// are split across trait categories by level and concept, then
// archetype-specific traits are layered on top.
package chargen

//go:generate mockgen -destination=mock/mock_service.go -package=chargenmock github.com/natelandau/valentina-sub000/internal/orchestrators/chargen Service

import (
	"context"
	"log/slog"

	"github.com/natelandau/valentina-sub000/internal/catalog"
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/pkg/idgen"
	"github.com/natelandau/valentina-sub000/internal/pkg/rng"
	"github.com/natelandau/valentina-sub000/internal/repositories/character"
)

// StartingFreebiePoints is the creation currency granted to new player
// characters
const StartingFreebiePoints = 21

// Service defines the interface for character generation
type Service interface {
	// GenerateCharacter builds a fully-populated character and
	// persists it. Unset class/concept/clan/creed/level inputs are
	// rolled randomly.
	GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error)
}

// Config holds the dependencies for the chargen orchestrator
type Config struct {
	CharacterRepo character.Repository
	Catalog       catalog.Catalog
	Roller        rng.Roller
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	catalog       catalog.Catalog
	roller        rng.Roller
	idGen         idgen.Generator
}

// NewOrchestrator creates a new chargen orchestrator with the provided
// dependencies
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
		catalog:       cat,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	char := o.baseCharacter(input)

	slog.InfoContext(ctx, "generating character",
		"character_id", char.ID,
		"class", char.Class,
		"level", char.Level)

	stages := []func(*wod.Character) error{
		o.allocateAttributes,
		o.allocateAbilities,
		o.allocateDisciplines,
		o.allocateVirtues,
		o.allocateBackgrounds,
		o.applyDerivedTraits,
		o.applyHunterTraits,
		o.applyWerewolfTraits,
		o.applyConceptBonus,
	}
	for _, stage := range stages {
		if err := stage(char); err != nil {
			return nil, err
		}
	}

	created, err := o.characterRepo.Create(ctx, character.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save generated character")
	}

	slog.InfoContext(ctx, "character generated",
		"character_id", created.Character.ID,
		"traits", len(created.Character.Traits))

	return &GenerateCharacterOutput{Character: created.Character}, nil
}

// baseCharacter resolves the identity fields, rolling percentiles for
// anything the caller left unset
func (o *orchestrator) baseCharacter(input *GenerateCharacterInput) *wod.Character {
	class := input.Class
	if !class.IsValid() {
		class, _ = wod.CharClassByPercentile(o.roller.Percentile())
	}

	// Hunters without an explicit concept lean on their creed instead;
	// everyone else rolls one
	concept := input.Concept
	if !concept.IsValid() && class != wod.CharClassHunter {
		concept, _ = wod.ConceptByPercentile(o.roller.Percentile())
	}

	level := input.Level
	if !level.IsValid() {
		levels := wod.Levels()
		level = levels[o.roller.Intn(len(levels))]
	}

	clan := input.Clan
	if class == wod.CharClassVampire && !clan.IsValid() {
		clans := wod.Clans()
		clan = clans[o.roller.Intn(len(clans))]
	}

	creed := input.Creed
	if class == wod.CharClassHunter && !creed.IsValid() {
		creed, _ = wod.CreedByPercentile(o.roller.Percentile())
	}

	freebie := 0
	if input.PlayerCharacter {
		freebie = StartingFreebiePoints
	}

	return &wod.Character{
		ID:            o.idGen.Generate(),
		Name:          input.Name,
		UserID:        input.UserID,
		CampaignID:    input.CampaignID,
		Class:         class,
		Concept:       concept,
		Clan:          clan,
		Creed:         creed,
		Level:         level,
		FreebiePoints: freebie,
	}
}

func (o *orchestrator) allocateAttributes(char *wod.Character) error {
	budget := attributeBudget
	if char.Class == wod.CharClassMortal || char.Class == wod.CharClassHunter {
		budget = mortalAttributeBudget
	}
	totals := budget.totals(char.Level)

	specialty := wod.TraitCategory("")
	if char.Concept.IsValid() {
		specialty = char.Concept.Info().AttributeSpecialty
	} else if char.Creed.IsValid() {
		specialty = char.Creed.Info().AttributeSpecialty
	}
	ordered := prioritizeCategories(o.roller, wod.AttributeCategories(), specialty)

	for i, cat := range ordered {
		names := o.catalog.TraitNames(char.Class, cat)
		values, err := PartitionEven(o.roller, totals[i], len(names), 5, 1)
		if err != nil {
			return err
		}
		char.AddTraits(o.buildTraits(char, cat, names, values))
	}
	return nil
}

func (o *orchestrator) allocateAbilities(char *wod.Character) error {
	totals := abilityBudget.totals(char.Level)

	specialty := wod.TraitCategory("")
	var signatureNames []string
	if char.Concept.IsValid() {
		info := char.Concept.Info()
		specialty = info.AbilitySpecialty
		signatureNames = info.SignatureAbilities
	} else if char.Creed.IsValid() {
		info := char.Creed.Info()
		specialty = info.AbilitySpecialty
		signatureNames = info.SignatureAbilities
	}

	var signature map[string]bool
	if len(signatureNames) > 0 {
		signature = make(map[string]bool, len(signatureNames))
		for _, n := range signatureNames {
			signature[n] = true
		}
	}
	ordered := prioritizeCategories(o.roller, wod.AbilityCategories(), specialty)

	for i, cat := range ordered {
		names := o.catalog.TraitNames(char.Class, cat)
		values, err := PartitionNormal(o.roller, totals[i], len(names), 5, 0, char.Level)
		if err != nil {
			return err
		}

		traits := o.buildTraits(char, cat, names, values)
		if signature != nil {
			redistribute(traits, signature)
		}
		char.AddTraits(traits)
	}
	return nil
}

func (o *orchestrator) allocateDisciplines(char *wod.Character) error {
	// Ghouls carry no clan, so they get no starting disciplines
	if !char.Clan.IsValid() {
		return nil
	}

	clanInfo := char.Clan.Info()
	names := make([]string, 0, len(clanInfo.Disciplines)+extraDisciplines[char.Level])
	names = append(names, clanInfo.Disciplines...)

	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	var others []string
	for _, n := range o.catalog.TraitNames(char.Class, wod.CategoryDisciplines) {
		if !have[n] {
			others = append(others, n)
		}
	}
	o.roller.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	extra := extraDisciplines[char.Level]
	if extra > len(others) {
		extra = len(others)
	}
	names = append(names, others[:extra]...)

	mean, stddev := char.Level.Params()
	values := make([]int, len(names))
	for i := range values {
		values[i] = shapeDisciplineValue(int(o.roller.Norm(mean, stddev)), char.Level)
	}

	char.AddTraits(o.buildTraits(char, wod.CategoryDisciplines, names, values))
	return nil
}

// shapeDisciplineValue adjusts a sampled discipline value for the
// character's level: stronger characters run higher, weaker ones are
// capped, and the result always lands in [1, 5].
func shapeDisciplineValue(value int, level wod.Level) int {
	if level == wod.LevelAdvanced || level == wod.LevelElite {
		value++
	}
	if level == wod.LevelNew && value > 2 {
		value = 2
	}
	if level == wod.LevelIntermediate && value > 3 {
		value = 3
	}
	return clamp(value, 1, 5)
}

func (o *orchestrator) allocateVirtues(char *wod.Character) error {
	names := o.catalog.TraitNames(char.Class, wod.CategoryVirtues)
	if len(names) == 0 {
		return nil
	}

	values, err := PartitionEven(o.roller, virtueBudget.total(char.Level), len(names), 5, 1)
	if err != nil {
		return err
	}
	char.AddTraits(o.buildTraits(char, wod.CategoryVirtues, names, values))
	return nil
}

func (o *orchestrator) allocateBackgrounds(char *wod.Character) error {
	names := o.catalog.TraitNames(char.Class, wod.CategoryBackgrounds)
	if len(names) == 0 {
		return nil
	}

	total := char.Class.Info().BackgroundDots + backgroundBonus[char.Level]
	if total == 0 {
		return nil
	}

	values, err := PartitionNormal(o.roller, total, len(names), 5, 0, char.Level)
	if err != nil {
		return err
	}
	char.AddTraits(o.buildTraits(char, wod.CategoryBackgrounds, names, values))
	return nil
}

func (o *orchestrator) applyDerivedTraits(char *wod.Character) error {
	char.AddTraits(derivedTraits(char, o.catalog))
	return nil
}

func (o *orchestrator) applyHunterTraits(char *wod.Character) error {
	if char.Class != wod.CharClassHunter {
		return nil
	}

	creedInfo := char.Creed.Info()

	// Hunter willpower is always 3, never derived
	char.AddTraits([]*wod.CharacterTrait{
		{
			Name:        "Willpower",
			Category:    wod.CategoryOther,
			Value:       3,
			MaxValue:    o.catalog.MaxValue("Willpower", wod.CategoryOther),
			CharacterID: char.ID,
		},
		{
			Name:        "Conviction",
			Category:    wod.CategoryOther,
			Value:       creedInfo.Conviction,
			MaxValue:    o.catalog.MaxValue("Conviction", wod.CategoryOther),
			CharacterID: char.ID,
		},
	})

	values, err := PartitionNormal(o.roller,
		hunterEdgeBudget.total(char.Level), len(creedInfo.Edges), 5, 0, char.Level)
	if err != nil {
		return err
	}
	char.AddTraits(o.buildTraits(char, wod.CategoryEdges, creedInfo.Edges, values))
	return nil
}

func (o *orchestrator) applyWerewolfTraits(char *wod.Character) error {
	if char.Class != wod.CharClassWerewolf && char.Class != wod.CharClassChangeling {
		return nil
	}

	breeds := wod.Breeds()
	char.Breed = breeds[o.roller.Intn(len(breeds))]
	auspices := wod.Auspices()
	char.Auspice = auspices[o.roller.Intn(len(auspices))]
	tribes := wod.Tribes()
	char.Tribe = tribes[o.roller.Intn(len(tribes))]

	breedInfo := char.Breed.Info()
	auspiceInfo := char.Auspice.Info()
	tribeInfo := char.Tribe.Info()
	char.Totem = tribeInfo.Totem

	bonus := werewolfLevelBonus[char.Level]

	other := func(name string, value int) *wod.CharacterTrait {
		return &wod.CharacterTrait{
			Name:        name,
			Category:    wod.CategoryOther,
			Value:       value,
			MaxValue:    o.catalog.MaxValue(name, wod.CategoryOther),
			CharacterID: char.ID,
		}
	}
	renown := func(name string, value int) *wod.CharacterTrait {
		return &wod.CharacterTrait{
			Name:        name,
			Category:    wod.CategoryRenown,
			Value:       value,
			MaxValue:    o.catalog.MaxValue(name, wod.CategoryRenown),
			CharacterID: char.ID,
		}
	}

	traits := []*wod.CharacterTrait{
		other("Willpower", tribeInfo.StartingWillpower+bonus),
		other("Gnosis", breedInfo.StartingGnosis+bonus),
		other("Rage", auspiceInfo.StartingRage+bonus),
		renown("Glory", auspiceInfo.StartingGlory+bonus),
		renown("Honor", auspiceInfo.StartingHonor+bonus),
		renown("Wisdom", auspiceInfo.StartingWisdom+bonus),
		{
			Name:        "Rank",
			Category:    wod.CategoryRenown,
			Value:       1 + bonus,
			MaxValue:    5,
			CharacterID: char.ID,
		},
	}

	// Union of breed and auspice gifts; duplicates collapse
	seen := make(map[string]bool)
	for _, gift := range append(append([]string{}, breedInfo.StartingGifts...), auspiceInfo.StartingGifts...) {
		if seen[gift] {
			continue
		}
		seen[gift] = true
		traits = append(traits, &wod.CharacterTrait{
			Name:        gift,
			Category:    wod.CategoryGifts,
			Value:       1,
			MaxValue:    o.catalog.MaxValue(gift, wod.CategoryGifts),
			CharacterID: char.ID,
		})
	}

	char.AddTraits(traits)
	return nil
}

// applyConceptBonus grants a mortal concept's fixed bonus traits, the
// edge mortals get for lacking supernatural powers
func (o *orchestrator) applyConceptBonus(char *wod.Character) error {
	if char.Class != wod.CharClassMortal || !char.Concept.IsValid() {
		return nil
	}

	info := char.Concept.Info()
	traits := make([]*wod.CharacterTrait, 0, len(info.BonusTraits))
	for _, bt := range info.BonusTraits {
		traits = append(traits, &wod.CharacterTrait{
			Name:        bt.Name,
			Category:    bt.Category,
			Value:       bt.Value,
			MaxValue:    o.catalog.MaxValue(bt.Name, bt.Category),
			CharacterID: char.ID,
		})
	}
	char.AddTraits(traits)
	return nil
}

func (o *orchestrator) buildTraits(char *wod.Character, cat wod.TraitCategory, names []string, values []int) []*wod.CharacterTrait {
	traits := make([]*wod.CharacterTrait, 0, len(names))
	for i, name := range names {
		traits = append(traits, &wod.CharacterTrait{
			Name:        name,
			Category:    cat,
			Value:       values[i],
			MaxValue:    o.catalog.MaxValue(name, cat),
			CharacterID: char.ID,
		})
	}
	return traits
}
