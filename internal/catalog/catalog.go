// Package catalog provides the read-only trait catalog: which traits
// exist per class and category, their maximum values, and their
// experience costs. The generation and spending orchestrators consume
// it through the Catalog interface; it is never mutated.
package catalog

import (
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/natelandau/valentina-sub000/internal/catalog Catalog

// Catalog answers the static questions the trait core asks about the
// game system
type Catalog interface {
	// TraitNames returns the trait names that exist for the class in
	// the category, in sheet order
	TraitNames(class wod.CharClass, category wod.TraitCategory) []string

	// MaxValue returns the maximum dots for the named trait. Name
	// lookups win over category lookups.
	MaxValue(name string, category wod.TraitCategory) int

	// Multiplier returns the per-dot experience multiplier for the
	// named trait
	Multiplier(name string, category wod.TraitCategory) int

	// FirstDotCost returns the flat cost of a trait's first dot where
	// it differs from the multiplier formula
	FirstDotCost(name string, category wod.TraitCategory) int
}

// ClanDisciplineMultiplier is the discounted per-dot multiplier a
// vampire pays for their own clan's disciplines
const ClanDisciplineMultiplier = 5

type categoryTraits struct {
	common  []string
	byClass map[wod.CharClass][]string
}

var traitNames = map[wod.TraitCategory]categoryTraits{
	wod.CategoryPhysical: {
		common: []string{"Strength", "Dexterity", "Stamina"},
	},
	wod.CategorySocial: {
		common: []string{"Charisma", "Manipulation", "Appearance"},
	},
	wod.CategoryMental: {
		common: []string{"Perception", "Intelligence", "Wits"},
	},
	wod.CategoryTalents: {
		common: []string{
			"Alertness", "Athletics", "Brawl", "Dodge", "Empathy",
			"Expression", "Intimidation", "Leadership", "Streetwise", "Subterfuge",
		},
		byClass: map[wod.CharClass][]string{
			wod.CharClassWerewolf:   {"Primal-Urge"},
			wod.CharClassChangeling: {"Primal-Urge"},
			wod.CharClassMage:       {"Awareness"},
			wod.CharClassHunter:     {"Awareness", "Insight", "Persuasion"},
		},
	},
	wod.CategorySkills: {
		common: []string{
			"Animal Ken", "Crafts", "Drive", "Etiquette", "Firearms", "Larceny",
			"Melee", "Performance", "Repair", "Security", "Stealth", "Survival",
		},
		byClass: map[wod.CharClass][]string{
			wod.CharClassMortal: {"Demolitions", "Technology"},
			wod.CharClassMage:   {"Technology"},
			wod.CharClassHunter: {"Demolitions", "Technology"},
		},
	},
	wod.CategoryKnowledges: {
		common: []string{
			"Academics", "Computer", "Finance", "Investigation", "Law",
			"Linguistics", "Medicine", "Occult", "Politics", "Science",
		},
		byClass: map[wod.CharClass][]string{
			wod.CharClassWerewolf:   {"Rituals", "Enigmas", "Cosmology", "Herbalism", "Wyrm Lore"},
			wod.CharClassChangeling: {"Rituals", "Enigmas", "Cosmology", "Herbalism", "Wyrm Lore"},
			wod.CharClassMage:       {"Cosmology", "Enigmas"},
		},
	},
	wod.CategorySpheres: {
		byClass: map[wod.CharClass][]string{
			wod.CharClassMage: {
				"Correspondence", "Entropy", "Forces", "Life", "Matter",
				"Mind", "Prime", "Spirit", "Time",
			},
		},
	},
	wod.CategoryDisciplines: {
		byClass: map[wod.CharClass][]string{
			wod.CharClassVampire: allDisciplines,
			wod.CharClassGhoul:   allDisciplines,
		},
	},
	wod.CategoryBackgrounds: {
		common: []string{
			"Allies", "Arcane", "Arsenal", "Contacts", "Fame", "Influence",
			"Mentor", "Resources", "Retainers", "Status", "Reputation",
		},
		byClass: map[wod.CharClass][]string{
			wod.CharClassVampire:    {"Generation", "Herd"},
			wod.CharClassHunter:     {"Bystanders", "Destiny", "Exposure", "Patron"},
			wod.CharClassWerewolf:   {"Ancestors", "Totem", "Kinfolk", "Rites", "Fetish", "Pure Breed"},
			wod.CharClassChangeling: {"Ancestors", "Totem", "Kinfolk", "Rites", "Fetish", "Pure Breed"},
		},
	},
	wod.CategoryVirtues: {
		byClass: map[wod.CharClass][]string{
			wod.CharClassMortal:  {"Conscience", "Self-Control", "Courage"},
			wod.CharClassVampire: {"Conscience", "Self-Control", "Courage"},
			wod.CharClassMage:    {"Conscience", "Self-Control", "Courage"},
			wod.CharClassGhoul:   {"Conscience", "Self-Control", "Courage"},
			wod.CharClassSpecial: {"Conscience", "Self-Control", "Courage"},
			wod.CharClassHunter:  {"Mercy", "Vision", "Zeal"},
		},
	},
	wod.CategoryRenown: {
		byClass: map[wod.CharClass][]string{
			wod.CharClassWerewolf:   {"Glory", "Honor", "Wisdom"},
			wod.CharClassChangeling: {"Glory", "Honor", "Wisdom"},
		},
	},
	wod.CategoryEdges: {
		byClass: map[wod.CharClass][]string{
			wod.CharClassHunter: {
				"Hide", "Illuminate", "Radiate", "Confront", "Blaze",
				"Demand", "Witness", "Ravage", "Donate", "Payback",
				"Bluster", "Insinuate", "Respire", "Becalm", "Suspend",
				"Foresee", "Pinpoint", "Delve", "Restore", "Augur",
				"Ward", "Rejuvenate", "Brand", "Champion", "Burn",
				"Discern", "Burden", "Balance", "Pierce", "Expose",
				"Cleave", "Trail", "Smolder", "Surge", "Smite",
			},
		},
	},
	wod.CategoryOther: {
		common: []string{"Willpower"},
		byClass: map[wod.CharClass][]string{
			wod.CharClassMortal:     {"Humanity"},
			wod.CharClassVampire:    {"Blood Pool", "Humanity"},
			wod.CharClassWerewolf:   {"Gnosis", "Rage"},
			wod.CharClassChangeling: {"Gnosis", "Rage"},
			wod.CharClassMage:       {"Humanity", "Arete", "Quintessence"},
			wod.CharClassGhoul:      {"Humanity"},
			wod.CharClassHunter:     {"Conviction"},
		},
	},
}

var allDisciplines = []string{
	"Animalism", "Auspex", "Blood Sorcery", "Celerity", "Chimerstry",
	"Dominate", "Fortitude", "Necromancy", "Obeah", "Obfuscate",
	"Oblivion", "Potence", "Presence", "Protean", "Serpentis",
	"Thaumaturgy", "Vicissitude",
}

type defaultCatalog struct{}

// Default returns the built-in catalog
func Default() Catalog {
	return defaultCatalog{}
}

// Ensure defaultCatalog implements Catalog
var _ Catalog = defaultCatalog{}

// TraitNames returns the trait names for the class in the category
func (defaultCatalog) TraitNames(class wod.CharClass, category wod.TraitCategory) []string {
	ct, ok := traitNames[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ct.common)+len(ct.byClass[class]))
	names = append(names, ct.common...)
	names = append(names, ct.byClass[class]...)
	return names
}

// MaxValue returns the maximum dots for the named trait
func (defaultCatalog) MaxValue(name string, category wod.TraitCategory) int {
	if mv, ok := maxValueByName[name]; ok {
		return mv
	}
	if mv, ok := maxValueByCategory[category]; ok {
		return mv
	}
	return defaultMaxValue
}

// Multiplier returns the per-dot experience multiplier for the named
// trait
func (defaultCatalog) Multiplier(name string, category wod.TraitCategory) int {
	if m, ok := multiplierByName[name]; ok {
		return m
	}
	if m, ok := multiplierByCategory[category]; ok {
		return m
	}
	return defaultMultiplier
}

// FirstDotCost returns the flat cost of the trait's first dot
func (defaultCatalog) FirstDotCost(_ string, category wod.TraitCategory) int {
	if c, ok := firstDotByCategory[category]; ok {
		return c
	}
	return defaultFirstDot
}
