// Package wod implements the World of Darkness entities
package wod

// CharClass identifies a character's fundamental archetype
type CharClass string

// Character class constants
const (
	CharClassMortal     CharClass = "MORTAL"
	CharClassVampire    CharClass = "VAMPIRE"
	CharClassWerewolf   CharClass = "WEREWOLF"
	CharClassMage       CharClass = "MAGE"
	CharClassGhoul      CharClass = "GHOUL"
	CharClassChangeling CharClass = "CHANGELING"
	CharClassHunter     CharClass = "HUNTER"
	CharClassSpecial    CharClass = "SPECIAL"
)

// CharClassInfo holds the per-class generation data
type CharClassInfo struct {
	Name string
	// Percentile range used when rolling a random class, inclusive.
	// A zero range means the class is never rolled.
	PercentileRange [2]int
	// Dots granted to backgrounds at character creation, before the
	// level bonus
	BackgroundDots int
}

var charClasses = map[CharClass]CharClassInfo{
	CharClassMortal:     {Name: "Mortal", PercentileRange: [2]int{1, 60}, BackgroundDots: 1},
	CharClassVampire:    {Name: "Vampire", PercentileRange: [2]int{61, 66}, BackgroundDots: 5},
	CharClassWerewolf:   {Name: "Werewolf", PercentileRange: [2]int{67, 72}, BackgroundDots: 1},
	CharClassMage:       {Name: "Mage", PercentileRange: [2]int{73, 78}, BackgroundDots: 1},
	CharClassGhoul:      {Name: "Ghoul", PercentileRange: [2]int{79, 84}, BackgroundDots: 1},
	CharClassChangeling: {Name: "Changeling", PercentileRange: [2]int{85, 90}, BackgroundDots: 1},
	CharClassHunter:     {Name: "Hunter", PercentileRange: [2]int{91, 96}, BackgroundDots: 1},
	CharClassSpecial:    {Name: "Special", PercentileRange: [2]int{97, 100}, BackgroundDots: 3},
}

// Info returns the generation data for the class
func (c CharClass) Info() CharClassInfo {
	return charClasses[c]
}

// IsValid reports whether the class is a known archetype
func (c CharClass) IsValid() bool {
	_, ok := charClasses[c]
	return ok
}

// CharClasses returns the playable classes in a stable order
func CharClasses() []CharClass {
	return []CharClass{
		CharClassMortal,
		CharClassVampire,
		CharClassWerewolf,
		CharClassMage,
		CharClassGhoul,
		CharClassChangeling,
		CharClassHunter,
		CharClassSpecial,
	}
}

// CharClassByPercentile returns the class whose range contains n (1-100)
func CharClassByPercentile(n int) (CharClass, bool) {
	for _, c := range CharClasses() {
		r := charClasses[c].PercentileRange
		if r[0] <= n && n <= r[1] {
			return c, true
		}
	}
	return "", false
}

// TraitCategory identifies a group of related traits on the sheet
type TraitCategory string

// Trait category constants
const (
	CategoryPhysical    TraitCategory = "PHYSICAL"
	CategorySocial      TraitCategory = "SOCIAL"
	CategoryMental      TraitCategory = "MENTAL"
	CategoryTalents     TraitCategory = "TALENTS"
	CategorySkills      TraitCategory = "SKILLS"
	CategoryKnowledges  TraitCategory = "KNOWLEDGES"
	CategorySpheres     TraitCategory = "SPHERES"
	CategoryDisciplines TraitCategory = "DISCIPLINES"
	CategoryBackgrounds TraitCategory = "BACKGROUNDS"
	CategoryMerits      TraitCategory = "MERITS"
	CategoryFlaws       TraitCategory = "FLAWS"
	CategoryVirtues     TraitCategory = "VIRTUES"
	CategoryGifts       TraitCategory = "GIFTS"
	CategoryRenown      TraitCategory = "RENOWN"
	CategoryEdges       TraitCategory = "EDGES"
	CategoryOther       TraitCategory = "OTHER"
)

// AttributeCategories returns the three attribute categories in sheet order
func AttributeCategories() []TraitCategory {
	return []TraitCategory{CategoryPhysical, CategorySocial, CategoryMental}
}

// AbilityCategories returns the three ability categories in sheet order
func AbilityCategories() []TraitCategory {
	return []TraitCategory{CategoryTalents, CategorySkills, CategoryKnowledges}
}

// Level is the experience level a character is generated at
type Level string

// Experience level constants
const (
	LevelNew          Level = "NEW"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
	LevelElite        Level = "ELITE"
)

// levelParams maps each level to the (mean, stddev) pair used when
// sampling trait values from a normal distribution
var levelParams = map[Level][2]float64{
	LevelNew:          {1.0, 2.0},
	LevelIntermediate: {1.5, 2.0},
	LevelAdvanced:     {2.5, 2.0},
	LevelElite:        {3.0, 2.0},
}

// Params returns the sampling mean and standard deviation for the level
func (l Level) Params() (mean, stddev float64) {
	p := levelParams[l]
	return p[0], p[1]
}

// IsValid reports whether the level is a known experience level
func (l Level) IsValid() bool {
	_, ok := levelParams[l]
	return ok
}

// Levels returns all experience levels in ascending order
func Levels() []Level {
	return []Level{LevelNew, LevelIntermediate, LevelAdvanced, LevelElite}
}
