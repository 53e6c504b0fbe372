package wod

// Concept identifies a narrative role that biases trait generation
type Concept string

// Concept constants
const (
	ConceptBerserker    Concept = "BERSERKER"
	ConceptPerformer    Concept = "PERFORMER"
	ConceptHealer       Concept = "HEALER"
	ConceptShaman       Concept = "SHAMAN"
	ConceptSoldier      Concept = "SOLDIER"
	ConceptAscetic      Concept = "ASCETIC"
	ConceptCrusader     Concept = "CRUSADER"
	ConceptUrbanTracker Concept = "URBAN_TRACKER"
	ConceptUnderWorlder Concept = "UNDER_WORLDER"
	ConceptScientist    Concept = "SCIENTIST"
	ConceptTradesman    Concept = "TRADESMAN"
	ConceptBusinessman  Concept = "BUSINESSMAN"
)

// BonusTrait is a fixed trait grant attached to a concept, applied to
// mortals after the allocation stages
type BonusTrait struct {
	Name     string
	Value    int
	Category TraitCategory
}

// ConceptInfo holds the per-concept generation data
type ConceptInfo struct {
	Name            string
	PercentileRange [2]int
	// Specialty categories receive the primary dot budget for their
	// stage
	AttributeSpecialty TraitCategory
	AbilitySpecialty   TraitCategory
	// Signature abilities are guaranteed a floor of 3 dots by the
	// redistribution pass
	SignatureAbilities []string
	// Fixed trait grants for mortal characters
	BonusTraits []BonusTrait
}

var concepts = map[Concept]ConceptInfo{
	ConceptBerserker: {
		Name:               "Berserker",
		PercentileRange:    [2]int{1, 9},
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategoryTalents,
		SignatureAbilities: []string{"Melee", "Firearms", "Alertness", "Athletics", "Brawl", "Dodge", "Stealth"},
		BonusTraits:        []BonusTrait{{Name: "Potence", Value: 1, Category: CategoryDisciplines}},
	},
	ConceptPerformer: {
		Name:               "Performer",
		PercentileRange:    [2]int{10, 18},
		AttributeSpecialty: CategorySocial,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Expression", "Empathy", "Subterfuge", "Leadership", "Alertness", "Performance", "Intimidation"},
	},
	ConceptHealer: {
		Name:               "Healer",
		PercentileRange:    [2]int{19, 27},
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategoryKnowledges,
		SignatureAbilities: []string{"Academics", "Empathy", "Investigation", "Medicine", "Occult", "Science", "Survival"},
	},
	ConceptShaman: {
		Name:               "Shaman",
		PercentileRange:    [2]int{28, 36},
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategoryKnowledges,
		SignatureAbilities: []string{"Alertness", "Animal Ken", "Empathy", "Expression", "Linguistics", "Medicine", "Occult", "Survival"},
		BonusTraits:        []BonusTrait{{Name: "Animalism", Value: 1, Category: CategoryDisciplines}},
	},
	ConceptSoldier: {
		Name:               "Soldier",
		PercentileRange:    [2]int{37, 44},
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategoryTalents,
		SignatureAbilities: []string{"Alertness", "Athletics", "Brawl", "Demolitions", "Dodge", "Firearms", "Melee", "Stealth", "Survival"},
	},
	ConceptAscetic: {
		Name:               "Ascetic",
		PercentileRange:    [2]int{45, 52},
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategoryTalents,
		SignatureAbilities: []string{"Alertness", "Athletics", "Brawl", "Dodge", "Melee", "Stealth"},
	},
	ConceptCrusader: {
		Name:               "Crusader",
		PercentileRange:    [2]int{53, 60},
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategoryKnowledges,
		SignatureAbilities: []string{"Academics", "Investigation", "Occult", "Politics", "Computer", "Alertness", "Leadership", "Etiquette"},
	},
	ConceptUrbanTracker: {
		Name:               "Urban Tracker",
		PercentileRange:    [2]int{61, 68},
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Alertness", "Animal Ken", "Athletics", "Firearms", "Stealth", "Streetwise", "Survival"},
	},
	ConceptUnderWorlder: {
		Name:               "Under-worlder",
		PercentileRange:    [2]int{69, 76},
		AttributeSpecialty: CategorySocial,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Alertness", "Investigation", "Larceny", "Security", "Stealth", "Streetwise", "Subterfuge"},
		BonusTraits:        []BonusTrait{{Name: "Arcane", Value: 2, Category: CategoryBackgrounds}},
	},
	ConceptScientist: {
		Name:               "Scientist",
		PercentileRange:    [2]int{77, 84},
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategoryKnowledges,
		SignatureAbilities: []string{"Academics", "Computer", "Etiquette", "Investigation", "Linguistics", "Occult", "Science"},
	},
	ConceptTradesman: {
		Name:               "Tradesman",
		PercentileRange:    [2]int{85, 92},
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Crafts", "Drive", "Repair", "Survival", "Brawl", "Leadership"},
		BonusTraits: []BonusTrait{
			{Name: "Fortitude", Value: 1, Category: CategoryDisciplines},
			{Name: "Repair", Value: 1, Category: CategorySkills},
			{Name: "Crafts", Value: 1, Category: CategorySkills},
		},
	},
	ConceptBusinessman: {
		Name:               "Businessman",
		PercentileRange:    [2]int{93, 100},
		AttributeSpecialty: CategorySocial,
		AbilitySpecialty:   CategoryKnowledges,
		SignatureAbilities: []string{"Finance", "Leadership", "Subterfuge", "Etiquette", "Politics", "Expression", "Intimidation", "Performance"},
		BonusTraits:        []BonusTrait{{Name: "Resources", Value: 2, Category: CategoryBackgrounds}},
	},
}

// Info returns the generation data for the concept
func (c Concept) Info() ConceptInfo {
	return concepts[c]
}

// IsValid reports whether the concept is known
func (c Concept) IsValid() bool {
	_, ok := concepts[c]
	return ok
}

// IsSignatureAbility reports whether name is one of the concept's
// signature abilities
func (c Concept) IsSignatureAbility(name string) bool {
	for _, n := range concepts[c].SignatureAbilities {
		if n == name {
			return true
		}
	}
	return false
}

// Concepts returns all concepts in percentile order
func Concepts() []Concept {
	return []Concept{
		ConceptBerserker,
		ConceptPerformer,
		ConceptHealer,
		ConceptShaman,
		ConceptSoldier,
		ConceptAscetic,
		ConceptCrusader,
		ConceptUrbanTracker,
		ConceptUnderWorlder,
		ConceptScientist,
		ConceptTradesman,
		ConceptBusinessman,
	}
}

// ConceptByPercentile returns the concept whose range contains n (1-100)
func ConceptByPercentile(n int) (Concept, bool) {
	for _, c := range Concepts() {
		r := concepts[c].PercentileRange
		if r[0] <= n && n <= r[1] {
			return c, true
		}
	}
	return "", false
}
