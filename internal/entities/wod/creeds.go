package wod

// Creed identifies a hunter creed
type Creed string

// Creed constants
const (
	CreedDefender  Creed = "DEFENDER"
	CreedInnocent  Creed = "INNOCENT"
	CreedJudge     Creed = "JUDGE"
	CreedMartyr    Creed = "MARTYR"
	CreedRedeemer  Creed = "REDEEMER"
	CreedAvenger   Creed = "AVENGER"
	CreedVisionary Creed = "VISIONARY"
)

// CreedInfo holds the per-creed generation data
type CreedInfo struct {
	Name            string
	PercentileRange [2]int
	// Conviction is a fixed starting value, not derived
	Conviction         int
	AttributeSpecialty TraitCategory
	AbilitySpecialty   TraitCategory
	SignatureAbilities []string
	// The five edges of the creed, allocated their own dot budget
	Edges []string
}

var creeds = map[Creed]CreedInfo{
	CreedDefender: {
		Name:               "Defender",
		PercentileRange:    [2]int{1, 14},
		Conviction:         3,
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategoryTalents,
		SignatureAbilities: []string{"Empathy"},
		Edges:              []string{"Ward", "Rejuvenate", "Brand", "Champion", "Burn"},
	},
	CreedInnocent: {
		Name:               "Innocent",
		PercentileRange:    [2]int{15, 28},
		Conviction:         3,
		AttributeSpecialty: CategorySocial,
		AbilitySpecialty:   CategoryTalents,
		SignatureAbilities: []string{"Empathy", "Subterfuge"},
		Edges:              []string{"Hide", "Illuminate", "Radiate", "Confront", "Blaze"},
	},
	CreedJudge: {
		Name:               "Judge",
		PercentileRange:    [2]int{29, 42},
		Conviction:         3,
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategoryKnowledges,
		SignatureAbilities: []string{"Investigation", "Law"},
		Edges:              []string{"Discern", "Burden", "Balance", "Pierce", "Expose"},
	},
	CreedMartyr: {
		Name:               "Martyr",
		PercentileRange:    [2]int{43, 56},
		Conviction:         4,
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategoryTalents,
		SignatureAbilities: []string{"Empathy", "Intimidation"},
		Edges:              []string{"Demand", "Witness", "Ravage", "Donate", "Payback"},
	},
	CreedRedeemer: {
		Name:               "Redeemer",
		PercentileRange:    [2]int{57, 71},
		Conviction:         3,
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Empathy"},
		Edges:              []string{"Bluster", "Insinuate", "Respire", "Becalm", "Suspend"},
	},
	CreedAvenger: {
		Name:               "Avenger",
		PercentileRange:    [2]int{72, 85},
		Conviction:         4,
		AttributeSpecialty: CategoryPhysical,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Firearms", "Dodge", "Brawl", "Melee"},
		Edges:              []string{"Cleave", "Trail", "Smolder", "Surge", "Smite"},
	},
	CreedVisionary: {
		Name:               "Visionary",
		PercentileRange:    [2]int{86, 100},
		Conviction:         3,
		AttributeSpecialty: CategoryMental,
		AbilitySpecialty:   CategorySkills,
		SignatureAbilities: []string{"Leadership", "Expression", "Subterfuge", "Intimidation", "Occult"},
		Edges:              []string{"Foresee", "Pinpoint", "Delve", "Restore", "Augur"},
	},
}

// Info returns the generation data for the creed
func (c Creed) Info() CreedInfo {
	return creeds[c]
}

// IsValid reports whether the creed is known
func (c Creed) IsValid() bool {
	_, ok := creeds[c]
	return ok
}

// Creeds returns all creeds in percentile order
func Creeds() []Creed {
	return []Creed{
		CreedDefender,
		CreedInnocent,
		CreedJudge,
		CreedMartyr,
		CreedRedeemer,
		CreedAvenger,
		CreedVisionary,
	}
}

// CreedByPercentile returns the creed whose range contains n (1-100)
func CreedByPercentile(n int) (Creed, bool) {
	for _, c := range Creeds() {
		r := creeds[c].PercentileRange
		if r[0] <= n && n <= r[1] {
			return c, true
		}
	}
	return "", false
}
