package chargen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

func abilityTrait(name string, value int) *wod.CharacterTrait {
	return &wod.CharacterTrait{
		Name:     name,
		Category: wod.CategoryTalents,
		Value:    value,
		MaxValue: 5,
	}
}

func traitSum(traits []*wod.CharacterTrait) int {
	sum := 0
	for _, t := range traits {
		sum += t.Value
	}
	return sum
}

func TestRedistributeRaisesSignatureToFloor(t *testing.T) {
	traits := []*wod.CharacterTrait{
		abilityTrait("Potence", 0),
		abilityTrait("Brawl", 3),
		abilityTrait("Melee", 2),
	}
	signature := map[string]bool{"Potence": true}

	before := traitSum(traits)
	redistribute(traits, signature)

	assert.GreaterOrEqual(t, traits[0].Value, 3)
	assert.Equal(t, before, traitSum(traits), "redistribution must preserve the total")
}

func TestRedistributeStopsWhenNoDonorRemains(t *testing.T) {
	traits := []*wod.CharacterTrait{
		abilityTrait("Potence", 1),
		abilityTrait("Brawl", 0),
		abilityTrait("Melee", 1),
	}
	signature := map[string]bool{"Potence": true, "Melee": true}

	before := traitSum(traits)
	redistribute(traits, signature)

	assert.Equal(t, before, traitSum(traits))
	// Everything movable was moved; remaining donors are empty
	assert.Equal(t, 0, traits[1].Value)
}

func TestRedistributeFloorProperty(t *testing.T) {
	traits := []*wod.CharacterTrait{
		abilityTrait("Alertness", 2),
		abilityTrait("Athletics", 4),
		abilityTrait("Brawl", 1),
		abilityTrait("Dodge", 0),
		abilityTrait("Empathy", 3),
	}
	signature := map[string]bool{"Alertness": true, "Brawl": true}

	before := traitSum(traits)
	redistribute(traits, signature)

	assert.Equal(t, before, traitSum(traits))

	floorMet := traits[0].Value >= signatureFloor && traits[2].Value >= signatureFloor
	noDonor := traits[1].Value == 0 && traits[3].Value == 0 && traits[4].Value == 0
	assert.True(t, floorMet || noDonor,
		"either every signature trait meets the floor or no donor remains")
}

func TestRedistributeNoOpWhenFloorAlreadyMet(t *testing.T) {
	traits := []*wod.CharacterTrait{
		abilityTrait("Potence", 3),
		abilityTrait("Brawl", 2),
	}
	signature := map[string]bool{"Potence": true}

	redistribute(traits, signature)

	assert.Equal(t, 3, traits[0].Value)
	assert.Equal(t, 2, traits[1].Value)
}

func TestShapeDisciplineValue(t *testing.T) {
	testCases := []struct {
		name  string
		value int
		level wod.Level
		want  int
	}{
		{"new character capped at two", 4, wod.LevelNew, 2},
		{"new character minimum one", -1, wod.LevelNew, 1},
		{"intermediate capped at three", 5, wod.LevelIntermediate, 3},
		{"advanced gains one", 2, wod.LevelAdvanced, 3},
		{"elite gains one", 3, wod.LevelElite, 4},
		{"elite clamped at five", 5, wod.LevelElite, 5},
		{"elite minimum one", -2, wod.LevelElite, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shapeDisciplineValue(tc.value, tc.level))
		})
	}
}
