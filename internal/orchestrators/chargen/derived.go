package chargen

import (
	"github.com/natelandau/valentina-sub000/internal/catalog"
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

const defaultWillpower = 4

// derivedTraits computes the traits that follow from already-allocated
// virtues. Hunters, werewolves, and changelings carry their own
// willpower rules and are handled in their archetype stages instead.
func derivedTraits(char *wod.Character, cat catalog.Catalog) []*wod.CharacterTrait {
	switch char.Class {
	case wod.CharClassHunter, wod.CharClassWerewolf, wod.CharClassChangeling:
		return nil
	}

	var out []*wod.CharacterTrait

	willpower := defaultWillpower
	selfControl := char.Trait("Self-Control")
	courage := char.Trait("Courage")
	if selfControl != nil && courage != nil {
		willpower = selfControl.Value + courage.Value
	}
	out = append(out, &wod.CharacterTrait{
		Name:        "Willpower",
		Category:    wod.CategoryOther,
		Value:       willpower,
		MaxValue:    cat.MaxValue("Willpower", wod.CategoryOther),
		CharacterID: char.ID,
	})

	if conscience := char.Trait("Conscience"); conscience != nil && classHasTrait(cat, char.Class, "Humanity") {
		out = append(out, &wod.CharacterTrait{
			Name:        "Humanity",
			Category:    wod.CategoryOther,
			Value:       conscience.Value,
			MaxValue:    cat.MaxValue("Humanity", wod.CategoryOther),
			CharacterID: char.ID,
		})
	}

	return out
}

func classHasTrait(cat catalog.Catalog, class wod.CharClass, name string) bool {
	for _, n := range cat.TraitNames(class, wod.CategoryOther) {
		if n == name {
			return true
		}
	}
	return false
}
