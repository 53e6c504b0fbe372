package chargen

import (
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

// signatureFloor is the minimum value redistribution guarantees for a
// concept's signature traits, dots permitting
const signatureFloor = 3

// redistribute moves dots from non-signature traits to signature
// traits until every signature trait meets the floor or no donor
// remains. Each step moves exactly one dot, so the total across the
// trait set never changes.
func redistribute(traits []*wod.CharacterTrait, signature map[string]bool) {
	for {
		recipient := lowestSignatureBelowFloor(traits, signature)
		if recipient == nil {
			return
		}

		donor := lowestDonor(traits, signature)
		if donor == nil {
			return
		}

		donor.Value--
		recipient.Value++
	}
}

func lowestSignatureBelowFloor(traits []*wod.CharacterTrait, signature map[string]bool) *wod.CharacterTrait {
	var lowest *wod.CharacterTrait
	for _, t := range traits {
		if !signature[t.Name] || t.Value >= signatureFloor {
			continue
		}
		if lowest == nil || t.Value < lowest.Value {
			lowest = t
		}
	}
	return lowest
}

func lowestDonor(traits []*wod.CharacterTrait, signature map[string]bool) *wod.CharacterTrait {
	var lowest *wod.CharacterTrait
	for _, t := range traits {
		if signature[t.Name] || t.Value < 1 {
			continue
		}
		if lowest == nil || t.Value < lowest.Value {
			lowest = t
		}
	}
	return lowest
}
