package chargen

import (
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

// GenerateCharacterInput defines the input for full character
// generation. Class, Concept, Clan, Creed, and Level are optional;
// unset fields are rolled randomly.
type GenerateCharacterInput struct {
	UserID     string
	CampaignID string
	Name       string

	Class   wod.CharClass
	Concept wod.Concept
	Clan    wod.Clan
	Creed   wod.Creed
	Level   wod.Level

	// PlayerCharacter grants the starting freebie point balance
	PlayerCharacter bool
}

// GenerateCharacterOutput defines the output for full character
// generation
type GenerateCharacterOutput struct {
	Character *wod.Character
}
