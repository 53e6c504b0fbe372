package wod

import (
	"github.com/natelandau/valentina-sub000/internal/errors"
)

// Character represents a World of Darkness character sheet.
// NOTE: This is a data-only struct. All generation and point-spending
// logic lives in the orchestrators, not here.
type Character struct {
	ID         string
	Name       string
	UserID     string
	CampaignID string

	Class   CharClass
	Concept Concept // optional; empty when the character has no concept
	Clan    Clan    // vampires and ghouls only
	Creed   Creed   // hunters only

	// Werewolf and changeling heritage
	Breed   Breed
	Auspice Auspice
	Tribe   Tribe
	Totem   string

	Level Level

	// One-time creation currency, spent through the experience
	// orchestrator
	FreebiePoints int

	Traits []*CharacterTrait

	CreatedAt int64
	UpdatedAt int64
}

// CharacterTrait is a single named trait with its invested dots.
// Invariant: 0 <= Value <= MaxValue, violated only transiently inside a
// computed-but-not-committed step.
type CharacterTrait struct {
	Name        string
	Category    TraitCategory
	Value       int
	MaxValue    int
	CharacterID string
}

// Trait returns the character's trait with the given name, or nil
func (c *Character) Trait(name string) *CharacterTrait {
	for _, t := range c.Traits {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TraitsInCategory returns the character's traits in the given category,
// in sheet order
func (c *Character) TraitsInCategory(category TraitCategory) []*CharacterTrait {
	var out []*CharacterTrait
	for _, t := range c.Traits {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// AddTrait appends a trait to the character's collection. Traits are
// unique by name; adding a duplicate fails with AlreadyExists and
// leaves the collection unchanged.
func (c *Character) AddTrait(trait *CharacterTrait) error {
	if trait == nil {
		return errors.InvalidArgument("trait cannot be nil")
	}
	if existing := c.Trait(trait.Name); existing != nil {
		return errors.AlreadyExistsf("trait %s already exists on character %s", trait.Name, c.ID)
	}
	trait.CharacterID = c.ID
	c.Traits = append(c.Traits, trait)
	return nil
}

// AddTraits appends each trait in order, skipping duplicates. Duplicate
// trait names can occur legitimately when a concept grants a trait the
// allocation stages already produced.
func (c *Character) AddTraits(traits []*CharacterTrait) {
	for _, t := range traits {
		_ = c.AddTrait(t)
	}
}
