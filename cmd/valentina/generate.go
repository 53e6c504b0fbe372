package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/orchestrators/chargen"
)

var (
	generateUserID     string
	generateCampaignID string
	generateName       string
	generateClass      string
	generateConcept    string
	generateClan       string
	generateCreed      string
	generateLevel      string
	generatePlayer     bool
	generateSeed       uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new character",
	Long:  `Generate a complete World of Darkness character sheet. Class, concept, clan, creed, and level are drawn randomly when not provided.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateUserID, "user", "", "Owning user ID (required)")
	generateCmd.Flags().StringVar(&generateCampaignID, "campaign", "", "Campaign ID")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Character name")
	generateCmd.Flags().StringVar(&generateClass, "class", "", "Character class (vampire, werewolf, hunter, ...)")
	generateCmd.Flags().StringVar(&generateConcept, "concept", "", "Character concept (soldier, performer, ...)")
	generateCmd.Flags().StringVar(&generateClan, "clan", "", "Vampire clan")
	generateCmd.Flags().StringVar(&generateCreed, "creed", "", "Hunter creed")
	generateCmd.Flags().StringVar(&generateLevel, "level", "", "Experience level (new, intermediate, advanced, elite)")
	generateCmd.Flags().BoolVar(&generatePlayer, "player", false, "Mark as a player character and grant freebie points")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed, 0 for nondeterministic")

	_ = generateCmd.MarkFlagRequired("user")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(generateSeed)
	if err != nil {
		return err
	}

	out, err := d.chargen.GenerateCharacter(cmd.Context(), &chargen.GenerateCharacterInput{
		UserID:          generateUserID,
		CampaignID:      generateCampaignID,
		Name:            generateName,
		Class:           wod.CharClass(strings.ToUpper(generateClass)),
		Concept:         wod.Concept(strings.ToUpper(generateConcept)),
		Clan:            wod.Clan(strings.ToUpper(generateClan)),
		Creed:           wod.Creed(strings.ToUpper(generateCreed)),
		Level:           wod.Level(strings.ToUpper(generateLevel)),
		PlayerCharacter: generatePlayer,
	})
	if err != nil {
		return err
	}

	printCharacter(out.Character)
	return nil
}

func printCharacter(char *wod.Character) {
	fmt.Printf("Character: %s (%s)\n", char.Name, char.ID)
	fmt.Printf("  Class:   %s\n", char.Class)
	if char.Concept.IsValid() {
		fmt.Printf("  Concept: %s\n", char.Concept)
	}
	if char.Clan.IsValid() {
		fmt.Printf("  Clan:    %s\n", char.Clan)
	}
	if char.Creed.IsValid() {
		fmt.Printf("  Creed:   %s\n", char.Creed)
	}
	if char.Tribe != "" {
		fmt.Printf("  Heritage: %s / %s / %s (totem %s)\n", char.Breed, char.Auspice, char.Tribe, char.Totem)
	}
	fmt.Printf("  Level:   %s\n", char.Level)
	if char.FreebiePoints > 0 {
		fmt.Printf("  Freebie points: %d\n", char.FreebiePoints)
	}

	byCategory := make(map[wod.TraitCategory][]*wod.CharacterTrait)
	var order []wod.TraitCategory
	for _, t := range char.Traits {
		if _, seen := byCategory[t.Category]; !seen {
			order = append(order, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	for _, cat := range order {
		fmt.Printf("  %s:\n", cat)
		for _, t := range byCategory[cat] {
			fmt.Printf("    %-20s %d\n", t.Name, t.Value)
		}
	}
}
