package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natelandau/valentina-sub000/internal/orchestrators/roll"
)

var (
	rollCharacterID string
	rollCampaignID  string
	rollPool        int
	rollDifficulty  int
	rollHistory     bool
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a d10 dice pool",
	Long:  `Roll a pool of d10s against a difficulty. Tens count double when uncancelled and ones subtract.`,
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollCharacterID, "character", "", "Character ID (required)")
	rollCmd.Flags().StringVar(&rollCampaignID, "campaign", "", "Campaign ID")
	rollCmd.Flags().IntVar(&rollPool, "pool", 1, "Number of d10s to roll")
	rollCmd.Flags().IntVar(&rollDifficulty, "difficulty", roll.DefaultDifficulty, "Difficulty threshold")
	rollCmd.Flags().BoolVar(&rollHistory, "history", false, "Show recent rolls instead of rolling")

	_ = rollCmd.MarkFlagRequired("character")
}

func runRoll(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	if rollHistory {
		out, err := d.roll.ListRolls(cmd.Context(), &roll.ListRollsInput{
			CharacterID: rollCharacterID,
		})
		if err != nil {
			return err
		}
		for _, rec := range out.Records {
			fmt.Printf("%s  %dd10 vs %d  %v  %s (%d)\n",
				rec.RolledAt.Format("2006-01-02 15:04"), rec.Pool, rec.Difficulty, rec.Dice, rec.ResultType, rec.Result)
		}
		return nil
	}

	out, err := d.roll.RollPool(cmd.Context(), &roll.RollPoolInput{
		CharacterID: rollCharacterID,
		CampaignID:  rollCampaignID,
		Pool:        rollPool,
		Difficulty:  rollDifficulty,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Rolled %v vs difficulty %d\n", out.Dice, rollDifficulty)
	fmt.Printf("%s: %d\n", out.ResultType, out.Result)
	return nil
}
