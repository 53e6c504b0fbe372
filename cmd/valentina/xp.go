package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natelandau/valentina-sub000/internal/orchestrators/experience"
	"github.com/natelandau/valentina-sub000/internal/repositories/ledger"
)

var (
	xpUserID      string
	xpCampaignID  string
	xpAmount      int
	xpCharacterID string
	xpTrait       string
	xpFreebie     bool
)

var xpCmd = &cobra.Command{
	Use:   "xp",
	Short: "Manage campaign experience",
}

var xpAwardCmd = &cobra.Command{
	Use:   "award",
	Short: "Award experience points to a user",
	RunE:  runXPAward,
}

var xpCoolPointCmd = &cobra.Command{
	Use:   "coolpoint",
	Short: "Award cool points to a user",
	RunE:  runXPCoolPoint,
}

var xpBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show a user's experience balance",
	RunE:  runXPBalance,
}

var xpCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Show what raising a trait would cost",
	RunE:  runXPCost,
}

var xpUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Raise a trait, paying with experience or freebie points",
	RunE:  runXPUpgrade,
}

var xpDowngradeCmd = &cobra.Command{
	Use:   "downgrade",
	Short: "Lower a trait, refunding experience or freebie points",
	RunE:  runXPDowngrade,
}

func init() {
	xpCmd.PersistentFlags().StringVar(&xpUserID, "user", "", "User ID")
	xpCmd.PersistentFlags().StringVar(&xpCampaignID, "campaign", "", "Campaign ID")
	xpCmd.PersistentFlags().IntVar(&xpAmount, "amount", 1, "Point amount")
	xpCmd.PersistentFlags().StringVar(&xpCharacterID, "character", "", "Character ID")
	xpCmd.PersistentFlags().StringVar(&xpTrait, "trait", "", "Trait name")
	xpCmd.PersistentFlags().BoolVar(&xpFreebie, "freebie", false, "Spend freebie points instead of experience")

	xpCmd.AddCommand(xpAwardCmd)
	xpCmd.AddCommand(xpCoolPointCmd)
	xpCmd.AddCommand(xpBalanceCmd)
	xpCmd.AddCommand(xpCostCmd)
	xpCmd.AddCommand(xpUpgradeCmd)
	xpCmd.AddCommand(xpDowngradeCmd)
}

func runXPAward(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	out, err := d.experience.AwardExperience(cmd.Context(), &experience.AwardExperienceInput{
		UserID:     xpUserID,
		CampaignID: xpCampaignID,
		Amount:     xpAmount,
	})
	if err != nil {
		return err
	}

	printBalance(out.Balance)
	return nil
}

func runXPCoolPoint(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	out, err := d.experience.AddCoolPoints(cmd.Context(), &experience.AddCoolPointsInput{
		UserID:     xpUserID,
		CampaignID: xpCampaignID,
		Count:      xpAmount,
	})
	if err != nil {
		return err
	}

	printBalance(out.Balance)
	return nil
}

func runXPBalance(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	out, err := d.experience.GetBalance(cmd.Context(), &experience.GetBalanceInput{
		UserID:     xpUserID,
		CampaignID: xpCampaignID,
	})
	if err != nil {
		return err
	}

	printBalance(out.Balance)
	return nil
}

func runXPCost(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	out, err := d.experience.CostToUpgrade(cmd.Context(), &experience.CostToUpgradeInput{
		CharacterID: xpCharacterID,
		TraitName:   xpTrait,
		Amount:      xpAmount,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Raising %s by %d costs %d points\n", xpTrait, xpAmount, out.Cost)
	return nil
}

func runXPUpgrade(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	input := &experience.UpgradeInput{
		CharacterID: xpCharacterID,
		TraitName:   xpTrait,
		Amount:      xpAmount,
	}

	var out *experience.UpgradeOutput
	if xpFreebie {
		out, err = d.experience.UpgradeWithFreebie(cmd.Context(), input)
	} else {
		out, err = d.experience.UpgradeWithXP(cmd.Context(), input)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %d (paid %d points)\n", out.Trait.Name, out.Trait.Value, out.Cost)
	return nil
}

func runXPDowngrade(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(0)
	if err != nil {
		return err
	}

	input := &experience.DowngradeInput{
		CharacterID: xpCharacterID,
		TraitName:   xpTrait,
		Amount:      xpAmount,
	}

	var out *experience.DowngradeOutput
	if xpFreebie {
		out, err = d.experience.DowngradeWithFreebie(cmd.Context(), input)
	} else {
		out, err = d.experience.DowngradeWithXP(cmd.Context(), input)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %d (refunded %d points)\n", out.Trait.Name, out.Trait.Value, out.Savings)
	return nil
}

func printBalance(b *ledger.Balance) {
	fmt.Printf("Experience: %d available, %d lifetime, %d cool points\n", b.Current, b.Lifetime, b.CoolPoints)
}
