package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fightclub-net/fightclub/internal/app/summary"
)

func init() {
	rewardsCmd.Flags().BoolVar(&rewardsLocked, "locked", false, "Show only locked rewards")
	rewardsCmd.Flags().BoolVar(&rewardsUnlocked, "unlocked", false, "Show only unlocked rewards")
	rewardsCmd.Flags().StringVar(&rewardsType, "type", "", "Filter by reward tier (mythic, apex, legendary, vanguard, street)")
	rootCmd.AddCommand(rewardsCmd)
}

var (
	rewardsLocked   bool
	rewardsUnlocked bool
	rewardsType     string
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "List rewards sorted by tier",
	RunE:  runRewards,
}

func runRewards(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	var filter summary.RewardFilter
	if rewardsLocked {
		v := true
		filter.Locked = &v
	}
	if rewardsUnlocked {
		v := false
		filter.Locked = &v
	}
	if rewardsType != "" {
		filter.RewardType = &rewardsType
	}
	rewards := filter.Apply(proj.Rewards)

	if len(rewards) == 0 {
		fmt.Println("No rewards match.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Title", "Tier", "State", "Missions"})
	for _, r := range rewards {
		state := "unlocked"
		if r.IsLocked {
			state = "locked"
		}
		tw.AppendRow(table.Row{r.Title, r.RewardType, state, len(r.AssociatedMissionIDs)})
	}
	tw.Render()

	fmt.Printf("\n%d/%d unlocked\n", proj.RewardsSummary.Unlocked, proj.RewardsSummary.Total)
	return nil
}
