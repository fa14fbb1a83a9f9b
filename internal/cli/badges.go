package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fightclub-net/fightclub/internal/app/summary"
	"github.com/fightclub-net/fightclub/internal/domain"
)

func init() {
	badgesCmd.Flags().StringVar(&badgesStatus, "status", "", "Filter by status (locked, unlocked)")
	badgesCmd.Flags().StringVar(&badgesRarity, "rarity", "", "Filter by rarity")
	badgesCmd.Flags().StringVar(&badgesCategory, "category", "", "Filter by category")
	rootCmd.AddCommand(badgesCmd)
}

var (
	badgesStatus   string
	badgesRarity   string
	badgesCategory string
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges",
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	var filter summary.BadgeFilter
	if badgesStatus != "" {
		v := domain.BadgeStatus(badgesStatus)
		filter.Status = &v
	}
	if badgesRarity != "" {
		filter.Rarity = &badgesRarity
	}
	if badgesCategory != "" {
		filter.Category = &badgesCategory
	}
	badges := filter.Apply(proj.Badges)

	if len(badges) == 0 {
		fmt.Println("No badges match.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Title", "Rarity", "Category", "Status", "Earned By"})
	for _, b := range badges {
		earners := ""
		for i, e := range b.EarnedBy {
			if i > 0 {
				earners += ", "
			}
			earners += e.Archetype
		}
		tw.AppendRow(table.Row{b.Title, b.Rarity, b.Category, b.Status, earners})
	}
	tw.Render()

	fmt.Printf("\n%d/%d unlocked\n", proj.BadgesSummary.Unlocked, proj.BadgesSummary.Total)
	return nil
}
