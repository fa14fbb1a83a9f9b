package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a one-screen progress overview",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Streak\t%s (best %s)\n", proj.Streak.CurrentDisplay, proj.Streak.BestDisplay)
	fmt.Fprintf(w, "Missions\t%d open, %d completed\n", len(proj.NotCompleted), len(proj.Completed))
	fmt.Fprintf(w, "Rewards\t%d/%d unlocked\n", proj.RewardsSummary.Unlocked, proj.RewardsSummary.Total)
	fmt.Fprintf(w, "Badges\t%d/%d unlocked\n", proj.BadgesSummary.Unlocked, proj.BadgesSummary.Total)
	fmt.Fprintf(w, "Alter-egos\t%d\n", len(proj.Egos))
	fmt.Fprintf(w, "Theme\t%s\n", proj.Theme.Name)
	fmt.Fprintf(w, "Snapshot\t%s\n", proj.FetchedAt.Format("2006-01-02 15:04:05"))
	if err := w.Flush(); err != nil {
		return err
	}

	if len(proj.Degraded) > 0 {
		fmt.Println()
		for name, reason := range proj.Degraded {
			fmt.Printf("degraded source %s: %s\n", name, reason)
		}
	}
	return nil
}
