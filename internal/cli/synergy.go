package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(synergyCmd)
}

var synergyCmd = &cobra.Command{
	Use:   "synergy",
	Short: "Show the mind/body/soul synergy scores",
	RunE:  runSynergy,
}

func runSynergy(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	if proj.Synergy == nil {
		fmt.Println("Synergy data unavailable.")
		return nil
	}

	s := proj.Synergy
	fmt.Printf("Total synergy: %.0f\n\n", s.FightClub.TotalSynergy)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range s.Points {
		fmt.Fprintf(w, "%s\t%.0f\n", p.Name, p.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fc := s.FightClub
	fmt.Printf("\nMissions: %d/%d completed  Rewards: %d/%d unlocked  Check-ins: %d\n",
		fc.Missions.Completed, fc.Missions.Total,
		fc.Rewards.Unlocked, fc.Rewards.Total,
		fc.DailyProgress.DaysCheckedIn)
	return nil
}
