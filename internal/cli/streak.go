package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streakCmd)
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current and best check-in streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	fmt.Printf("Current streak: %s days\n", proj.Streak.CurrentDisplay)
	fmt.Printf("Best streak:    %s days\n", proj.Streak.BestDisplay)
	return nil
}
