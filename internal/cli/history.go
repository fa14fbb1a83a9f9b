package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Max entries to show (0 = config default)")
	rootCmd.AddCommand(historyCmd)
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent event feed",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	entries := proj.History
	if historyLimit > 0 && historyLimit < len(entries) {
		entries = entries[:historyLimit]
	}

	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s %s  %s\n", e.Icon(), e.Date.Format("2006-01-02"), e.Describe())
	}
	return nil
}
