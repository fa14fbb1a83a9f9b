package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fightclub-net/fightclub/internal/app/dashboard"
)

func init() {
	missionsCmd.Flags().BoolVar(&missionsAll, "all", false, "Include completed missions")
	rootCmd.AddCommand(missionsCmd)
}

var missionsAll bool

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List open missions",
	RunE:  runMissions,
}

func runMissions(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	if len(proj.NotCompleted) == 0 && !missionsAll {
		fmt.Println("No open missions.")
		return nil
	}

	renderMissions("OPEN", proj.NotCompleted)
	if missionsAll && len(proj.Completed) > 0 {
		fmt.Println()
		renderMissions("COMPLETED", proj.Completed)
	}
	return nil
}

func renderMissions(title string, missions []dashboard.MissionView) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Code", "Title", "Status", "Progress", "Due", "Rewards"})
	for _, m := range missions {
		due := ""
		if m.DueDate != nil {
			due = m.DueDate.Format("2006-01-02")
		}
		tw.AppendRow(table.Row{
			m.MissionCode,
			m.Title,
			m.Status,
			fmt.Sprintf("%.0f%%", m.ProgressPercent),
			due,
			len(m.Rewards),
		})
	}
	tw.Render()
}
