package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fightclub-net/fightclub/internal/app/dashboard"
)

func init() {
	rootCmd.AddCommand(egosCmd)
}

var egosCmd = &cobra.Command{
	Use:   "egos [name]",
	Short: "Show alter-ego stats",
	Long:  `List all alter-egos, or show one ego's full ability radar by name.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEgos,
}

func runEgos(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	if len(args) == 1 {
		name := args[0]
		for _, ego := range proj.Egos {
			if strings.EqualFold(ego.Name, name) {
				return printEgo(ego)
			}
		}
		return fmt.Errorf("alter-ego not found: %s", name)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tLEVEL\tXP\tREWARDS")
	for _, ego := range proj.Egos {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f%%\t%d/%d\n",
			ego.Name,
			ego.Title,
			ego.Level,
			ego.XPPercent,
			ego.RewardsUnlocked,
			ego.RewardsTotal,
		)
	}
	return w.Flush()
}

func printEgo(ego dashboard.EgoView) error {
	fmt.Printf("%s — %s (level %d)\n", ego.Name, ego.Title, ego.Level)
	if ego.TagLine != "" {
		fmt.Printf("%q\n", ego.TagLine)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "XP\t%.0f%%\n", ego.XPPercent)
	fmt.Fprintf(w, "Health\t%.0f%%\n", ego.HealthPercent)
	fmt.Fprintf(w, "Energy\t%.0f%%\n", ego.EnergyPercent)
	fmt.Fprintf(w, "Rewards\t%d/%d\n", ego.RewardsUnlocked, ego.RewardsTotal)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	aw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range ego.Radar {
		fmt.Fprintf(aw, "%s\t%.0f\n", p.Name, p.Value)
	}
	return aw.Flush()
}
