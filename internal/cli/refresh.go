package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fightclub-net/fightclub/internal/daemon"
)

func init() {
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch a fresh snapshot from the data repo",
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(d.Config.Source.FetchTimeoutSec)*time.Second)
	defer cancel()

	if err := d.Refresh(ctx); err != nil {
		return err
	}

	proj, err := d.Projection()
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot %s fetched at %s\n", proj.SnapshotID, proj.FetchedAt.Format(time.RFC3339))
	if len(proj.Degraded) > 0 {
		for name, reason := range proj.Degraded {
			fmt.Printf("  degraded %s: %s\n", name, reason)
		}
	}
	return nil
}
