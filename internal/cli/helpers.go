package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fightclub-net/fightclub/internal/app/dashboard"
	"github.com/fightclub-net/fightclub/internal/daemon"
)

// loadProjection boots a daemon, tries a live refresh and falls back to
// the cached snapshot when the source is unreachable. The caller must
// Close the daemon.
func loadProjection() (*daemon.Daemon, *dashboard.Projection, error) {
	d, err := daemon.New()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(d.Config.Source.FetchTimeoutSec)*time.Second)
	defer cancel()

	if err := d.Refresh(ctx); err != nil {
		proj, cacheErr := d.Projection()
		if cacheErr != nil {
			d.Close()
			return nil, nil, fmt.Errorf("source unreachable and no cached snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "warning: source unreachable, showing snapshot from %s\n",
			proj.FetchedAt.Format("2006-01-02 15:04"))
		return d, proj, nil
	}

	proj, err := d.Projection()
	if err != nil {
		d.Close()
		return nil, nil, err
	}
	return d, proj, nil
}
