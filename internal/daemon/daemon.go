package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fightclub-net/fightclub/internal/api"
	"github.com/fightclub-net/fightclub/internal/app/dashboard"
	"github.com/fightclub-net/fightclub/internal/app/theme"
	"github.com/fightclub-net/fightclub/internal/domain"
	"github.com/fightclub-net/fightclub/internal/health"
	"github.com/fightclub-net/fightclub/internal/infra/metrics"
	"github.com/fightclub-net/fightclub/internal/infra/source"
	"github.com/fightclub-net/fightclub/internal/infra/sqlite"
)

// snapshotsToKeep bounds the snapshot cache; only the newest one is ever
// read back, the rest are debugging history.
const snapshotsToKeep = 10

// Daemon is the fightclub runtime: it owns the refresh loop and the latest
// projection, and wires storage, source client, health, and the API.
type Daemon struct {
	Config Config
	DB     *sqlite.DB
	Source *source.Client
	Server *api.Server
	Health *health.Checker

	cancel context.CancelFunc

	mu         sync.RWMutex
	snapshot   *source.Snapshot
	projection *dashboard.Projection
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	db, err := sqlite.Open(fightclubHome())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	src := source.New(
		cfg.Source.BaseURL,
		cfg.Source.Egos,
		time.Duration(cfg.Source.FetchTimeoutSec)*time.Second,
	)

	d := &Daemon{
		Config: cfg,
		DB:     db,
		Source: src,
	}

	staleAfter := 3 * time.Duration(cfg.Source.RefreshIntervalSec) * time.Second
	d.Health = health.NewChecker(db, src, d.lastRefresh, staleAfter)

	srv := api.NewServer(d)
	if cfg.API.Metrics {
		srv.EnableMetrics()
	}
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	d.Server = srv

	// Serve the last cached snapshot until the first refresh lands, so a
	// restart (or an offline start) is not a blank dashboard.
	if cached, err := db.LatestSnapshot(); err == nil {
		var snap source.Snapshot
		if err := json.Unmarshal(cached.Payload, &snap); err != nil {
			log.Printf("[daemon] cached snapshot %s unreadable: %v", cached.ID, err)
		} else {
			d.commit(&snap)
			log.Printf("[daemon] restored snapshot %s from %s", snap.ID, cached.FetchedAt.Format(time.RFC3339))
		}
	}

	return d, nil
}

// Close releases daemon resources.
func (d *Daemon) Close() error {
	if d.cancel != nil {
		d.cancel()
	}
	return d.DB.Close()
}

// Refresh fetches a fresh snapshot, caches it, and commits a new
// projection. A cancelled context commits nothing.
func (d *Daemon) Refresh(ctx context.Context) error {
	start := time.Now()

	snap, err := d.Source.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := d.DB.SaveSnapshot(snap.ID, snap.FetchedAt, payload); err != nil {
		log.Printf("[daemon] cache snapshot: %v", err)
	}
	if _, err := d.DB.PruneSnapshots(snapshotsToKeep); err != nil {
		log.Printf("[daemon] prune snapshots: %v", err)
	}

	d.commit(snap)

	metrics.RefreshTotal.Inc()
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	return nil
}

// commit projects a snapshot and swaps it in as the served state.
func (d *Daemon) commit(snap *source.Snapshot) {
	proj := dashboard.Project(snap, dashboard.Options{
		MissionCap:   d.Config.Display.MissionCap,
		HistoryLimit: d.Config.Display.HistoryLimit,
		ThemeName:    d.themePref(),
	})

	metrics.CurrentStreak.Set(float64(proj.Streak.Current))
	metrics.BestStreak.Set(float64(proj.Streak.Best))
	metrics.RewardsUnlocked.Set(float64(proj.RewardsSummary.Unlocked))
	metrics.BadgesUnlocked.Set(float64(proj.BadgesSummary.Unlocked))

	d.mu.Lock()
	d.snapshot = snap
	d.projection = proj
	d.mu.Unlock()
}

// Projection returns the latest projection, or ErrNoSnapshot before the
// first successful refresh.
func (d *Daemon) Projection() (*dashboard.Projection, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.projection == nil {
		return nil, domain.ErrNoSnapshot
	}
	return d.projection, nil
}

// SelectTheme resolves a theme by name against the latest catalog, makes
// it the active preference, and re-projects. Unknown names resolve to the
// default theme rather than failing — same contract as the web dashboard.
func (d *Daemon) SelectTheme(name string) (domain.Theme, error) {
	d.mu.RLock()
	snap := d.snapshot
	d.mu.RUnlock()

	var catalog []domain.Theme
	if snap != nil {
		catalog = snap.Themes
	}

	resolved := theme.Resolve(name, catalog)
	if err := theme.Apply(resolved, d.DB); err != nil {
		return domain.Theme{}, err
	}

	if snap != nil {
		d.commit(snap)
	}
	return resolved, nil
}

// themePref reads the persisted theme name; empty means never set.
func (d *Daemon) themePref() string {
	name, err := d.DB.GetPref(theme.PrefName)
	if err != nil {
		return ""
	}
	return name
}

// lastRefresh reports when the served projection was generated.
func (d *Daemon) lastRefresh() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.projection == nil {
		return time.Time{}
	}
	return d.projection.GeneratedAt
}

// HealthStatuses exposes the checker results to the API layer.
func (d *Daemon) HealthStatuses() ([]health.Status, bool) {
	return d.Health.Statuses(), d.Health.IsHealthy()
}

// Serve starts the refresh loop and the HTTP server, blocking until
// shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)
	go d.refreshLoop(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("fightclub serving on http://%s\n", addr)
	if d.Config.API.Metrics {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// refreshLoop refreshes immediately, then on the configured interval.
func (d *Daemon) refreshLoop(ctx context.Context) {
	if err := d.Refresh(ctx); err != nil {
		log.Printf("[daemon] initial refresh: %v", err)
	}

	interval := time.Duration(d.Config.Source.RefreshIntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Refresh(ctx); err != nil {
				log.Printf("[daemon] refresh: %v", err)
			}
		}
	}
}
