// Package health provides the daemon's periodic health checks: storage,
// data-repo reachability, and projection freshness.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Check defines a single named health check.
type Check struct {
	Name    string
	CheckFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker runs periodic health checks.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
	interval time.Duration
}

// Pinger is the storage slice the checker needs.
type Pinger interface {
	Ping() error
}

// Prober is the source-client slice the checker needs.
type Prober interface {
	Reachable(ctx context.Context) error
}

// NewChecker creates a health checker with the standard three checks.
// lastRefresh reports when the latest projection was built; staleAfter is
// how old a projection may get before the daemon counts as unhealthy.
func NewChecker(db Pinger, src Prober, lastRefresh func() time.Time, staleAfter time.Duration) *Checker {
	return &Checker{
		interval: 60 * time.Second,
		checks: []Check{
			{
				Name: "sqlite",
				CheckFn: func(ctx context.Context) error {
					return db.Ping()
				},
			},
			{
				Name: "source",
				CheckFn: func(ctx context.Context) error {
					return src.Reachable(ctx)
				},
			},
			{
				Name: "projection_freshness",
				CheckFn: func(ctx context.Context) error {
					last := lastRefresh()
					if last.IsZero() {
						return fmt.Errorf("no projection yet")
					}
					if age := time.Since(last); age > staleAfter {
						return fmt.Errorf("projection is %s old (limit %s)", age.Round(time.Second), staleAfter)
					}
					return nil
				},
			},
		},
	}
}

// Run starts the health check loop. Call in a goroutine.
func (c *Checker) Run(ctx context.Context) {
	// Run immediately on start
	c.runAll(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.runAll(ctx)
		}
	}
}

func (c *Checker) runAll(ctx context.Context) {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: time.Now(),
		}
		if err := check.CheckFn(ctx); err != nil {
			s.Healthy = false
			s.Error = err.Error()
		} else {
			s.Healthy = true
		}
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
