// Package source fetches the raw JSON documents of the daily-progress data
// repo. The repo is read-only to us: every cycle fans out one GET per
// document, joins the results, and maps any per-source failure to that
// source's empty value so aggregation downstream never aborts.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fightclub-net/fightclub/internal/domain"
	"github.com/fightclub-net/fightclub/internal/infra/metrics"
)

// Document paths relative to the raw base URL.
const (
	pathTimeline           = "timeline.json"
	pathMissionsActive     = "gamification/missions/active.json"
	pathMissionsNotStarted = "gamification/missions/not-started.json"
	pathMissionsFailed     = "gamification/missions/failed.json"
	pathMissionsCompleted  = "gamification/missions/completed.json"
	pathRewardsLocked      = "gamification/rewards/locked-aggregate.json"
	pathRewardsUnlocked    = "gamification/rewards/unlocked-aggregate.json"
	pathBadges             = "gamification/badges.json"
	pathSynergy            = "gamification/synergy.json"
	pathHistory            = "gamification/history.json"
	pathThemeList          = "themelist.json"
	pathEgoFmt             = "gamification/alter-egoes/%s.json"
)

// Client fetches documents from the data repo over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
	egos    []string
	now     func() time.Time
}

// New creates a source client. baseURL is the raw-content root of the data
// repo (e.g. https://raw.githubusercontent.com/OWNER/daily-progress/main).
// egos lists the alter-ego documents to fan out over.
func New(baseURL string, egos []string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		egos:    egos,
		now:     time.Now,
	}
}

// FetchSnapshot fans out one request per document and joins the results
// into a Snapshot. Individual failures are logged, counted, and recorded
// in Snapshot.Failures; only context cancellation aborts the whole cycle.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		Failures: map[string]string{},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(name string, err error) {
		log.Printf("[source] %s: %v", name, err)
		metrics.FetchFailures.WithLabelValues(name).Inc()
		mu.Lock()
		snap.Failures[name] = err.Error()
		mu.Unlock()
	}

	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := fn(); err != nil {
				fail(name, err)
				return
			}
			metrics.FetchLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
		}()
	}

	fetch(SrcTimeline, func() error {
		return c.getJSON(ctx, pathTimeline, &snap.Activity)
	})
	fetch(SrcMissionsActive, func() error {
		return c.getMissions(ctx, pathMissionsActive, &snap.MissionsActive)
	})
	fetch(SrcMissionsNotStarted, func() error {
		return c.getMissions(ctx, pathMissionsNotStarted, &snap.MissionsNotStarted)
	})
	fetch(SrcMissionsFailed, func() error {
		return c.getMissions(ctx, pathMissionsFailed, &snap.MissionsFailed)
	})
	fetch(SrcMissionsCompleted, func() error {
		return c.getMissions(ctx, pathMissionsCompleted, &snap.MissionsCompleted)
	})
	fetch(SrcRewardsLocked, func() error {
		return c.getRewards(ctx, pathRewardsLocked, &snap.RewardsLocked)
	})
	fetch(SrcRewardsUnlocked, func() error {
		return c.getRewards(ctx, pathRewardsUnlocked, &snap.RewardsUnlocked)
	})
	fetch(SrcBadges, func() error {
		var doc domain.BadgesDocument
		if err := c.getJSON(ctx, pathBadges, &doc); err != nil {
			return err
		}
		snap.Badges = doc.Badges
		return nil
	})
	fetch(SrcSynergy, func() error {
		var syn domain.Synergy
		if err := c.getJSON(ctx, pathSynergy, &syn); err != nil {
			return err
		}
		snap.Synergy = &syn
		return nil
	})
	fetch(SrcHistory, func() error {
		var history []domain.HistoryEntry
		if err := c.getJSON(ctx, pathHistory, &history); err != nil {
			return err
		}
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].HistoryIndex > history[j].HistoryIndex
		})
		snap.History = history
		return nil
	})
	fetch(SrcThemeList, func() error {
		themes, err := c.fetchThemes(ctx)
		if err != nil {
			return err
		}
		snap.Themes = themes
		return nil
	})

	// One document per configured alter ego. Egos keep config order.
	snap.Egos = make([]domain.AlterEgo, len(c.egos))
	for i, name := range c.egos {
		i, name := i, name
		fetch("ego_"+name, func() error {
			return c.getJSON(ctx, fmt.Sprintf(pathEgoFmt, name), &snap.Egos[i])
		})
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Drop ego slots whose fetch failed.
	egos := snap.Egos[:0]
	for _, ego := range snap.Egos {
		if ego.Name != "" {
			egos = append(egos, ego)
		}
	}
	snap.Egos = egos

	snap.FetchedAt = c.now()
	return snap, nil
}

// fetchThemes loads themelist.json, then fans out one request per theme
// detail URL and flattens the results in catalog order.
func (c *Client) fetchThemes(ctx context.Context) ([]domain.Theme, error) {
	var list []domain.ThemeListEntry
	if err := c.getJSON(ctx, pathThemeList, &list); err != nil {
		return nil, err
	}

	themes := make([]domain.Theme, len(list))
	var wg sync.WaitGroup
	for i, entry := range list {
		i, entry := i, entry
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.getJSONURL(ctx, entry.URL, &themes[i]); err != nil {
				log.Printf("[source] theme %s: %v", entry.Theme, err)
			}
		}()
	}
	wg.Wait()

	// A failed detail fetch leaves a nameless hole; drop it.
	out := themes[:0]
	for _, t := range themes {
		if t.Name != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func (c *Client) getMissions(ctx context.Context, path string, dst *[]domain.Mission) error {
	var doc domain.MissionsDocument
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return err
	}
	*dst = doc.Missions
	return nil
}

func (c *Client) getRewards(ctx context.Context, path string, dst *[]domain.Reward) error {
	var doc domain.RewardsDocument
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return err
	}
	*dst = doc.Rewards
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst interface{}) error {
	return c.getJSONURL(ctx, c.baseURL+"/"+path, dst)
}

// getJSONURL GETs a document with a cache-busting timestamp parameter.
// The data repo sits behind a CDN that caches aggressively; the web
// dashboard appended ?t=<epoch-ms> to every request and so do we.
func (c *Client) getJSONURL(ctx context.Context, url string, dst interface{}) error {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	busted := url + sep + "t=" + strconv.FormatInt(c.now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, busted, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: GET %s: %s", domain.ErrSourceUnavailable, url, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedDocument, url, err)
	}
	return nil
}

// Reachable probes the repo root with a lightweight request. Used by the
// health checker.
func (c *Client) Reachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/"+pathTimeline, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, resp.Status)
	}
	return nil
}
