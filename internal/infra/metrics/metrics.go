// Package metrics provides Prometheus metrics for fightclub: refresh
// cycles, per-source fetch behavior, and the headline gamification gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Refresh ────────────────────────────────────────────────────────────────

// RefreshTotal counts completed refresh cycles.
var RefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fightclub",
	Name:      "refresh_total",
	Help:      "Total completed snapshot refresh cycles.",
})

// RefreshDuration tracks end-to-end refresh cycle duration.
var RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "fightclub",
	Name:      "refresh_duration_seconds",
	Help:      "End-to-end snapshot refresh duration in seconds.",
	Buckets:   prometheus.DefBuckets,
})

// ─── Source Fetches ─────────────────────────────────────────────────────────

// FetchLatency tracks per-document fetch duration.
var FetchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "fightclub",
	Name:      "fetch_latency_seconds",
	Help:      "Per-document fetch duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"source"})

// FetchFailures counts per-source fetch failures. A failure maps the
// source to its empty value, so this is the only visible trace of a
// degraded partition.
var FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fightclub",
	Name:      "fetch_failures_total",
	Help:      "Total per-source fetch failures.",
}, []string{"source"})

// ─── Gamification Gauges ────────────────────────────────────────────────────

// CurrentStreak is the check-in streak from the latest projection.
var CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "fightclub",
	Name:      "streak_current_days",
	Help:      "Current daily check-in streak.",
})

// BestStreak is the best streak from the latest projection.
var BestStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "fightclub",
	Name:      "streak_best_days",
	Help:      "Best daily check-in streak on record.",
})

// RewardsUnlocked is the unlocked reward count from the latest projection.
var RewardsUnlocked = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "fightclub",
	Name:      "rewards_unlocked",
	Help:      "Unlocked rewards in the latest projection.",
})

// BadgesUnlocked is the unlocked badge count from the latest projection.
var BadgesUnlocked = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "fightclub",
	Name:      "badges_unlocked",
	Help:      "Unlocked badges in the latest projection.",
})
