// Package dashboard turns one fetched snapshot into the immutable view
// model the API and CLI render. Projection is a pure join: missions get
// their reward references resolved, egos get radar-shaped abilities and
// percentage bars, and the streak, summaries, and theme are derived. The
// projector holds no state — every refresh produces a fresh value.
package dashboard

import (
	"time"

	"github.com/fightclub-net/fightclub/internal/app/collection"
	"github.com/fightclub-net/fightclub/internal/app/radar"
	"github.com/fightclub-net/fightclub/internal/app/streak"
	"github.com/fightclub-net/fightclub/internal/app/summary"
	"github.com/fightclub-net/fightclub/internal/app/theme"
	"github.com/fightclub-net/fightclub/internal/domain"
	"github.com/fightclub-net/fightclub/internal/infra/source"
)

// Options tune a projection. Zero values mean "uncapped".
type Options struct {
	// MissionCap limits each mission category (not-completed, completed),
	// matching the dashboard's lazy-load page size.
	MissionCap int
	// HistoryLimit caps the event feed.
	HistoryLimit int
	// ThemeName is the preferred theme read from the preference store;
	// empty or unknown resolves to the default.
	ThemeName string
	// Now overrides the clock in tests.
	Now func() time.Time
}

// MissionView is a mission with its reward references resolved. Rewards
// holds only resolvable references — placeholders are filtered out here,
// once, instead of by every renderer.
type MissionView struct {
	domain.Mission
	Rewards         []domain.Reward `json:"rewards"`
	ProgressPercent float64         `json:"progress_percent"`
}

// EgoView is an alter ego with its derived display values.
type EgoView struct {
	domain.AlterEgo
	Radar           []radar.AbilityPoint `json:"abilities_array"`
	AxisMin         float64              `json:"axis_min"`
	AxisMax         float64              `json:"axis_max"`
	XPPercent       float64              `json:"xp_percentage"`
	HealthPercent   float64              `json:"health_percentage"`
	EnergyPercent   float64              `json:"energy_percentage"`
	RewardsUnlocked int                  `json:"rewards_unlocked"`
	RewardsTotal    int                  `json:"total_rewards"`
}

// SynergyView is the synergy document shaped for its radar panel.
type SynergyView struct {
	domain.Synergy
	Points  []radar.AbilityPoint `json:"points"`
	AxisMin float64              `json:"axis_min"`
	AxisMax float64              `json:"axis_max"`
}

// StreakView pairs the computed streak with its fixed-width readout.
type StreakView struct {
	domain.StreakResult
	CurrentDisplay string `json:"current_display"`
	BestDisplay    string `json:"best_display"`
}

// Projection is the complete dashboard read model for one snapshot.
type Projection struct {
	SnapshotID  string    `json:"snapshot_id"`
	FetchedAt   time.Time `json:"fetched_at"`
	GeneratedAt time.Time `json:"generated_at"`

	Streak StreakView `json:"streak"`

	NotCompleted []MissionView `json:"not_completed_missions"`
	Completed    []MissionView `json:"completed_missions"`

	Rewards        []domain.Reward        `json:"rewards"`
	RewardsSummary summary.RewardsSummary `json:"rewards_summary"`

	Badges        []domain.Badge        `json:"badges"`
	BadgesSummary summary.BadgesSummary `json:"badges_summary"`

	Egos    []EgoView    `json:"egos"`
	Synergy *SynergyView `json:"synergy,omitempty"`

	History []domain.HistoryEntry `json:"history"`

	Theme        domain.Theme   `json:"theme"`
	ThemeCatalog []domain.Theme `json:"theme_catalog"`

	// Degraded lists sources that failed this cycle (empty partitions).
	Degraded map[string]string `json:"degraded,omitempty"`
}

// Project builds the dashboard read model from a snapshot.
func Project(snap *source.Snapshot, opts Options) *Projection {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	// Unified reward pool, locked partition first — the precedence the
	// dashboard always used.
	pool := collection.Aggregate([][]domain.Reward{snap.RewardsLocked, snap.RewardsUnlocked}, 0, 0)

	notCompleted := collection.Aggregate(
		[][]domain.Mission{snap.MissionsActive, snap.MissionsNotStarted, snap.MissionsFailed},
		0, opts.MissionCap,
	)
	completed := collection.Aggregate([][]domain.Mission{snap.MissionsCompleted}, 0, opts.MissionCap)

	history := snap.History
	if opts.HistoryLimit > 0 && len(history) > opts.HistoryLimit {
		history = history[:opts.HistoryLimit]
	}

	streaks := streak.Compute(snap.Activity, now())

	p := &Projection{
		SnapshotID:  snap.ID,
		FetchedAt:   snap.FetchedAt,
		GeneratedAt: now(),

		Streak: StreakView{
			StreakResult:   streaks,
			CurrentDisplay: domain.ZeroPad(streaks.Current, domain.StreakPadWidth),
			BestDisplay:    domain.ZeroPad(streaks.Best, domain.StreakPadWidth),
		},

		NotCompleted: missionViews(notCompleted, pool),
		Completed:    missionViews(completed, pool),

		Rewards:        summary.SortRewards(pool),
		RewardsSummary: summary.SummarizeRewards(pool),

		Badges:        snap.Badges,
		BadgesSummary: summary.SummarizeBadges(snap.Badges),

		History: history,

		Theme:        theme.Resolve(opts.ThemeName, snap.Themes),
		ThemeCatalog: snap.Themes,

		Degraded: snap.Failures,
	}

	for _, ego := range snap.Egos {
		p.Egos = append(p.Egos, egoView(ego))
	}
	if snap.Synergy != nil {
		p.Synergy = synergyView(*snap.Synergy)
	}

	return p
}

func missionViews(missions []domain.Mission, pool []domain.Reward) []MissionView {
	out := make([]MissionView, len(missions))
	for i, m := range missions {
		resolved := collection.ResolveRewards(m.Reward, pool)
		out[i] = MissionView{
			Mission:         m,
			Rewards:         collection.CompactRewards(resolved),
			ProgressPercent: m.ProgressPercent(),
		}
	}
	return out
}

func egoView(ego domain.AlterEgo) EgoView {
	points := radar.Shape(ego.Abilities)
	values := make([]float64, len(points))
	for i, pt := range points {
		values[i] = pt.Value
	}
	axisMin, axisMax := radar.AxisScale(values)

	return EgoView{
		AlterEgo:        ego,
		Radar:           points,
		AxisMin:         axisMin,
		AxisMax:         axisMax,
		XPPercent:       radar.Percent(ego.XPDetails.CurrentXP, ego.XPDetails.XPToNextLevel),
		HealthPercent:   radar.Percent(ego.HealthDetails.CurrentHealth, ego.HealthDetails.MaxHealth),
		EnergyPercent:   radar.Percent(ego.EnergyDetails.CurrentEnergy, ego.EnergyDetails.MaxEnergy),
		RewardsUnlocked: len(ego.UnlockedRewards),
		RewardsTotal:    len(ego.UnlockedRewards) + len(ego.LockedRewards),
	}
}

func synergyView(syn domain.Synergy) *SynergyView {
	s := syn.FightClub.Synergy
	values := []float64{s.Mind, s.Body, s.Soul}
	axisMin, axisMax := radar.AxisScale(values)
	return &SynergyView{
		Synergy: syn,
		Points: []radar.AbilityPoint{
			{Name: "Mind", Value: s.Mind},
			{Name: "Body", Value: s.Body},
			{Name: "Soul", Value: s.Soul},
		},
		AxisMin: axisMin,
		AxisMax: axisMax,
	}
}
