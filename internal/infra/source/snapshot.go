package source

import (
	"time"

	"github.com/fightclub-net/fightclub/internal/domain"
)

// Snapshot bundles every raw document of one fetch cycle. A snapshot is
// immutable once built; projections are always computed from a whole
// snapshot, never from individually refreshed pieces.
//
// Failures records the sources that could not be loaded this cycle. A
// failed partition contributes its empty value — partial dashboards beat
// no dashboard.
type Snapshot struct {
	ID        string    `json:"id"`
	FetchedAt time.Time `json:"fetched_at"`

	Activity []domain.ActivityEntry `json:"activity"`

	MissionsActive     []domain.Mission `json:"missions_active"`
	MissionsNotStarted []domain.Mission `json:"missions_not_started"`
	MissionsFailed     []domain.Mission `json:"missions_failed"`
	MissionsCompleted  []domain.Mission `json:"missions_completed"`

	RewardsLocked   []domain.Reward `json:"rewards_locked"`
	RewardsUnlocked []domain.Reward `json:"rewards_unlocked"`

	Badges  []domain.Badge        `json:"badges"`
	Egos    []domain.AlterEgo     `json:"egos"`
	Synergy *domain.Synergy       `json:"synergy,omitempty"`
	History []domain.HistoryEntry `json:"history"`
	Themes  []domain.Theme        `json:"themes"`

	Failures map[string]string `json:"failures,omitempty"`
}

// Source names used in Failures and in metrics labels.
const (
	SrcTimeline           = "timeline"
	SrcMissionsActive     = "missions_active"
	SrcMissionsNotStarted = "missions_not_started"
	SrcMissionsFailed     = "missions_failed"
	SrcMissionsCompleted  = "missions_completed"
	SrcRewardsLocked      = "rewards_locked"
	SrcRewardsUnlocked    = "rewards_unlocked"
	SrcBadges             = "badges"
	SrcSynergy            = "synergy"
	SrcHistory            = "history"
	SrcThemeList          = "themelist"
)
