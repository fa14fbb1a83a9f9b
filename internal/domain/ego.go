package domain

// XPDetails is the per-ego experience block.
type XPDetails struct {
	CurrentXP     float64 `json:"current_xp"`
	XPToNextLevel float64 `json:"xp_to_next_level"`
}

// HealthDetails is the per-ego health block.
type HealthDetails struct {
	CurrentHealth float64 `json:"current_health"`
	MaxHealth     float64 `json:"max_health"`
}

// EnergyDetails is the per-ego energy block.
type EnergyDetails struct {
	CurrentEnergy float64 `json:"current_energy"`
	MaxEnergy     float64 `json:"max_energy"`
}

// AlterEgo is one alter-ego document. Abilities is an open-ended map —
// each ego defines its own set of named stats.
type AlterEgo struct {
	Name            string             `json:"name"`
	Nickname        string             `json:"nickname"`
	ProfileURL      string             `json:"profile_url"`
	TagLine         string             `json:"tag_line"`
	CreedText       string             `json:"creed_text"`
	Title           string             `json:"title"`
	Level           int                `json:"level"`
	XPDetails       XPDetails          `json:"xp_details"`
	HealthDetails   HealthDetails      `json:"health_details"`
	EnergyDetails   EnergyDetails      `json:"energy_details"`
	Abilities       map[string]float64 `json:"abilities"`
	UnlockedRewards []string           `json:"unlocked_rewards,omitempty"`
	LockedRewards   []string           `json:"locked_rewards,omitempty"`
}

// SynergyScores is the mind/body/soul triple.
type SynergyScores struct {
	Mind float64 `json:"mind"`
	Body float64 `json:"body"`
	Soul float64 `json:"soul"`
}

// MissionCounts aggregates mission totals by status.
type MissionCounts struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	NotStarted int `json:"not-started"`
	InProgress int `json:"in-progress"`
}

// RewardCounts aggregates reward totals by lock state.
type RewardCounts struct {
	Total    int `json:"total"`
	Locked   int `json:"locked"`
	Unlocked int `json:"unlocked"`
}

// DailyProgress is the habit/check-in block inside the synergy document.
type DailyProgress struct {
	DailyProgressStreak int                    `json:"daily_progress_streak"`
	DaysCheckedIn       int                    `json:"days_checked_in"`
	Habits              map[string]interface{} `json:"habits,omitempty"`
}

// FightClub is the inner payload of the synergy document.
type FightClub struct {
	Level         int           `json:"level"`
	Chapter       string        `json:"chapter"`
	Description   string        `json:"description"`
	XPDetails     XPDetails     `json:"xp_details"`
	Synergy       SynergyScores `json:"synergy"`
	TotalSynergy  float64       `json:"total_synergy"`
	Missions      MissionCounts `json:"missions"`
	Rewards       RewardCounts  `json:"rewards"`
	DailyProgress DailyProgress `json:"daily_progress"`
}

// Synergy is the top-level synergy document.
type Synergy struct {
	FightClub FightClub `json:"fight_club"`
}
