package domain

// MissionStatus tracks the mission lifecycle. Transitions happen upstream
// (git commits in the data repo) — this engine only reads them.
type MissionStatus string

const (
	MissionNotStarted MissionStatus = "not-started"
	MissionInProgress MissionStatus = "in-progress"
	MissionCompleted  MissionStatus = "completed"
	MissionFailed     MissionStatus = "failed"
)

// MissionProgress is a current/total counter pair.
type MissionProgress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// RewardRef is the foreign-key stub embedded in a mission. The full record
// lives in the rewards partitions and is joined by reward_id.
type RewardRef struct {
	RewardType string `json:"reward_type"`
	Title      string `json:"title"`
	RewardID   string `json:"reward_id"`
}

// Mission is one mission document from the missions partitions.
type Mission struct {
	Archetype      string          `json:"archetype"`
	MissionCode    string          `json:"mission_code"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Difficulty     string          `json:"difficulty"`
	Status         MissionStatus   `json:"status"`
	Progress       MissionProgress `json:"progress"`
	Reward         []RewardRef     `json:"reward"`
	MissionIcon    string          `json:"mission_icon,omitempty"`
	DueDate        *Date           `json:"due_date,omitempty"`
	StartDate      Date            `json:"start_date"`
	CompletionDate *Date           `json:"completion_date,omitempty"`
}

// ProgressPercent returns completion as 0–100. A zero-total mission reads
// as 0% — that is the one divide-by-zero guard the legacy dashboard had.
func (m Mission) ProgressPercent() float64 {
	if m.Progress.Total == 0 {
		return 0
	}
	return float64(m.Progress.Current) / float64(m.Progress.Total) * 100
}

// MissionsDocument is the envelope of a missions partition file.
type MissionsDocument struct {
	Missions []Mission `json:"missions"`
}
