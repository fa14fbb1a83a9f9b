package domain

import "fmt"

// HistoryEntry is one row of the gamification event log (history.json).
// Older documents carry the event under "state" instead of "event_type";
// EventKind merges the two.
type HistoryEntry struct {
	HistoryIndex      int      `json:"history_index"`
	AlterEgo          string   `json:"alter-ego"`
	MissionAssociated string   `json:"mission_associated,omitempty"`
	EventType         string   `json:"event_type,omitempty"`
	State             string   `json:"state,omitempty"`
	Date              Date     `json:"date"`
	RewardUnlocked    []string `json:"reward_unlocked,omitempty"`
	HabitName         string   `json:"habit_name,omitempty"`
	StreakDays        int      `json:"streak_days,omitempty"`
	DaysMissed        int      `json:"days_missed,omitempty"`
}

// Event kinds observed in history.json.
const (
	EventCompleted       = "completed"
	EventFailed          = "failed"
	EventMissedCheckin   = "missed_checkin_penalty"
	EventStreakMilestone = "streak_milestone"
)

// EventKind returns the event type, falling back to the legacy state field.
func (e HistoryEntry) EventKind() string {
	if e.EventType != "" {
		return e.EventType
	}
	return e.State
}

var eventIcons = map[string]string{
	EventCompleted:       "✓",
	EventFailed:          "✗",
	EventMissedCheckin:   "⚠",
	EventStreakMilestone: "🎉",
}

// Icon returns the marker glyph for this event ("•" for unknown kinds).
func (e HistoryEntry) Icon() string {
	if icon, ok := eventIcons[e.EventKind()]; ok {
		return icon
	}
	return "•"
}

// Describe renders the event as the one-line feed text.
func (e HistoryEntry) Describe() string {
	switch e.EventKind() {
	case EventCompleted:
		return fmt.Sprintf("%s completed %s", e.AlterEgo, e.MissionAssociated)
	case EventFailed:
		return fmt.Sprintf("%s failed %s", e.AlterEgo, e.MissionAssociated)
	case EventMissedCheckin:
		return fmt.Sprintf("%s missed %d days check-in", e.AlterEgo, e.DaysMissed)
	case EventStreakMilestone:
		return fmt.Sprintf("%s reached %d day streak", e.AlterEgo, e.StreakDays)
	default:
		return fmt.Sprintf("%s - %s", e.AlterEgo, e.EventKind())
	}
}
