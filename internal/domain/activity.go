// Package domain holds the read-model types decoded from the data repo.
// Every type here is an immutable value produced from one fetch cycle —
// the git repo is the source of truth, this engine never writes back.
// JSON field names mirror the repo's documents verbatim (snake_case).
package domain

// ActivityEntry is one day's check-in from the daily-progress timeline.
// Entries may arrive unordered and duplicate calendar days are possible;
// the streak calculator tolerates both.
type ActivityEntry struct {
	Date      Date   `json:"date"`
	Title     string `json:"title"`
	Milestone bool   `json:"milestone,omitempty"`
	URL       string `json:"url,omitempty"`
}

// StreakResult is the output of the streak calculation.
type StreakResult struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}
