// Package streak computes check-in streaks from the daily-progress timeline.
// Pure functions over an already-fetched activity log — no I/O, no state.
package streak

import (
	"sort"
	"time"

	"github.com/fightclub-net/fightclub/internal/domain"
)

// Compute walks the activity log and returns the current and best streaks.
//
// Entries may arrive in any order; they are sorted newest-first before the
// walk. Duplicate calendar days collapse to a single day: a zero-day gap
// neither extends nor breaks a run. A one-day gap extends the run, anything
// larger breaks it. Best is the longest contiguous run found anywhere in
// history, not just the most recent one.
//
// Freshness: if more than one whole day has passed between now and the
// newest entry, the current streak reads as 0 no matter how long the
// trailing run is — an idle user's streak is broken.
func Compute(entries []domain.ActivityEntry, now time.Time) domain.StreakResult {
	if len(entries) == 0 {
		return domain.StreakResult{}
	}

	days := uniqueDaysDesc(entries)

	runs := runLengths(days)

	best := 0
	for _, r := range runs {
		if r > best {
			best = r
		}
	}

	current := runs[0]
	if domain.DayGap(now, days[0]) > 1 {
		current = 0
	}

	return domain.StreakResult{Current: current, Best: best}
}

// uniqueDaysDesc sorts entries newest-first and collapses same-day
// duplicates, returning distinct calendar days.
func uniqueDaysDesc(entries []domain.ActivityEntry) []time.Time {
	sorted := make([]domain.ActivityEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})

	var days []time.Time
	for _, e := range sorted {
		day := e.Date.Day()
		if len(days) > 0 && days[len(days)-1].Equal(day) {
			continue
		}
		days = append(days, day)
	}
	return days
}

// runLengths splits distinct newest-first days into contiguous runs.
// runs[0] is the run containing the newest entry.
func runLengths(days []time.Time) []int {
	runs := []int{1}
	for i := 1; i < len(days); i++ {
		if domain.DayGap(days[i-1], days[i]) == 1 {
			runs[len(runs)-1]++
		} else {
			runs = append(runs, 1)
		}
	}
	return runs
}
