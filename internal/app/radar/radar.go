// Package radar reshapes ability maps into the ordering the radial chart
// renders, and carries the percentage/axis math the panels share.
//
// The ordering ("cardinal balancing") is a layout heuristic: long labels
// read best at the top and bottom of a polar chart, short labels fit the
// cramped east/west sides. The position formulas are fixed — changing them
// changes the rendered chart.
package radar

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// AbilityPoint is one axis of the radar: a display label and its value.
type AbilityPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Shape converts an ability map into display order:
//
//	position 0        — longest label (north)
//	position ⌊n/2⌋    — second longest (south)
//	positions ⌊n/4⌋ and ⌊3n/4⌋ — filled last, shortest labels (east/west)
//	everything else   — next-longest labels, ascending position order
//
// Labels are formatted before measuring. Ties break alphabetically so the
// layout is stable across refreshes of the same data.
func Shape(abilities map[string]float64) []AbilityPoint {
	n := len(abilities)
	if n == 0 {
		return nil
	}

	entries := make([]AbilityPoint, 0, n)
	for name, value := range abilities {
		entries = append(entries, AbilityPoint{Name: FormatLabel(name), Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Name) != len(entries[j].Name) {
			return len(entries[i].Name) > len(entries[j].Name)
		}
		return entries[i].Name < entries[j].Name
	})

	out := make([]AbilityPoint, n)
	taken := make([]bool, n)
	next := 0
	place := func(pos int) {
		out[pos] = entries[next]
		taken[pos] = true
		next++
	}

	place(0)
	if n > 1 {
		place(n / 2)
	}

	// Side positions still open after north/south are filled last.
	var sides []int
	for _, pos := range []int{n / 4, 3 * n / 4} {
		if pos < n && !taken[pos] {
			sides = append(sides, pos)
		}
	}
	isSide := func(pos int) bool {
		for _, s := range sides {
			if s == pos {
				return true
			}
		}
		return false
	}

	for pos := 0; pos < n; pos++ {
		if !taken[pos] && !isSide(pos) {
			place(pos)
		}
	}
	for _, pos := range sides {
		place(pos)
	}

	return out
}

var labelSeparators = regexp.MustCompile(`[\s_-]+`)

// FormatLabel turns a raw ability key ("street_smartness") into its display
// label ("Street Smartness"): split on whitespace/underscore/hyphen runs,
// upper-case each token's first rune, rejoin with single spaces.
func FormatLabel(raw string) string {
	tokens := labelSeparators.Split(raw, -1)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		r := []rune(tok)
		r[0] = unicode.ToUpper(r[0])
		out = append(out, string(r))
	}
	return strings.Join(out, " ")
}

// Percent is the raw ratio-to-percent used for xp/health/energy bars.
// Deliberately unclamped and unguarded: malformed source data (max 0,
// current > max) flows through to the caller unchanged.
func Percent(current, max float64) float64 {
	return current / max * 100
}

// AxisScale derives the radial axis bounds for a value set. The maximum
// rounds the largest value (never below 100) up to the next hundred. The
// axis stays zero-based unless negative values appear, in which case the
// minimum rounds down to the next hundred below the smallest value.
func AxisScale(values []float64) (min, max float64) {
	maxVal := 100.0
	minVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	max = math.Ceil(maxVal/100) * 100
	if minVal < 0 {
		min = math.Floor(minVal/100) * 100
	}
	return min, max
}
