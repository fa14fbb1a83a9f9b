package domain

import "strconv"

// ZeroPad renders a counter left-padded with '0' to the given width,
// matching the dashboard's fixed-width streak readout ("0042"). Values
// wider than the pad come through untruncated.
func ZeroPad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// StreakPadWidth is the display width of the streak counters.
const StreakPadWidth = 4
