package radar_test

import (
	"math"
	"testing"

	"github.com/fightclub-net/fightclub/internal/app/radar"
)

func names(points []radar.AbilityPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Name
	}
	return out
}

func TestShape_Empty(t *testing.T) {
	if got := radar.Shape(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestShape_Single(t *testing.T) {
	got := radar.Shape(map[string]float64{"focus": 80})
	if len(got) != 1 || got[0].Name != "Focus" || got[0].Value != 80 {
		t.Errorf("got %v", got)
	}
}

func TestShape_ThreeAxes(t *testing.T) {
	got := names(radar.Shape(map[string]float64{
		"a":   1,
		"bb":  2,
		"ccc": 3,
	}))
	want := []string{"Ccc", "Bb", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestShape_FourAxes(t *testing.T) {
	// Longest north, second longest south, shortest two on the sides.
	got := names(radar.Shape(map[string]float64{
		"aaaa": 1,
		"bbb":  2,
		"cc":   3,
		"d":    4,
	}))
	want := []string{"Aaaa", "Cc", "Bbb", "D"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestShape_FiveAxes(t *testing.T) {
	got := names(radar.Shape(map[string]float64{
		"aaaaa": 1,
		"bbbb":  2,
		"ccc":   3,
		"dd":    4,
		"e":     5,
	}))
	want := []string{"Aaaaa", "Dd", "Bbbb", "E", "Ccc"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestShape_TiesBreakAlphabetically(t *testing.T) {
	got := names(radar.Shape(map[string]float64{
		"zz": 1,
		"aa": 2,
		"mm": 3,
	}))
	// All same length, so rank order is Aa, Mm, Zz.
	want := []string{"Aa", "Mm", "Zz"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestShape_ValuesFollowNames(t *testing.T) {
	got := radar.Shape(map[string]float64{
		"strength": 42,
		"iq":       99,
	})
	for _, p := range got {
		switch p.Name {
		case "Strength":
			if p.Value != 42 {
				t.Errorf("Strength: got %v", p.Value)
			}
		case "Iq":
			if p.Value != 99 {
				t.Errorf("Iq: got %v", p.Value)
			}
		default:
			t.Errorf("unexpected label %q", p.Name)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"street_smartness", "Street Smartness"},
		{"hand-to-hand", "Hand To Hand"},
		{"raw  power", "Raw Power"},
		{"mixed_sep-styles here", "Mixed Sep Styles Here"},
		{"solo", "Solo"},
		{"already Caps", "Already Caps"},
	}
	for _, c := range cases {
		if got := radar.FormatLabel(c.in); got != c.want {
			t.Errorf("FormatLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercent_Unclamped(t *testing.T) {
	if got := radar.Percent(50, 200); got != 25 {
		t.Errorf("got %v", got)
	}
	if got := radar.Percent(150, 100); got != 150 {
		t.Errorf("expected overflow to pass through, got %v", got)
	}
	if got := radar.Percent(10, 0); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf for zero max, got %v", got)
	}
}

func TestAxisScale(t *testing.T) {
	cases := []struct {
		in       []float64
		min, max float64
	}{
		{nil, 0, 100},
		{[]float64{40, 80}, 0, 100},
		{[]float64{100}, 0, 100},
		{[]float64{101}, 0, 200},
		{[]float64{250}, 0, 300},
		{[]float64{-50, 120}, -100, 200},
		{[]float64{-200}, -200, 100},
	}
	for _, c := range cases {
		min, max := radar.AxisScale(c.in)
		if min != c.min || max != c.max {
			t.Errorf("AxisScale(%v) = (%v, %v), want (%v, %v)", c.in, min, max, c.min, c.max)
		}
	}
}
