package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the formats the data repo actually uses. Most documents
// carry bare calendar dates, a few carry full RFC 3339 timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a calendar timestamp decoded from the data repo's ISO-8601 strings.
// It re-encodes as "2006-01-02" when the time-of-day is midnight, so a
// round-trip through JSON preserves the source representation.
type Date struct {
	time.Time
}

// ParseDate parses an ISO-8601 date or timestamp string.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("unparseable date %q", s)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	if h, m, s := d.Clock(); h == 0 && m == 0 && s == 0 {
		return []byte(`"` + d.Format("2006-01-02") + `"`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// Day truncates to the calendar day (midnight UTC). Gap arithmetic between
// entries always works on Day values — time-of-day never counts.
func (d Date) Day() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DayGap returns the number of whole days between two timestamps,
// comparing calendar days only.
func DayGap(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db) / (24 * time.Hour))
}
