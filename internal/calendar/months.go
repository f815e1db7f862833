package calendar

import (
	"fmt"
	"sort"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

func (ym YearMonth) before(o YearMonth) bool {
	if ym.Year != o.Year {
		return ym.Year < o.Year
	}
	return ym.Month < o.Month
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, ErrInvalidDate
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// AvailableMonths lists, in ascending order, the distinct months that contain
// at least one parseable available date.
func AvailableMonths(available []string) []YearMonth {
	seen := map[YearMonth]struct{}{}
	out := []YearMonth{}
	for _, d := range available {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			continue
		}
		ym := YearMonth{Year: t.Year(), Month: t.Month()}
		if _, ok := seen[ym]; ok {
			continue
		}
		seen[ym] = struct{}{}
		out = append(out, ym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].before(out[j]) })
	return out
}

// Current is the month the grid shows.
func (g *Grid) Current() YearMonth {
	return YearMonth{Year: g.Year, Month: g.Month}
}

// Prev returns the closest earlier month that has available dates.
func (g *Grid) Prev(available []string) (YearMonth, bool) {
	cur := g.Current()
	months := AvailableMonths(available)
	for i := len(months) - 1; i >= 0; i-- {
		if months[i].before(cur) {
			return months[i], true
		}
	}
	return YearMonth{}, false
}

// Next returns the closest later month that has available dates.
func (g *Grid) Next(available []string) (YearMonth, bool) {
	cur := g.Current()
	for _, m := range AvailableMonths(available) {
		if cur.before(m) {
			return m, true
		}
	}
	return YearMonth{}, false
}
