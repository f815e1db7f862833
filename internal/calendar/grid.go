// Package calendar maps the list of dates on which a route has trips onto a
// month grid for date picking.
package calendar

import (
	"errors"
	"time"
)

const (
	Rows    = 6
	Columns = 7

	dateLayout = "2006-01-02"
)

var (
	// ErrNoData is returned when there is neither an available date nor a
	// selected date to derive the month from.
	ErrNoData = errors.New("calendar: no dates with available trips")
	// ErrInvalidDate is returned when the reference date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("calendar: invalid reference date")
)

// Cell is one day slot in the grid. A blank cell has Day == 0.
type Cell struct {
	Day         int    `json:"day,omitempty"`
	ISO         string `json:"iso,omitempty"`
	IsAvailable bool   `json:"is_available"`
	IsSelected  bool   `json:"is_selected"`
}

func (c Cell) Blank() bool { return c.Day == 0 }

// Grid is a Monday-first month view, always 6 weeks of 7 days.
type Grid struct {
	Year           int                 `json:"year"`
	Month          time.Month          `json:"month"`
	Weeks          [Rows][Columns]Cell `json:"weeks"`
	AvailableCount int                 `json:"available_count"`
}

// Build lays out the month of selected, or of available[0] when nothing is
// selected. The caller's order of available matters only for that fallback.
func Build(available []string, selected string) (*Grid, error) {
	ref := selected
	if ref == "" {
		if len(available) == 0 {
			return nil, ErrNoData
		}
		ref = available[0]
	}
	t, err := time.Parse(dateLayout, ref)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return BuildMonth(t.Year(), t.Month(), available, selected), nil
}

// BuildMonth lays out an explicit month. selected only marks a cell when it
// falls inside that month.
func BuildMonth(year int, month time.Month, available []string, selected string) *Grid {
	set := make(map[string]struct{}, len(available))
	for _, d := range available {
		set[d] = struct{}{}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	days := daysIn(year, month)

	g := &Grid{Year: first.Year(), Month: first.Month(), AvailableCount: len(available)}
	day := 1 - offset
	for w := 0; w < Rows; w++ {
		for d := 0; d < Columns; d++ {
			if day >= 1 && day <= days {
				iso := time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
				_, ok := set[iso]
				g.Weeks[w][d] = Cell{
					Day:         day,
					ISO:         iso,
					IsAvailable: ok,
					IsSelected:  selected != "" && iso == selected,
				}
			}
			day++
		}
	}
	return g
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Cells returns the 42 cells row by row.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, Rows*Columns)
	for _, week := range g.Weeks {
		out = append(out, week[:]...)
	}
	return out
}

// Click invokes onSelect with the cell's date when the cell at (row, col) is
// available. Anything else is a no-op. It reports whether onSelect ran.
func (g *Grid) Click(row, col int, onSelect func(iso string)) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return false
	}
	c := g.Weeks[row][col]
	if c.Blank() || !c.IsAvailable {
		return false
	}
	if onSelect != nil {
		onSelect(c.ISO)
	}
	return true
}

// SelectDate is Click addressed by date instead of position.
func (g *Grid) SelectDate(iso string, onSelect func(iso string)) bool {
	for w := range g.Weeks {
		for d := range g.Weeks[w] {
			if g.Weeks[w][d].ISO == iso && iso != "" {
				return g.Click(w, d, onSelect)
			}
		}
	}
	return false
}

// Selected returns the selected cell, if the grid has one.
func (g *Grid) Selected() (Cell, bool) {
	for _, c := range g.Cells() {
		if c.IsSelected {
			return c, true
		}
	}
	return Cell{}, false
}
