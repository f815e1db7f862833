package view

import (
	"fmt"
	"html/template"
	"math"
	"time"

	"frontend/internal/calendar"
	"frontend/internal/domain"
	"frontend/internal/utils"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"hryvnia": utils.FormatHryvnia,
		"money":   utils.FormatMoney,
		"price":   utils.FormatPrice,
		"datetime": func(d domain.DateTime) string {
			return utils.FormatDateTime(d.Time)
		},
		"monthLabel": func(lang string, g *calendar.Grid) string {
			return calendar.MonthLabel(lang, g.Year, g.Month)
		},
		"weekdays": calendar.WeekdayLabels,
		// width renders a CSS width for a bar, clamped to 0..100%.
		"width": func(pct float64) template.CSS {
			if math.IsNaN(pct) || pct < 0 {
				pct = 0
			}
			if pct > 100 {
				pct = 100
			}
			return template.CSS(fmt.Sprintf("width: %.1f%%", pct))
		},
		"year": func() int { return time.Now().Year() },
	}
}
