package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"frontend/internal/apiclient"
	"frontend/internal/calendar"
	"frontend/internal/config"
	"frontend/internal/domain"
	"frontend/internal/services"
	"frontend/internal/view"
)

// Calendar prints the date picker of a route in the terminal, either from
// the backend (-from/-to) or from an explicit -dates list.
func Calendar(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calendar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.Int64("from", 0, "Start station id")
	to := fs.Int64("to", 0, "End station id")
	dates := fs.String("dates", "", "Comma separated YYYY-MM-DD list; skips the backend")
	date := fs.String("date", "", "Selected date (YYYY-MM-DD)")
	month := fs.String("month", "", "Month to show (YYYY-MM)")
	lang := fs.String("lang", "", "Label language (uk or en)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: frontend calendar [-from ID -to ID | -dates LIST] [-date D] [-month M]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		v   services.CalendarView
		err error
	)
	if strings.TrimSpace(*dates) != "" {
		v, err = offlineCalendar(splitDates(*dates), *date, *month)
		if *lang == "" {
			*lang = view.LangUK
		}
	} else {
		cfg, cfgErr := config.Load()
		if cfgErr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", cfgErr)
			return 1
		}
		if *lang == "" {
			*lang = cfg.UI.Language
		}
		svc := services.CalendarService{API: apiclient.New(cfg.API, nil)}
		v, err = svc.Load(ctx, services.CalendarQuery{
			From:  domain.ID(*from),
			To:    domain.ID(*to),
			Date:  *date,
			Month: *month,
		})
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	lng := view.NormalizeLanguage(*lang, view.LangUK)
	if v.Grid == nil {
		msg := v.Error
		if msg == services.MsgNone {
			msg = services.MsgNoTripsForRoute
		}
		fmt.Fprintln(stdout, view.Text(lng, string(msg)))
		return 0
	}
	RenderGrid(stdout, v.Grid, lng)
	fmt.Fprintf(stdout, "%s: %d\n", view.Text(lng, "available_dates"), v.Grid.AvailableCount)
	if v.Prev != "" {
		fmt.Fprintf(stdout, "%s: %s\n", view.Text(lng, "prev_month"), v.Prev)
	}
	if v.Next != "" {
		fmt.Fprintf(stdout, "%s: %s\n", view.Text(lng, "next_month"), v.Next)
	}
	return 0
}

func offlineCalendar(dates []string, date, month string) (services.CalendarView, error) {
	v := services.CalendarView{Dates: dates}
	for _, d := range dates {
		if d == date {
			v.Selected = date
		}
	}
	if month != "" {
		ym, err := calendar.ParseYearMonth(month)
		if err != nil {
			return v, err
		}
		v.Grid = calendar.BuildMonth(ym.Year, ym.Month, dates, v.Selected)
	} else {
		g, err := calendar.Build(dates, v.Selected)
		if err != nil {
			return v, err
		}
		v.Grid = g
	}
	if ym, ok := v.Grid.Prev(dates); ok {
		v.Prev = ym.String()
	}
	if ym, ok := v.Grid.Next(dates); ok {
		v.Next = ym.String()
	}
	return v, nil
}

func splitDates(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// RenderGrid prints g as a Monday-first table. Available days carry a "*",
// the selected day is bracketed; rows without any day are skipped.
func RenderGrid(w io.Writer, g *calendar.Grid, lang string) {
	fmt.Fprintln(w, calendar.MonthLabel(lang, g.Year, g.Month))
	var b strings.Builder
	for _, wd := range calendar.WeekdayLabels(lang) {
		fmt.Fprintf(&b, "%5s", wd)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for _, week := range g.Weeks {
		b.Reset()
		empty := true
		for _, c := range week {
			if c.Blank() {
				b.WriteString("     ")
				continue
			}
			empty = false
			label := fmt.Sprint(c.Day)
			if c.IsAvailable {
				label += "*"
			}
			if c.IsSelected {
				label = "[" + label + "]"
			}
			fmt.Fprintf(&b, "%5s", label)
		}
		if !empty {
			fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
		}
	}
}
