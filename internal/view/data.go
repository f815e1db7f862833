package view

import (
	"net/url"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/services"
)

// Base is shared by every page.
type Base struct {
	Lang      string
	Title     string
	Nav       string
	Path      string
	RequestID string
	Error     string
	Detail    string
	text      map[string]string
}

func NewBase(lang, titleKey, nav string) Base {
	return Base{
		Lang:  lang,
		Title: Text(lang, titleKey),
		Nav:   nav,
		text:  Texts(lang),
	}
}

// T is the template-side catalog lookup.
func (b Base) T(key string) string {
	if v, ok := b.text[key]; ok {
		return v
	}
	return Text(b.Lang, key)
}

func (b *Base) SetMessage(msg services.Message) {
	if msg == services.MsgNone {
		b.Error = ""
		return
	}
	b.Error = Text(b.Lang, string(msg))
}

// LangURL switches language and comes back to the current page.
func (b Base) LangURL(lang string) string {
	q := url.Values{}
	if b.Path != "" {
		q.Set("next", b.Path)
	}
	if len(q) == 0 {
		return "/lang/" + lang
	}
	return "/lang/" + lang + "?" + q.Encode()
}

type SearchData struct {
	Base
	Page          services.SearchPage
	PassengerName string
	SeatNumber    string
	PurchaseError string
}

func (d SearchData) routeValues() url.Values {
	q := url.Values{}
	if d.Page.Query.From > 0 {
		q.Set("from", d.Page.Query.From.String())
	}
	if d.Page.Query.To > 0 {
		q.Set("to", d.Page.Query.To.String())
	}
	return q
}

func (d SearchData) DateURL(iso string) string {
	q := d.routeValues()
	q.Set("date", iso)
	if d.Page.Query.Month != "" {
		q.Set("month", d.Page.Query.Month)
	}
	return "/?" + q.Encode()
}

func (d SearchData) MonthURL(month string) string {
	q := d.routeValues()
	q.Set("month", month)
	if d.Page.Date != "" {
		q.Set("date", d.Page.Date)
	}
	return "/?" + q.Encode()
}

func (d SearchData) TripURL(id domain.ID) string {
	q := d.routeValues()
	if d.Page.Date != "" {
		q.Set("date", d.Page.Date)
	}
	if d.Page.Query.Month != "" {
		q.Set("month", d.Page.Query.Month)
	}
	q.Set("trip", id.String())
	return "/?" + q.Encode()
}

func (d SearchData) IsFrom(id domain.ID) bool { return d.Page.Query.From == id }

func (d SearchData) IsTo(id domain.ID) bool { return d.Page.Query.To == id }

type TicketData struct {
	Base
	Ticket *models.Ticket
}

type AnalyticsData struct {
	Base
	Form      services.AnalyticsForm
	Stations  []models.Station
	Dashboard *services.Dashboard
}

func (d AnalyticsData) SelectedStart(id domain.ID) bool {
	return d.Form.StartStationID == id.String()
}

func (d AnalyticsData) SelectedEnd(id domain.ID) bool {
	return d.Form.EndStationID == id.String()
}

// CSVURL exports the tickets table with the filters currently applied.
func (d AnalyticsData) CSVURL() string {
	if d.Dashboard == nil || d.Dashboard.Filter.IsZero() {
		return "/analytics/tickets.csv"
	}
	return "/analytics/tickets.csv?" + d.Dashboard.Filter.Values().Encode()
}

type ErrorData struct {
	Base
	Status int
}
