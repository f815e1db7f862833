package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"frontend/internal/auth"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/http/middleware"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStations = []models.Station{
		{ID: 1, Name: "Київ", Code: "KYIV"},
		{ID: 2, Name: "Львів", Code: "LVIV"},
	}
	testTrip = models.Trip{ID: 7, RouteID: 3, BasePrice: 450}
)

func newTestEngine(t *testing.T, api *fakeAPI) (*gin.Engine, *auth.PurchaseTokens) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	views, err := view.NewRenderer()
	require.NoError(t, err)
	tokens, err := auth.NewPurchaseTokens("handler-secret", 0)
	require.NoError(t, err)

	hd := New(api, tokens, views)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Language(view.LangUK))
	r.NoRoute(hd.NotFound)
	r.GET("/", hd.Search)
	r.POST("/tickets", hd.Purchase)
	r.GET("/ticket/:id", hd.Ticket)
	r.GET("/ticket/:id/pdf", hd.GetTicketPDF)
	r.GET("/analytics", hd.Analytics)
	r.GET("/analytics/tickets.csv", hd.GetTicketsCSV)
	r.GET("/api/calendar", hd.GetCalendar)
	r.GET("/lang/:code", SetLanguage)
	return r, tokens
}

func routeAPI() *fakeAPI {
	return &fakeAPI{
		stations: testStations,
		dates:    []string{"2024-03-01", "2024-03-15"},
		trips:    []models.Trip{testTrip},
	}
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	return do(r, httptest.NewRequest(http.MethodGet, target, nil))
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(r, req)
}

func TestSearchSelectsTrip(t *testing.T) {
	api := routeAPI()
	r, _ := newTestEngine(t, api)

	w := get(r, "/?from=1&to=2&date=2024-03-15&trip=7")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "березень 2024")
	assert.Contains(t, body, `name="token" value="`)
	assert.Contains(t, body, `name="trip" value="7"`)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestSearchIgnoresUnavailableDate(t *testing.T) {
	api := routeAPI()
	r, _ := newTestEngine(t, api)

	w := get(r, "/?from=1&to=2&date=2024-03-02")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, api.called("dates"))
	assert.False(t, api.called("trips"))
	assert.NotContains(t, w.Body.String(), `class="day selected"`)
}

func TestSearchStationsFailure(t *testing.T) {
	api := &fakeAPI{stationsErr: domain.UnavailableError{Service: "tickets api"}}
	r, _ := newTestEngine(t, api)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Не вдалося завантажити станції")
}

func TestSearchMalformedQueryFallsBack(t *testing.T) {
	api := routeAPI()
	r, _ := newTestEngine(t, api)

	w := get(r, "/?from=abc&to=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, api.called("dates"))
}

func TestPurchaseRedirectsToTicket(t *testing.T) {
	api := routeAPI()
	api.created = models.Ticket{ID: 42, TripID: 7, SeatNumber: "12A"}
	r, tokens := newTestEngine(t, api)
	token, err := tokens.Issue(7, 450)
	require.NoError(t, err)

	w := postForm(r, "/tickets", url.Values{
		"token":          {token},
		"passenger_name": {"  Іван   Петренко "},
		"seat_number":    {"12a"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/ticket/42", w.Header().Get("Location"))
	require.NotNil(t, api.createdWith)
	assert.Equal(t, domain.ID(7), api.createdWith.TripID)
	assert.Equal(t, 450.0, api.createdWith.Price)
	assert.Equal(t, "Іван   Петренко", api.createdWith.PassengerName)
	assert.Equal(t, "12a", api.createdWith.SeatNumber)
}

func TestPurchaseMissingFields(t *testing.T) {
	api := routeAPI()
	r, tokens := newTestEngine(t, api)
	token, err := tokens.Issue(7, 450)
	require.NoError(t, err)

	w := postForm(r, "/tickets", url.Values{
		"token":          {token},
		"passenger_name": {"Іван"},
		"seat_number":    {"  "},
		"from":           {"1"},
		"to":             {"2"},
		"date":           {"2024-03-15"},
		"trip":           {"7"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, api.called("create"))
	body := w.Body.String()
	assert.Contains(t, body, "Заповніть всі поля для покупки квитка")
	assert.Contains(t, body, `value="Іван"`)
}

func TestPurchaseShowsBackendDetail(t *testing.T) {
	api := routeAPI()
	api.createErr = domain.ConflictError{Resource: "ticket", Msg: "Seat already booked for this trip"}
	r, tokens := newTestEngine(t, api)
	token, err := tokens.Issue(7, 450)
	require.NoError(t, err)

	w := postForm(r, "/tickets", url.Values{
		"token":          {token},
		"passenger_name": {"Іван"},
		"seat_number":    {"12A"},
		"from":           {"1"},
		"to":             {"2"},
		"date":           {"2024-03-15"},
		"trip":           {"7"},
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Seat already booked for this trip")
}

func TestPurchaseRejectsForgedToken(t *testing.T) {
	api := routeAPI()
	r, _ := newTestEngine(t, api)

	w := postForm(r, "/tickets", url.Values{
		"token":          {"not-a-token"},
		"passenger_name": {"Іван"},
		"seat_number":    {"12A"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, api.called("create"))
	assert.Contains(t, w.Body.String(), "Помилка при покупці квитка")
}

func TestTicketPage(t *testing.T) {
	api := &fakeAPI{ticket: models.Ticket{ID: 42, TripID: 7, PassengerName: "Іван", SeatNumber: "12A", Price: 450, Status: domain.StatusPaid}}
	r, _ := newTestEngine(t, api)

	w := get(r, "/ticket/42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="status-paid"`)
}

func TestTicketPageErrors(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		err    error
		status int
		text   string
	}{
		{"not found", "/ticket/9", domain.NotFoundError{Resource: "ticket"}, http.StatusNotFound, "Квиток не знайдено."},
		{"backend down", "/ticket/9", domain.UnavailableError{Service: "tickets api"}, http.StatusBadGateway, "Не вдалося завантажити квиток"},
		{"bad id", "/ticket/abc", nil, http.StatusNotFound, "Квиток не знайдено."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{ticketErr: tc.err}
			r, _ := newTestEngine(t, api)
			w := get(r, tc.path)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.text)
		})
	}
}

func TestTicketPDF(t *testing.T) {
	api := &fakeAPI{ticket: models.Ticket{ID: 42, TripID: 7, PassengerName: "Іван Петренко", SeatNumber: "12A", Price: 450, Status: domain.StatusPaid}}
	r, _ := newTestEngine(t, api)

	w := get(r, "/ticket/42/pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ETICKET_42_Ivan_Petrenko_12A.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestTicketPDFNotFoundIsJSON(t *testing.T) {
	api := &fakeAPI{ticketErr: domain.NotFoundError{Resource: "ticket"}}
	r, _ := newTestEngine(t, api)

	w := get(r, "/ticket/42/pdf")
	require.Equal(t, http.StatusNotFound, w.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "not_found", payload["code"])
	assert.NotEmpty(t, payload["request_id"])
}

func TestAnalyticsInvalidFilterMakesNoCalls(t *testing.T) {
	api := &fakeAPI{}
	r, _ := newTestEngine(t, api)

	w := get(r, "/analytics?date_from=03/01/2024")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, api.count())
	assert.Contains(t, w.Body.String(), "Некоректні значення фільтрів")
}

func TestAnalyticsFailureShowsNoData(t *testing.T) {
	api := &fakeAPI{analyticsErr: domain.UnavailableError{Service: "tickets api"}}
	r, _ := newTestEngine(t, api)

	w := get(r, "/analytics")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Не вдалося завантажити аналітику")
	assert.NotContains(t, body, `id="summary"`)
}

func TestAnalyticsDashboard(t *testing.T) {
	api := &fakeAPI{
		stations: testStations,
		summary:  models.Summary{TotalTickets: 2, TotalRevenue: 900, AvgPrice: 450, RoutesSold: 1},
		byDay:    []models.DaySales{{Date: "2024-03-10", Tickets: 2, Revenue: 900}},
		tickets:  []models.TicketRow{{TicketID: 42, PassengerName: "Іван", StartStationID: 1, EndStationID: 2, Price: 450}},
	}
	r, _ := newTestEngine(t, api)

	w := get(r, "/analytics?start_station_id=1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "900.00 ₴")
	assert.Contains(t, body, "Київ (KYIV) → Львів (LVIV)")
	assert.Contains(t, body, `<option value="1" selected>Київ (KYIV)</option>`)
}

func TestTicketsCSV(t *testing.T) {
	api := &fakeAPI{tickets: []models.TicketRow{{TicketID: 42, PassengerName: "Іван", Price: 450}}}
	r, _ := newTestEngine(t, api)

	w := get(r, "/analytics/tickets.csv?date_from=2024-03-01")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "tickets_from_2024-03-01.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "ticket_id,"))

	w = get(r, "/analytics/tickets.csv?start_station_id=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarJSON(t *testing.T) {
	api := routeAPI()
	r, _ := newTestEngine(t, api)

	w := get(r, "/api/calendar?from=1&to=2&date=2024-03-15")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Dates    []string `json:"dates"`
		Selected string   `json:"selected"`
		Label    string   `json:"label"`
		Grid     struct {
			Year  int `json:"year"`
			Month int `json:"month"`
		} `json:"grid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-15", resp.Selected)
	assert.Equal(t, "березень 2024", resp.Label)
	assert.Equal(t, 2024, resp.Grid.Year)
	assert.Equal(t, 3, resp.Grid.Month)

	w = get(r, "/api/calendar?from=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetLanguage(t *testing.T) {
	r, _ := newTestEngine(t, &fakeAPI{})

	w := get(r, "/lang/en?next=/analytics")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/analytics", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "lang=en")

	w = get(r, "/lang/en?next=//evil.example")
	assert.Equal(t, "/", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/ticket/abc", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LangCookie, Value: "en"})
	w = do(r, req)
	assert.Contains(t, w.Body.String(), "Ticket not found.")
}

func TestNotFound(t *testing.T) {
	r, _ := newTestEngine(t, &fakeAPI{})

	w := get(r, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Сторінку не знайдено")

	w = get(r, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
