package view

import "strings"

const (
	LangUK = "uk"
	LangEN = "en"
)

// NormalizeLanguage returns a supported language code, or fallback.
func NormalizeLanguage(lang, fallback string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := catalogs[lang]; ok {
		return lang
	}
	if _, ok := catalogs[fallback]; ok {
		return fallback
	}
	return LangUK
}

// Text looks key up in lang, falling back to Ukrainian and then to the key.
func Text(lang, key string) string {
	if v, ok := catalogs[lang][key]; ok {
		return v
	}
	if v, ok := catalogs[LangUK][key]; ok {
		return v
	}
	return key
}

func Texts(lang string) map[string]string {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[LangUK]
}

var catalogs = map[string]map[string]string{
	LangUK: {
		"app_name":  "TrainTickets",
		"app_sub":   "Sales & Analytics",
		"nav_sales": "Продаж квитків",
		"nav_stats": "Аналітика",

		"search_title":      "Продаж залізничних квитків",
		"search_subtitle":   "Спочатку оберіть напрямок, потім дату з календаря доступних рейсів, після чого оформіть квиток.",
		"route_card":        "Напрямок та дата поїздки",
		"route_caption":     "Система покаже в календарі лише ті дні, коли є рейси на обраному маршруті.",
		"from":              "Звідки",
		"to":                "Куди",
		"choose_station":    "Оберіть станцію",
		"show_calendar":     "Показати календар",
		"calendar_caption":  "Оберіть дату прямо в календарі. Клік активний лише для днів з доступними рейсами.",
		"calendar_empty":    "Немає дат з доступними рейсами для обраного маршруту.",
		"available_dates":   "Доступні дати",
		"prev_month":        "← Попередній",
		"next_month":        "Наступний →",
		"trips_card":        "Рейси на обрану дату",
		"trips_caption":     "Після вибору дати в календарі тут зʼявляться доступні рейси.",
		"trips_pick_first":  "Спочатку оберіть маршрут і дату в календарі.",
		"col_id":            "ID",
		"col_route":         "Маршрут",
		"col_departure":     "Відправлення",
		"col_arrival":       "Прибуття",
		"col_base_price":    "Базова ціна",
		"choose":            "Обрати",
		"purchase_card":     "Оформлення квитка",
		"purchase_caption":  "Оберіть рейс зліва, а потім заповніть дані пасажира.",
		"no_trip_selected":  "Рейс ще не обрано. Натисніть кнопку «Обрати» у таблиці з рейсами.",
		"trip_chip":         "Рейс",
		"price":             "Ціна",
		"passenger_name":    "Ім'я пасажира",
		"passenger_example": "Наприклад, Іван Петренко",
		"seat_number":       "Номер місця",
		"seat_example":      "Напр. 12A",
		"buy":               "Купити квиток",

		"ticket_title":    "Ваш квиток",
		"ticket_subtitle": "Підтвердження покупки. Ці дані вже враховані в модулі аналітики.",
		"ticket":          "Квиток",
		"status":          "Статус",
		"passenger":       "Пасажир",
		"seat":            "Місце",
		"tech_data":       "Технічні дані",
		"trip_id":         "Trip ID",
		"purchased_at":    "Дата покупки",
		"ticket_id":       "Ticket ID",
		"new_search":      "← Новий пошук",
		"open_analytics":  "Відкрити аналітику",
		"download_pdf":    "Завантажити PDF",

		"analytics_title":    "Аналітика продажів",
		"analytics_subtitle": "Переглядай агреговані показники, динаміку продажів та деталізацію по кожному квитку з гнучкими фільтрами.",
		"filter_dates":       "Фільтри по даті покупки",
		"date_from":          "З дати",
		"date_to":            "По дату",
		"filter_stations":    "Фільтри по станціях",
		"start_station":      "Станція відправлення",
		"end_station":        "Станція прибуття",
		"all":                "Усі",
		"filter_controls":    "Керування фільтрами",
		"filter_caption":     "Застосуй або скинь фільтри, щоб оновити графіки й таблиці.",
		"apply":              "Застосувати",
		"reset":              "Скинути",
		"export_csv":         "Експорт CSV",
		"sold_tickets":       "Продано квитків",
		"revenue":            "Дохід",
		"avg_price":          "Середня ціна",
		"routes_sold":        "Маршрутів з продажами",
		"by_day":             "Продажі за днями",
		"by_day_caption":     "Динаміка кількості квитків та доходу за кожен день.",
		"by_route":           "Продажі за маршрутами",
		"by_route_caption":   "Кількість квитків та дохід в розрізі route_id.",
		"by_direction":       "Структура продажів за напрямками",
		"by_direction_cap":   "Частка напрямків за кількістю квитків та за доходом.",
		"share_tickets":      "За кількістю квитків",
		"share_revenue":      "За доходом",
		"top_routes":         "Топ-5 маршрутів",
		"tickets_table":      "Таблиця куплених квитків",
		"no_tickets":         "Немає квитків за обраними фільтрами.",
		"date":               "Дата",
		"tickets":            "Квитків",
		"direction":          "Напрямок",
		"route_id":           "Route ID",
		"col_ticket_id":      "ID квитка",

		"error_title":     "Помилка",
		"not_found_title": "Сторінку не знайдено",
		"go_home":         "На головну",

		"stations_failed":     "Не вдалося завантажити станції",
		"dates_failed":        "Не вдалося завантажити доступні дати для маршруту",
		"no_trips_for_route":  "Для обраного маршруту немає жодного рейсу. Спробуйте інший напрямок.",
		"trips_failed":        "Помилка при завантаженні рейсів",
		"no_trips_for_date":   "На цю дату рейсів не знайдено",
		"purchase_incomplete": "Заповніть всі поля для покупки квитка",
		"purchase_invalid":    "Перевірте імʼя пасажира та номер місця",
		"purchase_failed":     "Помилка при покупці квитка",
		"ticket_failed":       "Не вдалося завантажити квиток",
		"ticket_not_found":    "Квиток не знайдено.",
		"analytics_failed":    "Не вдалося завантажити аналітику",
		"invalid_filter":      "Некоректні значення фільтрів",
		"unauthorized":        "Потрібна авторизація",
		"internal":            "Сталася внутрішня помилка",
		"unavailable":         "Сервер квитків недоступний",
		"page_not_found":      "Такої сторінки немає",
	},
	LangEN: {
		"app_name":  "TrainTickets",
		"app_sub":   "Sales & Analytics",
		"nav_sales": "Ticket sales",
		"nav_stats": "Analytics",

		"search_title":      "Train ticket sales",
		"search_subtitle":   "Pick a direction first, then a date from the calendar of available trips, then book the ticket.",
		"route_card":        "Direction and travel date",
		"route_caption":     "The calendar only shows days with trips on the chosen route.",
		"from":              "From",
		"to":                "To",
		"choose_station":    "Choose a station",
		"show_calendar":     "Show calendar",
		"calendar_caption":  "Pick the date right in the calendar. Only days with trips are clickable.",
		"calendar_empty":    "No dates with trips for the chosen route.",
		"available_dates":   "Available dates",
		"prev_month":        "← Previous",
		"next_month":        "Next →",
		"trips_card":        "Trips on the chosen date",
		"trips_caption":     "Trips appear here once a date is picked in the calendar.",
		"trips_pick_first":  "Pick a route and a date in the calendar first.",
		"col_id":            "ID",
		"col_route":         "Route",
		"col_departure":     "Departure",
		"col_arrival":       "Arrival",
		"col_base_price":    "Base price",
		"choose":            "Choose",
		"purchase_card":     "Ticket booking",
		"purchase_caption":  "Choose a trip on the left, then fill in the passenger details.",
		"no_trip_selected":  "No trip selected yet. Press \"Choose\" in the trips table.",
		"trip_chip":         "Trip",
		"price":             "Price",
		"passenger_name":    "Passenger name",
		"passenger_example": "e.g. Ivan Petrenko",
		"seat_number":       "Seat number",
		"seat_example":      "e.g. 12A",
		"buy":               "Buy ticket",

		"ticket_title":    "Your ticket",
		"ticket_subtitle": "Purchase confirmation. This sale is already counted in analytics.",
		"ticket":          "Ticket",
		"status":          "Status",
		"passenger":       "Passenger",
		"seat":            "Seat",
		"tech_data":       "Technical details",
		"trip_id":         "Trip ID",
		"purchased_at":    "Purchased at",
		"ticket_id":       "Ticket ID",
		"new_search":      "← New search",
		"open_analytics":  "Open analytics",
		"download_pdf":    "Download PDF",

		"analytics_title":    "Sales analytics",
		"analytics_subtitle": "Aggregated figures, sales over time and per-ticket details with flexible filters.",
		"filter_dates":       "Purchase date filters",
		"date_from":          "From date",
		"date_to":            "To date",
		"filter_stations":    "Station filters",
		"start_station":      "Departure station",
		"end_station":        "Arrival station",
		"all":                "All",
		"filter_controls":    "Filter controls",
		"filter_caption":     "Apply or reset filters to refresh charts and tables.",
		"apply":              "Apply",
		"reset":              "Reset",
		"export_csv":         "Export CSV",
		"sold_tickets":       "Tickets sold",
		"revenue":            "Revenue",
		"avg_price":          "Average price",
		"routes_sold":        "Routes with sales",
		"by_day":             "Sales by day",
		"by_day_caption":     "Tickets and revenue for each day.",
		"by_route":           "Sales by route",
		"by_route_caption":   "Tickets and revenue per route_id.",
		"by_direction":       "Sales by direction",
		"by_direction_cap":   "Share of each direction by tickets and by revenue.",
		"share_tickets":      "By tickets",
		"share_revenue":      "By revenue",
		"top_routes":         "Top 5 routes",
		"tickets_table":      "Purchased tickets",
		"no_tickets":         "No tickets match the filters.",
		"date":               "Date",
		"tickets":            "Tickets",
		"direction":          "Direction",
		"route_id":           "Route ID",
		"col_ticket_id":      "Ticket ID",

		"error_title":     "Error",
		"not_found_title": "Page not found",
		"go_home":         "Home",

		"stations_failed":     "Could not load stations",
		"dates_failed":        "Could not load available dates for the route",
		"no_trips_for_route":  "There are no trips on this route. Try another direction.",
		"trips_failed":        "Error while loading trips",
		"no_trips_for_date":   "No trips found for this date",
		"purchase_incomplete": "Fill in all fields to buy a ticket",
		"purchase_invalid":    "Check the passenger name and seat number",
		"purchase_failed":     "Ticket purchase failed",
		"ticket_failed":       "Could not load the ticket",
		"ticket_not_found":    "Ticket not found.",
		"analytics_failed":    "Could not load analytics",
		"invalid_filter":      "Invalid filter values",
		"unauthorized":        "Authorization required",
		"internal":            "An internal error occurred",
		"unavailable":         "The tickets server is unavailable",
		"page_not_found":      "There is no such page",
	},
}
