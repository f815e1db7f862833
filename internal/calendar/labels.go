package calendar

import (
	"fmt"
	"time"
)

var monthNames = map[string][12]string{
	"uk": {"січень", "лютий", "березень", "квітень", "травень", "червень",
		"липень", "серпень", "вересень", "жовтень", "листопад", "грудень"},
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

var weekdayNames = map[string][7]string{
	"uk": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"},
	"en": {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
}

// MonthLabel returns e.g. "березень 2024". Unknown languages fall back to uk.
func MonthLabel(lang string, year int, month time.Month) string {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames["uk"]
	}
	if month < time.January || month > time.December {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", names[month-1], year)
}

// WeekdayLabels returns Monday-first short weekday names.
func WeekdayLabels(lang string) [7]string {
	if names, ok := weekdayNames[lang]; ok {
		return names
	}
	return weekdayNames["uk"]
}
