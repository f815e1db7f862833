package domain

import (
	"strconv"
	"strings"
	"time"
)

// ID is used across domain entities.
type ID int64

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID parses a positive decimal id. Empty input yields 0 and no error.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, ValidationError{Field: "id", Msg: "must be a positive integer", Err: err}
	}
	return ID(n), nil
}

// Status represents a ticket state value as reported by the backend.
type Status string

const (
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

// dateTimeLayouts are accepted in order. The backend emits naive timestamps.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// DateTime is a backend timestamp. Naive values are interpreted as UTC.
type DateTime struct {
	time.Time
}

func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateTime{Time: t}, nil
		}
		lastErr = err
	}
	return DateTime{}, lastErr
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	unq, err := strconv.Unquote(s)
	if err != nil {
		return err
	}
	parsed, err := ParseDateTime(unq)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format("2006-01-02T15:04:05"))), nil
}

// MarshalCSV keeps exports in the same naive format the backend uses.
func (d DateTime) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format("2006-01-02T15:04:05"), nil
}
