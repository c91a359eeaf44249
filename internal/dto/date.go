package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of invoice dates.
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as "YYYY-MM-DD".
// Full RFC 3339 timestamps are accepted on input and truncated to their date.
type Date struct {
	time.Time
}

// NewDate truncates t to a UTC calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = NewDate(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s", s, DateLayout)
	}
	*d = NewDate(t)
	return nil
}
