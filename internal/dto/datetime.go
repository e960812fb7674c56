package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire format of timestamps in admin API responses.
const DateTimeLayout = "2006-01-02 15:04"

// DateTime is a time.Time that encodes as "yyyy-MM-dd HH:mm" in the server's local time.
type DateTime time.Time

// MarshalJSON implements json.Marshaler. The zero time encodes as null.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Local().Format(DateTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = DateTime{}
		return nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date-time %q, expected %s: %w", s, DateTimeLayout, err)
	}
	*d = DateTime(t)
	return nil
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}
