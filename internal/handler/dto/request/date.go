package request

import (
	"strings"
	"time"

	"pantryshare/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid date format")

// Date accepts either a bare calendar date ("2024-03-01") or a full RFC 3339
// timestamp. Scanned receipts carry bare dates; API clients tend to send
// timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	return ErrInvalidDate
}

func (d *Date) ToTimePtr() *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
