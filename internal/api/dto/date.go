package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// AppointmentDate decodes an RFC 3339 timestamp or a bare date.
// A bare date is midnight UTC.
type AppointmentDate struct {
	time.Time
}

func (d *AppointmentDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("appointment_date must be a string: %w", err)
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return fmt.Errorf("appointment_date %q is neither a date nor an RFC 3339 timestamp", raw)
	}
	d.Time = t
	return nil
}

// ValidationValue lets the request validator treat the date like a time.Time.
func (d AppointmentDate) ValidationValue() any {
	return d.Time
}
