package models

import (
	"bytes"
	"fmt"
	"time"
)

// TimestampLayout matches what browsers produce with Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is an ISO-8601 instant. The backend sometimes answers with
// zone-less datetimes, those are read as UTC.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", data)
	}
	value := string(data[1 : len(data)-1])

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		t.Time = parsed
		return nil
	}

	for _, layout := range naiveTimestampLayouts {
		parsed, naiveErr := time.ParseInLocation(layout, value, time.UTC)
		if naiveErr == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q: %w", value, err)
}
