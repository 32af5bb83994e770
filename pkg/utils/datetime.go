package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted alongside RFC 3339
const DateLayout = "2006-01-02"

// FlexTime decodes either an RFC 3339 timestamp or a bare calendar date
// (2024-01-15, interpreted as midnight UTC). It encodes as RFC 3339.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (t FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}

// NullableTime is an optional date in a partial update. Set records that
// the field was present in the body; a present null or "" clears the date.
// Use it by value: a pointer field would turn null into nil before
// UnmarshalJSON runs.
type NullableTime struct {
	Time  time.Time
	Set   bool
	Valid bool
}

// NewNullableTime returns a present, non-null value
func NewNullableTime(t time.Time) NullableTime {
	return NullableTime{Time: t, Set: true, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	var ft FlexTime
	if err := ft.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Time = ft.Time
	n.Valid = !ft.IsZero()
	return nil
}

// MarshalJSON implements json.Marshaler
func (n NullableTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}

// ApplyTo writes the value into dst when the field was present
func (n NullableTime) ApplyTo(dst **time.Time) {
	if !n.Set {
		return
	}
	if !n.Valid {
		*dst = nil
		return
	}
	v := n.Time
	*dst = &v
}
