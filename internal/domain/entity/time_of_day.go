package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDayLayout is the only accepted textual form of a TimeOfDay.
const TimeOfDayLayout = "15:04"

// TimeOfDay is a wall-clock time with minute precision, stored as minutes
// since midnight.
type TimeOfDay int

const (
	StartOfDay TimeOfDay = 0
	EndOfDay   TimeOfDay = 23*60 + 59
)

// NewTimeOfDay builds a TimeOfDay from an hour in [0,23] and a minute in [0,59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day out of range: %02d:%02d", hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses a strict two-digit HH:mm string.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != len(TimeOfDayLayout) {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}
	t, err := time.Parse(TimeOfDayLayout, value)
	if err != nil {
		return 0, err
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for postgres TIME columns.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

// Scan implements sql.Scanner, accepting HH:MM:SS, HH:MM or a time.Time.
func (t *TimeOfDay) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case time.Time:
		parsed, err := NewTimeOfDay(v.Hour(), v.Minute())
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("failed to scan time of day from %T", value)
	}

	if len(s) > len(TimeOfDayLayout) {
		s = s[:len(TimeOfDayLayout)]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
