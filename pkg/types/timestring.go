package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat layout used for parsing and formatting wall-clock times
const TimeFormat = "15:04"

// ErrInvalidTimeFormat is returned when a time string is not in HH:MM format
var ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

// TimeString represents a wall-clock time of day as a "HH:MM" string.
// It is the common currency for all interval arithmetic in the service:
// every comparison and duration calculation goes through minutes since
// midnight.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates a "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes formats minutes since midnight as "HH:MM".
// Values >= 1440 are NOT normalized back into the next day: 1500 minutes
// renders as "25:00". Slot generation never produces such values because
// the last slot is bounded by closing time, but callers passing raw
// arithmetic results should be aware of it.
func NewTimeStringFromMinutes(minutes int) TimeString {
	h := minutes / 60
	m := minutes % 60
	return TimeString(fmt.Sprintf("%02d:%02d", h, m))
}

// String returns the raw "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the time string is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes converts the time string to minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time string shifted forward by the given number
// of minutes. The result is not normalized past midnight, see
// NewTimeStringFromMinutes.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Zero-padded "HH:MM" strings compare correctly as plain strings.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
