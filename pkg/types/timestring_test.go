package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("12:30")
	require.NoError(t, err)
	assert.Equal(t, "12:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("12:60")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 13, 9, 5, 42, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(0))
	assert.Equal(t, TimeString("12:15"), NewTimeStringFromMinutes(735))
	assert.Equal(t, TimeString("23:45"), NewTimeStringFromMinutes(1425))
}

func TestNewTimeStringFromMinutes_DoesNotNormalizePastMidnight(t *testing.T) {
	// Значения за полночь намеренно не нормализуются
	assert.Equal(t, TimeString("25:00"), NewTimeStringFromMinutes(1500))
	assert.Equal(t, TimeString("24:00"), NewTimeStringFromMinutes(1440))
}

func TestMinutes(t *testing.T) {
	ts := TimeString("13:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 810, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("12:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:30"), shifted)

	// Сложение за границу суток не нормализуется
	late, err := TimeString("23:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("25:00"), late)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("13:30"))
	assert.False(t, TimeString("13:30").IsBefore("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))

	assert.True(t, TimeString("19:00").IsAfter("15:00"))
	assert.False(t, TimeString("15:00").IsAfter("19:00"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("12:00").IsZero())
}
