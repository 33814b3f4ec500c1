// file: timeutil/timeutil_test.go
package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC)

func TestParseTimeOfDay_Basics(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
	}{
		{"10:30 AM", 10, 30},
		{"09:55 AM", 9, 55},
		{"12:00 AM", 0, 0},  // midnight maps to hour 0
		{"12:00 PM", 12, 0}, // noon stays 12
		{"1:30 PM", 13, 30},
		{"11:59 PM", 23, 59},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in, ref)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.hour, got.Hour(), tt.in)
		assert.Equal(t, tt.minute, got.Minute(), tt.in)
		assert.Equal(t, ref.Day(), got.Day(), "must land on the reference day")
	}
}

func TestParseTimeOfDay_Malformed(t *testing.T) {
	for _, in := range []string{"", "10:30", "10:30 XM", "ten:30 AM", "10:xx PM", "13:00 PM", "10:75 AM", "10 AM"} {
		_, err := ParseTimeOfDay(in, ref)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
	}
}

func TestFormatTimeOfDay_RoundTrip(t *testing.T) {
	for _, s := range []string{"12:00 AM", "01:05 AM", "09:55 AM", "11:59 AM", "12:00 PM", "01:30 PM", "11:59 PM"} {
		parsed, err := ParseTimeOfDay(s, ref)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTimeOfDay(parsed))
	}
}

func TestParseDurationToken(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1h", time.Hour},
		{"2h", 2 * time.Hour},
		{"4h", 4 * time.Hour},
		{"8h", 8 * time.Hour},
		{"1h 15m", time.Hour + 15*time.Minute},
		{"1h 30m", time.Hour + 30*time.Minute},
		{"45m", 45 * time.Minute}, // no "h" means minutes only
	}
	for _, tt := range tests {
		got, err := ParseDurationToken(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDurationToken_Malformed(t *testing.T) {
	for _, in := range []string{"", "h", "xh", "1h xm", "fifteen", "-1h"} {
		_, err := ParseDurationToken(in)
		assert.ErrorIs(t, err, ErrInvalidDurationFormat, in)
	}
}

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		start, token, want string
	}{
		{"10:30 AM", "1h", "11:30 AM"},
		{"09:55 AM", "2h", "11:55 AM"},
		{"11:45 AM", "1h 15m", "01:00 PM"},
		{"10:00 AM", "45m", "10:45 AM"},
		{"11:30 PM", "1h", "12:30 AM"}, // wraps across midnight
		{"04:00 PM", "8h", "12:00 AM"},
	}
	for _, tt := range tests {
		got, err := ComputeEndTime(tt.start, tt.token)
		require.NoError(t, err, tt.start)
		assert.Equal(t, tt.want, got, "%s + %s", tt.start, tt.token)
	}
}

func TestComputeEndTime_PropagatesErrors(t *testing.T) {
	_, err := ComputeEndTime("bogus", "1h")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = ComputeEndTime("10:30 AM", "bogus")
	assert.ErrorIs(t, err, ErrInvalidDurationFormat)
}

func TestHasElapsed(t *testing.T) {
	now := time.Date(2023, 6, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, HasElapsed("11:59 AM", now))
	assert.False(t, HasElapsed("12:00 PM", now), "strictly after, not at")
	assert.False(t, HasElapsed("12:01 PM", now))
	assert.False(t, HasElapsed("garbage", now), "unparseable never counts as elapsed")
}
