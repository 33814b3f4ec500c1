// Package timeutil converts between 12-hour clock strings, duration tokens
// and concrete instants. File: timeutil/timeutil.go
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ------------------- errors -------------------

var (
	// ErrInvalidTimeFormat is returned for clock strings that are not "h:mm AM/PM".
	ErrInvalidTimeFormat = errors.New("invalid time format, expected \"h:mm AM\" or \"h:mm PM\"")
	// ErrInvalidDurationFormat is returned for tokens that are neither "<n>h[ <n>m]" nor "<n>m".
	ErrInvalidDurationFormat = errors.New("invalid duration format, expected e.g. \"1h\", \"1h 15m\" or \"45m\"")
)

// ------------------- time-of-day parsing -------------------

// ParseTimeOfDay interprets a 12-hour clock string ("10:30 AM", "1:05 PM") as
// an instant on ref's calendar day. "12 AM" maps to hour 0, "12 PM" stays 12,
// and 1-11 PM add twelve.
func ParseTimeOfDay(text string, ref time.Time) (time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return time.Time{}, ErrInvalidTimeFormat
	}

	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return time.Time{}, ErrInvalidTimeFormat
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return time.Time{}, ErrInvalidTimeFormat
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return time.Time{}, ErrInvalidTimeFormat
	}

	if period == "PM" && hours < 12 {
		hours += 12
	} else if period == "AM" && hours == 12 {
		hours = 0
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hours, minutes, 0, 0, ref.Location()), nil
}

// FormatTimeOfDay renders an instant back into the canonical zero-padded
// 12-hour form ("10:30 AM", "01:05 PM").
func FormatTimeOfDay(t time.Time) string {
	hours := t.Hour()
	period := "AM"
	switch {
	case hours == 0:
		hours = 12
	case hours == 12:
		period = "PM"
	case hours > 12:
		hours -= 12
		period = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hours, t.Minute(), period)
}

// ------------------- duration tokens -------------------

// ParseDurationToken parses symbolic durations like "1h", "2h", "1h 15m" or
// "45m". A token without an "h" component is read as minutes only.
func ParseDurationToken(text string) (time.Duration, error) {
	token := strings.TrimSpace(text)
	if token == "" {
		return 0, ErrInvalidDurationFormat
	}

	var hours, minutes int
	switch {
	case strings.Contains(token, "h"):
		parts := strings.SplitN(token, "h", 2)
		h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || h < 0 {
			return 0, ErrInvalidDurationFormat
		}
		hours = h
		rest := strings.TrimSpace(parts[1])
		if rest != "" {
			if !strings.Contains(rest, "m") {
				return 0, ErrInvalidDurationFormat
			}
			m, err := strconv.Atoi(strings.TrimSpace(strings.Replace(rest, "m", "", 1)))
			if err != nil || m < 0 {
				return 0, ErrInvalidDurationFormat
			}
			minutes = m
		}
	case strings.Contains(token, "m"):
		m, err := strconv.Atoi(strings.TrimSpace(strings.Replace(token, "m", "", 1)))
		if err != nil || m < 0 {
			return 0, ErrInvalidDurationFormat
		}
		minutes = m
	default:
		return 0, ErrInvalidDurationFormat
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// ------------------- derived values -------------------

// ComputeEndTime adds a duration token to a start-of-day string and formats
// the result, wrapping across midnight. Pure function.
func ComputeEndTime(startText, durationToken string) (string, error) {
	start, err := ParseTimeOfDay(startText, time.Now())
	if err != nil {
		return "", err
	}
	d, err := ParseDurationToken(durationToken)
	if err != nil {
		return "", err
	}
	return FormatTimeOfDay(start.Add(d)), nil
}

// HasElapsed reports whether now is strictly after the instant named by
// timeText on now's calendar day. Unparseable text is treated as not elapsed
// so a corrupt end time never force-completes a session.
func HasElapsed(timeText string, now time.Time) bool {
	t, err := ParseTimeOfDay(timeText, now)
	if err != nil {
		return false
	}
	return now.After(t)
}
