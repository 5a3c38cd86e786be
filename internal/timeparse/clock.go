package timeparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseTimeUS parses a 12-hour time such as "5pm", "5:30 PM", or "12am",
// falling back to 24-hour "HH:MM". The am/pm suffix is case-insensitive and
// may be preceded by a space. 12am is midnight and 12pm is noon.
func ParseTimeUS(input string) (Clock, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Clock{}, fmt.Errorf("time cannot be empty")
	}

	var pm bool
	var has12h bool
	switch {
	case strings.HasSuffix(s, "am"):
		has12h = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "am"))
	case strings.HasSuffix(s, "pm"):
		has12h = true
		pm = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "pm"))
	}

	hourStr, minuteStr := s, "0"
	if h, m, ok := strings.Cut(s, ":"); ok {
		hourStr, minuteStr = h, m
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid hour: %q", input)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid minute: %q", input)
	}
	if minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("minute must be 0-59, got %d", minute)
	}

	if has12h {
		if hour < 1 || hour > 12 {
			return Clock{}, fmt.Errorf("hour must be 1-12, got %d", hour)
		}
		if pm && hour != 12 {
			hour += 12
		}
		if !pm && hour == 12 {
			hour = 0
		}
		return Clock{Hour: hour, Minute: minute}, nil
	}

	// 24-hour fallback requires an explicit HH:MM.
	if !strings.Contains(input, ":") {
		return Clock{}, fmt.Errorf("invalid time format: %q", input)
	}
	if hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("hour must be 0-23, got %d", hour)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}
