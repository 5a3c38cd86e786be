// Package timeparse converts user-entered text into calendar dates, clock
// times, and postpone targets. All functions take the reference time as a
// parameter so behavior is deterministic under test.
package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDateUS parses a date in US order. Accepted forms: MM/DD, MM/DD/YY,
// MM/DD/YYYY, the same with '-' separators, and ISO YYYY-MM-DD. When the
// year is omitted the current year is chosen unless that date has already
// passed relative to now, in which case next year is used. The returned
// time is midnight in now's location.
func ParseDateUS(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty")
	}

	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "-"
	}
	parts := strings.Split(s, sep)

	// ISO form: a 4-digit leading field can only be a year.
	if sep == "-" && len(parts) == 3 && len(parts[0]) == 4 {
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("invalid date: %q", input)
		}
		d, ok := makeDate(year, month, day, now.Location())
		if !ok {
			return time.Time{}, fmt.Errorf("invalid date: %q", input)
		}
		return d, nil
	}

	switch len(parts) {
	case 2:
		month, day, err := parseMonthDay(parts[0], parts[1], input)
		if err != nil {
			return time.Time{}, err
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d, ok := makeDate(now.Year(), month, day, now.Location()); ok {
			if !d.Before(today) {
				return d, nil
			}
		}
		if d, ok := makeDate(now.Year()+1, month, day, now.Location()); ok {
			return d, nil
		}
		return time.Time{}, fmt.Errorf("invalid date: %q", input)
	case 3:
		month, day, err := parseMonthDay(parts[0], parts[1], input)
		if err != nil {
			return time.Time{}, err
		}
		year, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid year in date: %q", input)
		}
		if year < 100 {
			year += 2000
		}
		d, ok := makeDate(year, month, day, now.Location())
		if !ok {
			return time.Time{}, fmt.Errorf("invalid date: %q", input)
		}
		return d, nil
	default:
		return time.Time{}, fmt.Errorf("invalid date format: %q", input)
	}
}

func parseMonthDay(monthStr, dayStr, input string) (int, int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in date: %q", input)
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid day in date: %q", input)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12, got %d", month)
	}
	if day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("day must be 1-31, got %d", day)
	}
	return month, day, nil
}

// makeDate builds a local midnight date and reports whether the given
// components form a real calendar date. time.Date normalizes overflow
// (Feb 30 becomes Mar 2), so the result is checked against the inputs.
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
