package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Target is the result of parsing a postpone expression. A relative target
// carries an offset to add to each task's own due date. An absolute target
// carries a point in time that the earliest selected task is moved to, with
// the other tasks keeping their spacing from it.
type Target struct {
	Absolute bool
	At       time.Time
	Offset   time.Duration
}

// ParseDuration parses a postpone expression: a relative offset like
// "5min", "2 hours", or "1day", or an absolute target "now" optionally
// followed by "+ <offset>".
func ParseDuration(input string, now time.Time) (Target, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Target{}, fmt.Errorf("duration cannot be empty")
	}

	lower := strings.ToLower(s)
	if lower == "now" {
		return Target{Absolute: true, At: now}, nil
	}
	if rest, ok := strings.CutPrefix(lower, "now"); ok {
		rest = strings.TrimSpace(rest)
		rest, ok = strings.CutPrefix(rest, "+")
		if !ok {
			return Target{}, fmt.Errorf("invalid duration: %q", input)
		}
		off, err := parseOffset(strings.TrimSpace(rest), input)
		if err != nil {
			return Target{}, err
		}
		return Target{Absolute: true, At: now.Add(off)}, nil
	}

	off, err := parseOffset(lower, input)
	if err != nil {
		return Target{}, err
	}
	return Target{Offset: off}, nil
}

// parseOffset parses "<number><unit>" with optional whitespace between.
func parseOffset(s, original string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid duration: %q", original)
	}
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("invalid duration: %q", original)
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %q", original)
	}

	unit := strings.TrimSpace(s[i:])
	switch unit {
	case "m", "min", "mins", "minute", "minutes":
		return time.Duration(n) * time.Minute, nil
	case "h", "hr", "hrs", "hour", "hours":
		return time.Duration(n) * time.Hour, nil
	case "d", "day", "days":
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %q", original)
	}
}
