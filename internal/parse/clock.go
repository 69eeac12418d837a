package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"staff-scheduler-backend/internal/model"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ParseClock parses an "HH:MM" string as used by shift definitions and the
// authoring form.
func ParseClock(raw string) (ClockTime, error) {
	s := strings.TrimSpace(raw)
	matches := clockRe.FindStringSubmatch(s)
	if matches == nil {
		return ClockTime{}, fmt.Errorf("invalid time %q, expected HH:MM", raw)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return ClockTime{}, fmt.Errorf("time %q out of range", raw)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// NormalizeDay maps a case-insensitive day name onto its canonical form.
func NormalizeDay(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, day := range model.CanonicalDays {
		if strings.EqualFold(day, s) {
			return day, nil
		}
	}
	return "", fmt.Errorf("unknown day of week: %q", raw)
}
