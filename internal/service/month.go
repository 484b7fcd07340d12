package service

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidMonth reports a month name that is not a full English month.
// Handlers map it to a client error.
var ErrInvalidMonth = errors.New("invalid month name")

// monthIndexes maps lowercase full English month names to zero-based indexes.
var monthIndexes = map[string]int{
	"january":   0,
	"february":  1,
	"march":     2,
	"april":     3,
	"may":       4,
	"june":      5,
	"july":      6,
	"august":    7,
	"september": 8,
	"october":   9,
	"november":  10,
	"december":  11,
}

// monthBounds returns the first and last calendar day of the named month in
// the given year, both at midnight UTC. The lookup is case-insensitive; an
// unknown name returns ErrInvalidMonth before any store access happens.
func monthBounds(name string, year int) (time.Time, time.Time, error) {
	index, ok := monthIndexes[strings.ToLower(name)]
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	start := time.Date(year, time.Month(index+1), 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the following month normalizes to the last day of this one.
	end := time.Date(year, time.Month(index+2), 0, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}
