package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is the severity of a task, stored as 1..3 in the priority column
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Priorities lists every valid priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Card colors used by the dashboard, one per priority (green, yellow, red)
const (
	colorLow     = "#DFF0D8"
	colorMedium  = "#FFF4C2"
	colorHigh    = "#F8D7DA"
	colorUnknown = "#6D7383"
)

// Valid reports whether p is one of the three known priorities
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Label returns the human readable name of the priority
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Color returns the display color for the priority. Values outside 1..3
// get a neutral grey instead of failing at render time.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return colorLow
	case PriorityMedium:
		return colorMedium
	case PriorityHigh:
		return colorHigh
	default:
		return colorUnknown
	}
}

func (p Priority) String() string {
	return fmt.Sprintf("%d - %s", int(p), p.Label())
}

// ParsePriority converts "low/medium/high", "niedrig/mittel/hoch" or
// "1/2/3" into a Priority
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "low", "niedrig", "l":
		return PriorityLow, nil
	case "medium", "mittel", "med", "m":
		return PriorityMedium, nil
	case "high", "hoch", "h":
		return PriorityHigh, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Priority(n).Valid() {
		return 0, fmt.Errorf("invalid priority %q: use low, medium, high or 1-3", s)
	}
	return Priority(n), nil
}
