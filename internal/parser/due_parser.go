package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is how end dates are shown and typed
const DateLayout = "02.01.2006"

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})[./](\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(hour|hours|day|days|week|weeks)$`)
)

// now is replaced in tests
var now = time.Now

// ParseDueDate parses various due date formats
// Supported formats:
// - dd.mm.yyyy (e.g., "15.12.2024")
// - dd/mm/yyyy (e.g., "15/12/2024")
// - today, tomorrow
// - X days (e.g., "3 days", "1 day")
// - X hours (e.g., "24 hours", "1 hour")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseDueDate(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("due date is empty")
	}

	switch input {
	case "today", "heute":
		return endOfDay(now(), 0), nil
	case "tomorrow", "morgen":
		return endOfDay(now(), 1), nil
	}

	if dueDate, err := parseDateFormat(input); err == nil {
		return dueDate, nil
	} else if dateRegex.MatchString(input) {
		return time.Time{}, err
	}

	if dueDate, err := parseRelativeTime(input); err == nil {
		return dueDate, nil
	} else if relativeRegex.MatchString(input) {
		return time.Time{}, err
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: dd.mm.yyyy, dd/mm/yyyy, X days, X hours, or X weeks")
}

// parseDateFormat parses dd.mm.yyyy and dd/mm/yyyy
func parseDateFormat(input string) (time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 1970 || year > 2100 {
		return time.Time{}, fmt.Errorf("year must be between 1970 and 2100")
	}

	dueDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Rejects 31.02 and friends, which time.Date would normalize
	if dueDate.Day() != day || dueDate.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return dueDate, nil
}

// parseRelativeTime parses relative time formats like "3 days", "24 hours", etc.
func parseRelativeTime(input string) (time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "hour", "hours":
		if amount < 1 || amount > 8760 { // Max 1 year in hours
			return time.Time{}, fmt.Errorf("hours must be between 1 and 8760")
		}
		return now().Add(time.Duration(amount) * time.Hour), nil

	case "day", "days":
		if amount < 1 || amount > 365 {
			return time.Time{}, fmt.Errorf("days must be between 1 and 365")
		}
		return endOfDay(now(), amount), nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return time.Time{}, fmt.Errorf("weeks must be between 1 and 52")
		}
		return endOfDay(now(), amount*7), nil

	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}

func endOfDay(t time.Time, addDays int) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, addDays).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// FormatDate renders epoch milliseconds as dd.mm.yyyy in local time
func FormatDate(epochMs int64) string {
	return time.UnixMilli(epochMs).Format(DateLayout)
}

// FormatDueDate formats an end date relative to today for display
func FormatDueDate(epochMs int64, completed bool) string {
	dueDate := time.UnixMilli(epochMs)
	dateStr := dueDate.Format(DateLayout)
	if completed {
		return dateStr
	}

	current := now()
	today := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, current.Location())
	dueDay := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, current.Location())
	daysDiff := int(math.Round(dueDay.Sub(today).Hours() / 24))

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("overdue (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("%s (in %d days)", dateStr, daysDiff)
	default:
		return dateStr
	}
}
