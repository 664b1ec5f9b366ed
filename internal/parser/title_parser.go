package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/studentcard/internal/models"
)

var (
	priorityRegex = regexp.MustCompile(`(?:^|\s)\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`(?:^|\s)due:(\S+)`)
)

// ParsedTask represents a task parsed from a quick-add line
type ParsedTask struct {
	Name     string
	Priority models.Priority // zero when no +priority token was given
	DueDate  *time.Time
	Errors   []string
}

// ParseTitle extracts metadata from a task name using inline tokens
// Syntax: "Task name +priority due:3days"
func ParseTitle(input string) ParsedTask {
	result := ParsedTask{
		Errors: []string{},
	}

	// Extract priority (+high, +3, +mittel, etc.)
	if m := priorityRegex.FindStringSubmatch(input); len(m) > 1 {
		p, err := models.ParsePriority(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid priority '"+m[1]+"'. Use: low, medium, high, 1, 2, or 3")
		} else {
			result.Priority = p
		}
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	// Extract due date (due:3days, due:15.12.2024, etc.)
	if m := dueRegex.FindStringSubmatch(input); len(m) > 1 {
		dueDate, err := ParseDueDate(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		} else {
			result.DueDate = &dueDate
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	result.Name = strings.Join(strings.Fields(input), " ")
	return result
}
