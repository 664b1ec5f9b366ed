package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/models"
)

// now is replaced in tests
var now = time.Now

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show active tasks ending this week",
	Long: `Show active tasks whose end date falls into the current calendar week
(Monday to Sunday), grouped by weekday. Overdue tasks from earlier weeks are
listed first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := store.Tasks().ListActive(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("error fetching tasks: %w", err)
		}

		weekStart := getWeekStart(now())
		overdue, byDay := groupByWeekday(tasks, weekStart)
		displayWeek(cmd.OutOrStdout(), overdue, byDay, weekStart)
		return nil
	},
}

// getWeekStart returns the start of the calendar week (Monday) for the given time
func getWeekStart(t time.Time) time.Time {
	weekday := t.Weekday()
	daysFromMonday := int(weekday - time.Monday)
	if weekday == time.Sunday {
		daysFromMonday = 6
	}

	weekStart := t.AddDate(0, 0, -daysFromMonday)
	return time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
}

// groupByWeekday splits tasks ending before weekStart from those ending
// within the week. Tasks ending after the week are dropped.
func groupByWeekday(tasks []models.Task, weekStart time.Time) ([]models.Task, map[time.Weekday][]models.Task) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	var overdue []models.Task
	byDay := make(map[time.Weekday][]models.Task)

	for _, task := range tasks {
		due := task.Due()
		switch {
		case due.Before(weekStart):
			overdue = append(overdue, task)
		case due.Before(weekEnd):
			byDay[due.Weekday()] = append(byDay[due.Weekday()], task)
		}
	}
	return overdue, byDay
}

func displayWeek(w io.Writer, overdue []models.Task, byDay map[time.Weekday][]models.Task, weekStart time.Time) {
	fmt.Fprintf(w, "Week of %s - %s\n",
		weekStart.Format("Jan 2, 2006"),
		weekStart.AddDate(0, 0, 6).Format("Jan 2, 2006"))

	if len(overdue) == 0 && len(byDay) == 0 {
		fmt.Fprintln(w, "\nNothing due this week.")
		return
	}

	if len(overdue) > 0 {
		fmt.Fprintln(w, "\nOverdue")
		for _, task := range overdue {
			printWeekRow(w, task, "02.01.")
		}
	}

	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	for i, day := range weekdays {
		tasks := byDay[day]
		if len(tasks) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s %s\n", day, weekStart.AddDate(0, 0, i).Format("02.01."))
		for _, task := range tasks {
			printWeekRow(w, task, "15:04")
		}
	}
}

func printWeekRow(w io.Writer, task models.Task, layout string) {
	fmt.Fprintf(w, "  #%-4d %-40s %-8s %s\n",
		task.ID,
		truncate(task.Name, 38),
		task.Priority.Label(),
		task.Due().Format(layout))
}
