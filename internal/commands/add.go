package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
	"github.com/balkashynov/studentcard/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task name]",
	Short: "Add a new task",
	Long: `Add a new task.

Modes:
  Interactive: studentcard todo add -i (or just 'todo add' with no arguments)
  Quick: studentcard todo add "Task name" (with optional flags)
  Smart parsing: studentcard todo add "Hand in thesis +high due:31.03.2025"

Smart parsing syntax:
  +priority   - Priority (low/medium/high, niedrig/mittel/hoch or 1/2/3)
  due:3days   - End date (dd.mm.yyyy, dd/mm/yyyy, X days, X hours, X weeks)

Flags take precedence over parsed values. Without a priority the task is
low priority; without an end date it ends today.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 {
			interactive = true
		}

		parsed := parser.ParseTitle(strings.Join(args, " "))

		if interactive {
			return runInteractiveAdd(cmd, parsed)
		}
		if len(parsed.Errors) > 0 {
			return fmt.Errorf("found issues with parsing: %s", strings.Join(parsed.Errors, ", "))
		}
		return runDirectAdd(cmd, parsed)
	},
}

// runInteractiveAdd opens the task form pre-filled from arguments and flags
func runInteractiveAdd(cmd *cobra.Command, parsed parser.ParsedTask) error {
	draft := tui.TaskDraft{Name: parsed.Name}
	if parsed.Priority.Valid() {
		draft.Priority = parsed.Priority.Label()
	}
	if parsed.DueDate != nil {
		draft.EndDate = parsed.DueDate.Format(parser.DateLayout)
	}
	if p, _ := cmd.Flags().GetString("priority"); p != "" {
		draft.Priority = p
	}
	if due, _ := cmd.Flags().GetString("due"); due != "" {
		draft.EndDate = due
	}
	draft.Description, _ = cmd.Flags().GetString("desc")

	task, err := tui.RunTaskForm(cmdContext(cmd), store.Tasks(), nil, draft)
	if errors.Is(err, tui.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Task creation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	printCreated(cmd.OutOrStdout(), task)
	return nil
}

// runDirectAdd creates the task without the TUI
func runDirectAdd(cmd *cobra.Command, parsed parser.ParsedTask) error {
	task := models.Task{
		Name:     parsed.Name,
		Priority: models.PriorityLow,
	}
	if parsed.Priority.Valid() {
		task.Priority = parsed.Priority
	}
	due := time.Now()
	if parsed.DueDate != nil {
		due = *parsed.DueDate
	}

	// Explicit flags win over parsed tokens
	if flagPriority, _ := cmd.Flags().GetString("priority"); flagPriority != "" {
		p, err := models.ParsePriority(flagPriority)
		if err != nil {
			return err
		}
		task.Priority = p
	}
	if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
		d, err := parser.ParseDueDate(flagDue)
		if err != nil {
			return fmt.Errorf("error parsing due date: %w", err)
		}
		due = d
	}
	desc, _ := cmd.Flags().GetString("desc")
	task.Description = models.StringPtr(strings.TrimSpace(desc))
	task = task.WithDue(due)

	if err := models.ValidateTask(task); err != nil {
		return err
	}

	created, err := store.Tasks().Create(cmdContext(cmd), task)
	if err != nil {
		return fmt.Errorf("error creating task: %w", err)
	}
	printCreated(cmd.OutOrStdout(), created)
	return nil
}

func printCreated(w io.Writer, task models.Task) {
	fmt.Fprintf(w, "Created task #%d: %s\n", task.ID, task.Name)
	fmt.Fprintf(w, "  Priority: %s\n", task.Priority.Label())
	fmt.Fprintf(w, "  End date: %s\n", parser.FormatDate(task.EndDate))
	if desc := task.DescriptionOrEmpty(); desc != "" {
		fmt.Fprintf(w, "  Notes:    %s\n", desc)
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	addCmd.Flags().StringP("due", "d", "", "End date: dd.mm.yyyy, X days, X hours, X weeks")
	addCmd.Flags().String("desc", "", "Description")
}
