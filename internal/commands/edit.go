package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
	"github.com/balkashynov/studentcard/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit an existing task",
	Long: `Edit an existing task.

With flags, only the given fields change and the whole row is written back.
Without flags the task form opens pre-filled with the current values.

Usage:
  studentcard todo edit 42                    - Edit task 42 interactively
  studentcard todo edit 42 --priority high    - Raise priority of task 42
  studentcard todo edit 42 --desc ""          - Clear the description`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("task", args[0])
		if err != nil {
			return err
		}

		task, err := store.Tasks().Get(cmdContext(cmd), id)
		if err != nil {
			return notFound(err, "task", id)
		}

		if !anyChanged(cmd, "name", "priority", "due", "desc") {
			updated, err := tui.RunTaskForm(cmdContext(cmd), store.Tasks(), &task, tui.TaskDraft{})
			if errors.Is(err, tui.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Edit cancelled.")
				return nil
			}
			if err != nil {
				return notFound(err, "task", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", updated.ID, updated.Name)
			return nil
		}

		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			task.Name = strings.TrimSpace(name)
		}
		if cmd.Flags().Changed("priority") {
			raw, _ := cmd.Flags().GetString("priority")
			p, err := models.ParsePriority(raw)
			if err != nil {
				return err
			}
			task.Priority = p
		}
		if cmd.Flags().Changed("due") {
			raw, _ := cmd.Flags().GetString("due")
			due, err := parser.ParseDueDate(raw)
			if err != nil {
				return fmt.Errorf("error parsing due date: %w", err)
			}
			task = task.WithDue(due)
		}
		if cmd.Flags().Changed("desc") {
			desc, _ := cmd.Flags().GetString("desc")
			task.Description = models.StringPtr(strings.TrimSpace(desc))
		}

		if err := models.ValidateTask(task); err != nil {
			return err
		}

		updated, err := store.Tasks().Update(cmdContext(cmd), task)
		if err != nil {
			return notFound(err, "task", id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", updated.ID, updated.Name)
		return nil
	},
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

func init() {
	editCmd.Flags().String("name", "", "New name")
	editCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	editCmd.Flags().StringP("due", "d", "", "End date: dd.mm.yyyy, X days, X hours, X weeks")
	editCmd.Flags().String("desc", "", "Description (empty clears it)")
}
