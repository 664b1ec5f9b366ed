package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/models"
	"github.com/balkashynov/studentcard/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List active tasks, or completed ones with --completed, or both with --all",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		completed, _ := cmd.Flags().GetBool("completed")
		all, _ := cmd.Flags().GetBool("all")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		tasks := store.Tasks()
		var result []models.Task
		if all || !completed {
			active, err := tasks.ListActive(cmdContext(cmd))
			if err != nil {
				return fmt.Errorf("error fetching tasks: %w", err)
			}
			result = append(result, active...)
		}
		if all || completed {
			done, err := tasks.ListCompleted(cmdContext(cmd))
			if err != nil {
				return fmt.Errorf("error fetching tasks: %w", err)
			}
			result = append(result, done...)
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			if result == nil {
				result = []models.Task{}
			}
			return printJSON(w, result)
		}

		if len(result) == 0 {
			fmt.Fprintln(w, "No tasks found. Use 'studentcard todo add \"task name\"' to create your first task.")
			return nil
		}
		renderTaskTable(w, result)
		return nil
	},
}

// renderTaskTable prints tasks as a fixed-width table
func renderTaskTable(w io.Writer, tasks []models.Task) {
	fmt.Fprintf(w, "%-4s %-6s %-40s %-8s %s\n", "ID", "STATUS", "NAME", "PRIORITY", "END DATE")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, task := range tasks {
		fmt.Fprintf(w, "%-4d %-6s %-40s %-8s %s\n",
			task.ID,
			task.StatusLabel(),
			truncate(task.Name, 38),
			task.Priority.Label(),
			parser.FormatDueDate(task.EndDate, task.IsCompleted))
	}
}

func init() {
	listCmd.Flags().BoolP("completed", "c", false, "Show completed tasks instead of active ones")
	listCmd.Flags().BoolP("all", "a", false, "Show active and completed tasks")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
