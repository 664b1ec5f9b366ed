package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/parser"
)

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("task", args[0])
		if err != nil {
			return err
		}

		task, err := store.Tasks().Get(cmdContext(cmd), id)
		if err != nil {
			return notFound(err, "task", id)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd.OutOrStdout(), task)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Task #%d: %s\n", task.ID, task.Name)
		fmt.Fprintf(w, "  Status:   %s\n", task.StatusLabel())
		fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
		fmt.Fprintf(w, "  End date: %s\n", parser.FormatDueDate(task.EndDate, task.IsCompleted))
		if desc := task.DescriptionOrEmpty(); desc != "" {
			fmt.Fprintf(w, "  Notes:    %s\n", desc)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "Output as JSON")
}
