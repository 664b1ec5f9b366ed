package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("task", args[0])
		if err != nil {
			return err
		}

		if err := store.Tasks().Delete(cmdContext(cmd), id); err != nil {
			return notFound(err, "task", id)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
		return nil
	},
}
