package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(cmd, args[0], true)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <task-id>",
	Short: "Mark a completed task as active again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(cmd, args[0], false)
	},
}

func setCompleted(cmd *cobra.Command, arg string, completed bool) error {
	id, err := parseID("task", arg)
	if err != nil {
		return err
	}

	task, err := store.Tasks().Get(cmdContext(cmd), id)
	if err != nil {
		return notFound(err, "task", id)
	}
	if task.IsCompleted == completed {
		return fmt.Errorf("task #%d is already %s", id, task.StatusLabel())
	}

	task, err = store.Tasks().SetCompleted(cmdContext(cmd), id, completed)
	if err != nil {
		return notFound(err, "task", id)
	}

	if completed {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked task #%d as done: %s\n", task.ID, task.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked task #%d as active: %s\n", task.ID, task.Name)
	}
	return nil
}
