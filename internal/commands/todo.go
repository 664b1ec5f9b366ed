package commands

import (
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"t", "task"},
	Short:   "Manage tasks",
	Long: `Manage tasks in the todos table.

Every change is written straight to the database; listings always read the
current state back.`,
}

func init() {
	todoCmd.AddCommand(listCmd)
	todoCmd.AddCommand(showCmd)
	todoCmd.AddCommand(addCmd)
	todoCmd.AddCommand(editCmd)
	todoCmd.AddCommand(doneCmd)
	todoCmd.AddCommand(undoneCmd)
	todoCmd.AddCommand(removeCmd)
	todoCmd.AddCommand(searchCmd)
	todoCmd.AddCommand(weekCmd)
}
