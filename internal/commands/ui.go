package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive dashboard",
	Long: `Open the full-screen task dashboard, or the student roster with --students.

Logs are written to studentcard.log in the data directory while the UI runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if students, _ := cmd.Flags().GetBool("students"); students {
			return tui.RunStudents(cmdContext(cmd), store.Students())
		}
		return tui.RunDashboard(cmdContext(cmd), store.Tasks())
	},
}

func init() {
	uiCmd.Flags().Bool("students", false, "Open the student roster instead of tasks")
}
