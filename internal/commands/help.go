package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for studentcard",
	Long:  `Display detailed help for all studentcard commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := cmd.Root().Find(args); err == nil && target != cmd.Root() {
				target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
studentcard - ToDo list + student roster

COMMANDS:

  todo add [name]         Create a new task with smart parsing
    -p, --priority        Priority: low|medium|high (niedrig|mittel|hoch, 1-3)
    -d, --due             End date (dd.mm.yyyy, dd/mm/yyyy, 3 days, 2 weeks)
    --desc                Description
    -i, --interactive     Open the task form

    Smart syntax:
      +priority     Set priority (+high, +2)
      due:3days     Set end date

    Example:
      studentcard todo add "Hand in thesis +high due:31.03.2025"

  todo ls                 List active tasks
    -c, --completed       List completed tasks instead
    -a, --all             List both
    --json                JSON output

  todo show <id>          Show one task
  todo edit <id>          Edit a task (form, or --name/--priority/--due/--desc)
  todo done <id>          Mark task as completed
  todo undone <id>        Mark task as active again
  todo rm <id>            Delete a task
  todo search <query>     Search name and description (exact > prefix > suffix > contains)
  todo week               Active tasks ending this week, by weekday

  student ls              List the roster (--json)
  student show <id>       Show one student
  student add             Add a student (--first --last --mat --email)
  student edit <id>       Change fields of a student
  student rm <id>         Delete a student

  ui                      Interactive dashboard
    --students            Interactive student roster

    Dashboard keys:
      ↑/↓           Navigate tasks
      tab           Switch between Active and Completed
      space         Toggle completed
      a / e / x     Add, edit, delete
      enter         Details
      c / v         Collapse Active / Completed
      esc/q         Quit

  export [dir]            Copy the database to dir (default: export_dir)
  doctor                  Show paths and the todos table layout
  version                 Print version information
  help [command]          Show this help

GLOBAL FLAGS:
  --config <file>         Config file
  --data-dir <dir>        Directory holding datenbank.db
  --log-level <level>     trace|debug|info|warn|error

`)
}
