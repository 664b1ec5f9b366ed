package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/db"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show paths and the live task table layout",
	Long: `Print the resolved configuration and database paths, then open the
database (seeding and upgrading it if needed) and list the columns of the
todos table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "Data dir:   %s\n", cfg.DataDir)
		fmt.Fprintf(w, "Export dir: %s\n", cfg.ExportDir)
		fmt.Fprintf(w, "Database:   %s", store.Path())
		if _, err := os.Stat(store.Path()); err != nil {
			fmt.Fprint(w, " (not created yet)")
		}
		fmt.Fprintln(w)

		cols, err := store.Check(cmdContext(cmd))
		if err != nil && !errors.Is(err, db.ErrSchema) {
			return fmt.Errorf("error opening database: %w", err)
		}

		fmt.Fprintln(w, "\nColumns of todos:")
		fmt.Fprintf(w, "  %-12s %-8s %-8s %s\n", "NAME", "TYPE", "NOTNULL", "DEFAULT")
		for _, c := range cols {
			def := "-"
			if c.Default != nil {
				def = *c.Default
			}
			fmt.Fprintf(w, "  %-12s %-8s %-8t %s\n", c.Name, c.Type, c.NotNull, def)
		}

		if err != nil {
			fmt.Fprintf(w, "\nWarning: %v\n", err)
		}
		return nil
	},
}
