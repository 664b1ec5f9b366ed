package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Copy the database file to a visible directory",
	Long: `Copy the database file into dir, or into export_dir from the config when
no directory is given. The copy is named datenbank-YYYYMMDD-HHMMSS.db.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.ExportDir
		if len(args) == 1 {
			dir = args[0]
		}

		dest, err := store.Export(cmdContext(cmd), dir)
		if err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported database to %s\n", dest)
		return nil
	},
}
