package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/assets"
	"github.com/balkashynov/studentcard/internal/config"
	"github.com/balkashynov/studentcard/internal/db"
	"github.com/balkashynov/studentcard/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flag values
var (
	flagConfig   string
	flagDataDir  string
	flagLogLevel string
)

// Set by PersistentPreRunE and shared by all subcommands
var (
	cfg       config.Config
	log       zerolog.Logger
	logCloser io.Closer
	store     *db.Store
)

var rootCmd = &cobra.Command{
	Use:   "studentcard",
	Short: "Tasks and a student roster in one local database",
	Long: `studentcard keeps a todo list and a student roster in a single SQLite file.

The database is created from a bundled template on first use and upgraded
in place when newer columns are missing.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup loads configuration, opens the log and prepares the store. No
// database file is touched here.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDataDir != "" {
		if cfg.DataDir, err = filepath.Abs(flagDataDir); err != nil {
			return err
		}
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	// A full-screen UI owns the terminal, so its logs go to a file
	if isInteractive(cmd) && cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, "studentcard.log")
	}

	log, logCloser, err = logging.Open(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}

	store, err = db.NewStore(db.Options{
		Path:         cfg.DBPath(),
		Template:     assets.FS,
		TemplateName: assets.SeedName,
		BusyTimeout:  cfg.BusyTimeout(),
		Logger:       log,
	})
	if err != nil {
		return err
	}

	log.Debug().Str("db", store.Path()).Str("command", cmd.CommandPath()).Msg("starting")
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	if cmd == uiCmd {
		return true
	}
	interactive, _ := cmd.Flags().GetBool("interactive")
	return interactive
}

func cmdContext(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "studentcard %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx. The log opened by setup is
// closed whether or not the command failed.
func ExecuteContext(c context.Context) error {
	defer closeLog()
	return rootCmd.ExecuteContext(c)
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log: %v\n", err)
	}
	logCloser = nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $XDG_CONFIG_HOME/studentcard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the database (overrides data_dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
