package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/config"
	"github.com/abhisek/soroban/internal/logging"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

var (
	settings config.Settings
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "soroban",
	Short: "Soroban abacus practice arcade",
	Long: `Soroban is a terminal arcade for abacus-style mental arithmetic:
multiplication, division and mitori column sums graded like the
certification exams, with stages, coins and badges to earn.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOROBAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default $XDG_CONFIG_HOME/soroban/config.toml)")
	rootCmd.PersistentFlags().String("exam", "", "Exam body: zenshuren or nissho (overrides SOROBAN_EXAM env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(specsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves settings with priority flag > env > file >
// default and builds the logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fc, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	s, err := config.Resolve(fc)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	if v, _ := cmd.Flags().GetString("exam"); v != "" {
		b, ok := specs.ParseExamBody(v)
		if !ok {
			return fmt.Errorf("unknown exam body %q", v)
		}
		s.Exam = b
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		s.DBPath = v
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	l, err := logging.New(logging.Options{File: s.LogFile, Level: s.LogLevel, Verbose: verbose})
	if err != nil {
		return err
	}

	settings = s
	logger = l
	logger.Debug("settings resolved",
		zap.String("command", cmd.Name()),
		zap.String("exam", string(s.Exam)),
		zap.String("db", s.DBPath))
	return nil
}

// resolveDBPath returns the configured database path, falling back to
// the default XDG data path.
func resolveDBPath() (string, error) {
	if settings.DBPath != "" {
		return settings.DBPath, store.EnsureDir(settings.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for commands that read or write saves.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openService opens the store and a session service for the configured
// exam body. The caller closes the store.
func openService() (*store.Store, *session.Service, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return st, session.NewService(st, settings.Exam, nil, logger), nil
}
