package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rentdb/rentdb"
	"github.com/rentdb/rentdb/config"
)

var (
	cfgFile string
	dataDir string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rentdb",
	Short: "rentdb - car rental records over fixed-slot binary files",
	Long: `rentdb manages car, customer and rental records persisted in
fixed-size binary record files with tombstone deletes and free-slot reuse.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		if cfgFile != "" {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
			return fmt.Errorf("bad log level %q: %w", cfg.Logging.Level, err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "data directory for the binary record files")
}

// openDB opens the database per the resolved config. The returned close
// function must run even when the command fails afterwards.
func openDB() (*rentdb.DB, func(), error) {
	opts := []rentdb.Option{
		rentdb.WithDirPath(cfg.DataDir),
		rentdb.WithLogger(slog.Default()),
	}
	if cfg.SyncOnWrite {
		opts = append(opts, rentdb.WithSyncOnWrite())
	}
	db, err := rentdb.Open(opts...)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "err", err)
		}
	}, nil
}
