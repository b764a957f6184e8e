// Command fitctl works directly on the configured storage: CSV export,
// dashboard stats and demo data seeding.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/config"
)

var (
	env             string
	configPath      string
	storageOverride string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:           "fitctl",
	Short:         "fittrack command line tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&storageOverride, "storage", "", "override the configured storage backend (disk, sqlite, postgres, redis)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// openState loads the application state from the configured backend.
// The returned close func releases the backend connections.
func openState(ctx context.Context) (*app.State, func(), error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, err
	}
	if storageOverride != "" {
		cfg.StorageBackend = storageOverride
	}

	backend, err := app.OpenBackend(ctx, cfg, app.BackendParams{
		RedisPassword:    os.Getenv("FITTRACK_REDIS_PASS"),
		PostgresUser:     os.Getenv("FITTRACK_PG_USER"),
		PostgresPassword: os.Getenv("FITTRACK_PG_PASS"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open storage backend: %w", err)
	}
	closeBackend := func() {
		if err := backend.Close(); err != nil {
			log.Errorf("close storage backend: %s", err)
		}
	}

	state := app.NewState(backend.Provider)
	if err := state.Load(ctx); err != nil {
		closeBackend()
		return nil, nil, fmt.Errorf("load state: %w", err)
	}

	return state, closeBackend, nil
}
