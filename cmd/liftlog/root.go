package main

import (
	"fmt"
	"path/filepath"

	"github.com/mkarpovich/liftlog/internal/db"
	"github.com/mkarpovich/liftlog/internal/remote"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const version = "0.3.0"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "liftlog",
		Short:         "Local-first training tracker core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newSyncCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})
	return root
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func openStore() (*gorm.DB, *db.Repositories, error) {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "liftlog.db"))
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.SeedSystemExercises(database); err != nil {
		return nil, nil, fmt.Errorf("seed exercises: %w", err)
	}
	return database, db.NewRepositories(database), nil
}

// newSink returns nil when SYNC_URL is unset; the sync driver treats a
// nil sink as a clean no-op so local use never depends on connectivity.
func newSink(log *logrus.Logger) remote.Sink {
	baseURL := getEnv("SYNC_URL", "")
	if baseURL == "" {
		return nil
	}
	return remote.NewHTTPSink(baseURL, getEnv("SYNC_TOKEN", ""), log)
}
