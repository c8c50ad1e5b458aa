package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarpovich/liftlog/internal/services"
	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Drain the outbox queue against the remote sink once",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			_, repos, err := openStore()
			if err != nil {
				return err
			}

			driver := services.NewSyncDriver(repos.Outbox, newSink(log), log)
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			result := driver.Drain(ctx)
			fmt.Printf("synced=%d failed=%d success=%v\n", result.Synced, result.Failed, result.Success)
			for _, message := range result.Errors {
				fmt.Println("  " + message)
			}

			pending, err := driver.PendingCount()
			if err == nil {
				fmt.Printf("pending=%d\n", pending)
			}
			return nil
		},
	}
}
