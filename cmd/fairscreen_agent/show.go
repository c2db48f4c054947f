package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/fairscreen/internal/db"
	"github.com/jonathan/fairscreen/internal/observability"
)

var showCommand = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted outcomes and alerts of a prior run",
	Long:  `Loads the artifacts a previous run persisted to the database and prints the rescue and alert digests.`,
	RunE:  showRunCmd,
}

var (
	showRunID string
	showDBURL string
)

func init() {
	showCommand.Flags().StringVar(&showRunID, "run-id", "", "Run ID (UUID) of the persisted run")
	showCommand.Flags().StringVar(&showDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	_ = showCommand.MarkFlagRequired("run-id")

	rootCmd.AddCommand(showCommand)
}

func showRunCmd(_ *cobra.Command, _ []string) error {
	runID, err := uuid.Parse(showRunID)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", showRunID, err)
	}
	dbURL := showDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("--db-url is required (or env DATABASE_URL)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer database.Close()

	outcomes, err := database.GetOutcomesByRunID(ctx, runID)
	if err != nil {
		return err
	}
	if outcomes == nil {
		return fmt.Errorf("no outcomes persisted for run %s", runID)
	}
	alerts, err := database.GetAlertsByRunID(ctx, runID)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRescues(outcomes)
	printer.PrintAlerts(alerts)
	fmt.Printf("run %s: %d outcomes, %d alerts\n", runID, len(outcomes), len(alerts))
	return nil
}
