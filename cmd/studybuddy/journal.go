package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/cli"
	"github.com/at-ishikawa/studybuddy/internal/config"
	"github.com/at-ishikawa/studybuddy/internal/database"
	"github.com/at-ishikawa/studybuddy/internal/journal"
)

func newJournalCommand() *cobra.Command {
	var limit int

	journalCommand := &cobra.Command{
		Use:   "journal",
		Short: "Show the local review history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, db, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			logs, err := repository.FindRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("repository.FindRecent > %w", err)
			}
			if len(logs) == 0 {
				fmt.Println("No reviews recorded yet.")
				return nil
			}

			cli.WriteJournalTable(os.Stdout, logs)
			return nil
		},
	}
	journalCommand.Flags().IntVar(&limit, "limit", 20, "Maximum number of reviews to show")

	journalCommand.AddCommand(newJournalSummaryCommand())

	return journalCommand
}

func newJournalSummaryCommand() *cobra.Command {
	var year int
	var month int

	command := &cobra.Command{
		Use:   "summary",
		Short: "Summarize the review history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 {
				return fmt.Errorf("invalid month %d: must be between 1 and 12", month)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, db, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			logs, err := repository.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.FindAll > %w", err)
			}

			cli.WriteJournalSummary(os.Stdout, journal.Summarize(logs, year, month))
			return nil
		},
	}
	command.Flags().IntVar(&year, "year", 0, "Only count reviews from this year")
	command.Flags().IntVar(&month, "month", 0, "Only count reviews from this month (requires --year)")

	return command
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func openJournal(cfg *config.Config) (journal.Repository, *sqlx.DB, error) {
	if !cfg.Journal.Enabled {
		return nil, nil, fmt.Errorf("the journal is disabled: set journal.enabled in the config")
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open > %w", err)
	}
	return journal.NewDBRepository(db), db, nil
}
