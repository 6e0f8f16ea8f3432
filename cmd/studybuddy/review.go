package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/cli"
	"github.com/at-ishikawa/studybuddy/internal/database"
	"github.com/at-ishikawa/studybuddy/internal/journal"
)

func newReviewCommand() *cobra.Command {
	var deckID int64
	var tag string

	command := &cobra.Command{
		Use:   "review",
		Short: "Review due cards interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			deck, err := resolveDeckID(deckID, cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			var recorder cli.Recorder
			if cfg.Journal.Enabled {
				db, err := database.Open(cfg.Database)
				if err != nil {
					return fmt.Errorf("database.Open() > %w", err)
				}
				defer func() {
					_ = db.Close()
				}()
				recorder = journal.NewDBRepository(db)
			}

			reviewCLI := cli.NewReviewCLI(client, recorder, cfg.Review.Results, deck, tag)
			fmt.Println("Review session started. Press ENTER to reveal answers, 'q' to quit.")
			fmt.Println()
			return reviewCLI.Run(cmd.Context(), reviewCLI)
		},
	}
	command.Flags().Int64Var(&deckID, "deck", 0, "Deck ID to review (defaults to review.deck_id)")
	command.Flags().StringVar(&tag, "tag", "", "Only review cards with this tag")

	return command
}
