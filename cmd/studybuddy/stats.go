package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/cli"
)

func newStatsCommand() *cobra.Command {
	var deckID int64

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show how well a deck is known",
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

			stats, err := client.GetReflectStats(cmd.Context(), deck)
			if err != nil {
				return fmt.Errorf("client.GetReflectStats > %w", err)
			}

			// The stats endpoint only returns buckets, so the deck name
			// comes from a separate listing. Failing to resolve it just
			// drops the header line.
			deckName := ""
			if decks, err := client.ListDecks(cmd.Context()); err == nil {
				for _, d := range decks {
					if d.ID == deck {
						deckName = d.Name
						break
					}
				}
			}

			return cli.WriteStatsReport(os.Stdout, deckName, stats)
		},
	}
	command.Flags().Int64Var(&deckID, "deck", 0, "Deck ID (defaults to review.deck_id)")

	return command
}
