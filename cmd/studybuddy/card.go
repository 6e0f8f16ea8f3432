package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/cli"
	"github.com/at-ishikawa/studybuddy/internal/draft"
)

func newCardCommand() *cobra.Command {
	cardCommand := &cobra.Command{
		Use:   "card",
		Short: "Manage cards on the backend",
	}

	cardCommand.AddCommand(newCardListCommand())
	cardCommand.AddCommand(newCardCreateCommand())
	cardCommand.AddCommand(newCardImportCommand())

	return cardCommand
}

func newCardListCommand() *cobra.Command {
	var deckID int64
	var tag string

	command := &cobra.Command{
		Use:   "list",
		Short: "List cards in a deck",
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

			cards, err := client.ListCards(cmd.Context(), deck, tag)
			if err != nil {
				return fmt.Errorf("client.ListCards > %w", err)
			}

			cli.WriteCardTable(os.Stdout, cards)
			return nil
		},
	}
	command.Flags().Int64Var(&deckID, "deck", 0, "Deck ID (defaults to review.deck_id)")
	command.Flags().StringVar(&tag, "tag", "", "Only list cards with this tag")

	return command
}

func newCardCreateCommand() *cobra.Command {
	var deckID int64
	var question string
	var answer string
	var tag string

	command := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			deck, err := resolveDeckID(deckID, cfg)
			if err != nil {
				return err
			}
			if question == "" || answer == "" {
				return fmt.Errorf("both --question and --answer are required")
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			card, err := client.CreateCard(cmd.Context(), api.CreateCardRequest{
				DeckID:   deck,
				Question: question,
				Answer:   answer,
				Tag:      tag,
			})
			if err != nil {
				return fmt.Errorf("client.CreateCard > %w", err)
			}

			fmt.Printf("Created card #%d\n", card.ID)
			return nil
		},
	}
	command.Flags().Int64Var(&deckID, "deck", 0, "Deck ID (defaults to review.deck_id)")
	command.Flags().StringVar(&question, "question", "", "Question side of the card")
	command.Flags().StringVar(&answer, "answer", "", "Answer side of the card")
	command.Flags().StringVar(&tag, "tag", "", "Tag for the card")

	return command
}

func newCardImportCommand() *cobra.Command {
	var deckID int64

	command := &cobra.Command{
		Use:   "import <draft file>",
		Short: "Create cards from a draft file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			deck, err := resolveDeckID(deckID, cfg)
			if err != nil {
				return err
			}

			cards, err := draft.Load(args[0])
			if err != nil {
				return fmt.Errorf("draft.Load > %w", err)
			}
			if len(cards.Cards) == 0 {
				fmt.Printf("Draft %s has no cards.\n", args[0])
				return nil
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			created := 0
			failed := 0
			for _, card := range cards.Cards {
				_, err := client.CreateCard(cmd.Context(), api.CreateCardRequest{
					DeckID:   deck,
					Question: card.Question,
					Answer:   card.Answer,
					Tag:      card.Tag,
				})
				if err != nil {
					fmt.Printf("  [SKIP]  %q (%v)\n", card.Question, err)
					failed++
					continue
				}
				fmt.Printf("  [CARD]  %q\n", card.Question)
				created++
			}

			if created == 0 {
				return fmt.Errorf("no cards imported from %s (%d failed)", args[0], failed)
			}
			fmt.Printf("\nImported %d card(s) from %s (%d failed)\n", created, args[0], failed)
			return nil
		},
	}
	command.Flags().Int64Var(&deckID, "deck", 0, "Deck ID (defaults to review.deck_id)")

	return command
}
