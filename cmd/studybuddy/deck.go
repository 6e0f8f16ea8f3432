package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/cli"
)

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Manage decks on the backend",
	}

	deckCommand.AddCommand(newDeckListCommand())
	deckCommand.AddCommand(newDeckCreateCommand())

	return deckCommand
}

func newDeckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			decks, err := client.ListDecks(cmd.Context())
			if err != nil {
				return fmt.Errorf("client.ListDecks > %w", err)
			}

			cli.WriteDeckTable(os.Stdout, decks)
			return nil
		},
	}
}

func newDeckCreateCommand() *cobra.Command {
	var description string

	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			deck, err := client.CreateDeck(cmd.Context(), api.CreateDeckRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("client.CreateDeck > %w", err)
			}

			fmt.Printf("Created deck #%d %q\n", deck.ID, deck.Name)
			return nil
		},
	}
	command.Flags().StringVar(&description, "description", "", "Deck description")

	return command
}
