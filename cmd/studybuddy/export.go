package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/export"
)

func newExportCommand() *cobra.Command {
	var directory string

	command := &cobra.Command{
		Use:   "export",
		Short: "Write a local snapshot of all decks, cards and posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if directory == "" {
				directory = cfg.Exports.Directory
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			exporter := export.NewExporter(client, cfg.Sidekick.TemplateFile, os.Stdout)
			result, err := exporter.Export(cmd.Context(), directory)
			if err != nil {
				return fmt.Errorf("exporter.Export > %w", err)
			}

			fmt.Println("\nExport Summary:")
			fmt.Printf("  Decks: %d\n", result.Decks)
			fmt.Printf("  Cards: %d\n", result.Cards)
			fmt.Printf("  Posts: %d\n", result.Posts)
			if result.Warnings > 0 {
				fmt.Printf("  Warnings: %d\n", result.Warnings)
			}
			return nil
		},
	}
	command.Flags().StringVar(&directory, "directory", "", "Directory to export into (defaults to exports.directory)")

	return command
}
