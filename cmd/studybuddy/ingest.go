package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/draft"
	"github.com/at-ishikawa/studybuddy/internal/ingest"
)

func newIngestCommand() *cobra.Command {
	var draftFile string
	var tag string

	command := &cobra.Command{
		Use:   "ingest <pdf file>",
		Short: "Extract question and answer pairs from a PDF",
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

			extractor := ingest.NewExtractor(client, cfg.Ingest.CacheDirectory)
			pairs, err := extractor.ExtractQA(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("extractor.ExtractQA > %w", err)
			}

			if len(pairs) == 0 {
				fmt.Println("No question/answer pairs were extracted.")
				return nil
			}
			for i, pair := range pairs {
				fmt.Printf("%d. Q: %s\n   A: %s\n", i+1, pair.Question, pair.Answer)
			}

			if draftFile != "" {
				d := draft.FromExtraction(filepath.Base(args[0]), pairs, tag)
				if err := draft.Save(draftFile, d); err != nil {
					return fmt.Errorf("draft.Save > %w", err)
				}
				fmt.Printf("\nDraft with %d card(s) written to %s\n", len(d.Cards), draftFile)
			}
			return nil
		},
	}
	command.Flags().StringVar(&draftFile, "draft", "", "Write extracted pairs to this draft file")
	command.Flags().StringVar(&tag, "tag", "", "Tag for cards in the draft")

	return command
}
