package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/cli"
)

func newSidekickCommand() *cobra.Command {
	var exportFile string
	var convertPDF bool

	command := &cobra.Command{
		Use:   "sidekick [topic]",
		Short: "Study a topic through a Socratic dialogue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			topic := ""
			if len(args) > 0 {
				topic = args[0]
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			sidekickCLI := cli.NewSidekickCLI(client, topic, cfg.Sidekick.TemplateFile, exportFile, convertPDF)
			fmt.Println("Sidekick session started. Type 'q' to quit.")
			fmt.Println()
			return sidekickCLI.Run(cmd.Context(), sidekickCLI)
		},
	}
	command.Flags().StringVar(&exportFile, "export", "", "Write the finished note to this markdown file")
	command.Flags().BoolVar(&convertPDF, "pdf", false, "Generate PDF output in addition to markdown")

	return command
}
