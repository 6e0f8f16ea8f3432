package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand() *cobra.Command {
	var attempts uint

	command := &cobra.Command{
		Use:   "ping",
		Short: "Wait until the backend is ready",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cmd.Flags().Changed("attempts") {
				attempts = cfg.Backend.RetryAttempts
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			if err := client.WaitReady(cmd.Context(), attempts); err != nil {
				return fmt.Errorf("backend %s is not ready: %w", cfg.Backend.URL, err)
			}
			fmt.Printf("Backend %s is ready.\n", cfg.Backend.URL)
			return nil
		},
	}
	command.Flags().UintVar(&attempts, "attempts", 3, "Number of connection attempts before giving up")

	return command
}
