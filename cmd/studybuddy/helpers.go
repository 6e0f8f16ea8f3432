package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.Backend.URL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)
}

// resolveDeckID applies the configured default deck when the --deck
// flag is not set.
func resolveDeckID(flagValue int64, cfg *config.Config) (int64, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	if cfg.Review.DeckID > 0 {
		return cfg.Review.DeckID, nil
	}
	return 0, fmt.Errorf("no deck selected: pass --deck or set review.deck_id in the config")
}
