// Package testutil provides shared test helpers for creating config
// files and draft fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/studybuddy/internal/draft"
)

// SetupTestConfig creates a minimal config file and the directories it
// points at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	return SetupTestConfigWithBackend(t, tmpDir, "http://localhost:8000")
}

// SetupTestConfigWithBackend creates a config file pointing at a
// specific backend, usually an httptest server. Retries are disabled so
// tests that simulate backend failures return quickly.
func SetupTestConfigWithBackend(t *testing.T, tmpDir string, backendURL string) string {
	t.Helper()

	dirs := []string{
		"exports",
		filepath.Join("cache", "ingest"),
	}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`backend:
  url: %s
  timeout_seconds: 5
  retry_attempts: 0
review:
  results:
    - again
    - good
    - easy
  deck_id: 1
exports:
  directory: %s
ingest:
  cache_directory: %s
`,
		backendURL,
		filepath.Join(tmpDir, "exports"),
		filepath.Join(tmpDir, "cache", "ingest"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DraftOption configures optional fields when creating a draft fixture.
type DraftOption func(*draftConfig)

type draftConfig struct {
	tag string
}

// WithDraftTag sets the tag on every card in the draft fixture.
func WithDraftTag(tag string) DraftOption {
	return func(cfg *draftConfig) {
		cfg.tag = tag
	}
}

// CreateDraftFile writes a two card draft under tmpDir/drafts and
// returns its path. By default the cards carry the "cell" tag. Use
// WithDraftTag to override.
func CreateDraftFile(t *testing.T, tmpDir string, name string, opts ...DraftOption) string {
	t.Helper()

	cfg := draftConfig{
		tag: "cell",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	draftPath := filepath.Join(tmpDir, "drafts", name+".yml")
	require.NoError(t, draft.Save(draftPath, draft.Draft{
		Source:    name + ".pdf",
		CreatedAt: draft.NewDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		Cards: []draft.Card{
			{
				Question: "What produces ATP in a cell?",
				Answer:   "The mitochondria.",
				Tag:      cfg.tag,
			},
			{
				Question: "What is the cell membrane made of?",
				Answer:   "A phospholipid bilayer.",
				Tag:      cfg.tag,
			},
		},
	}))
	return draftPath
}
