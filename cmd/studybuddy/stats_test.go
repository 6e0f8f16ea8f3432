package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/testutil"
)

func TestNewStatsCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newStatsCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewStatsCommand_RunE(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/reflect/stats":
			assert.Equal(t, "1", r.URL.Query().Get("deck_id"))
			_ = json.NewEncoder(w).Encode(api.ReflectStats{
				Total: 10,
				Buckets: api.ReflectBuckets{
					RedHard:      3,
					OrangeMedium: 2,
					GreenEasy:    4,
					GrayNever:    1,
				},
			})
		case "/decks":
			_ = json.NewEncoder(w).Encode([]api.Deck{
				{ID: 1, Name: "Biology 101"},
			})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithBackend(t, tmpDir, server.URL)
	setConfigFile(t, cfgPath)

	cmd := newStatsCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestNewStatsCommand_RunE_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "deck 9 not found"}`))
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithBackend(t, tmpDir, server.URL)
	setConfigFile(t, cfgPath)

	cmd := newStatsCommand()
	cmd.SetArgs([]string{"--deck", "9"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deck 9 not found")
}
