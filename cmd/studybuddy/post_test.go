package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/testutil"
)

func newPostListServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.Post{
			{
				ID:        7,
				Title:     "Photosynthesis",
				Content:   "Light energy becomes chemical energy.",
				CreatedAt: api.NewTimestamp(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
			},
		})
	}))
}

func TestNewPostListCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newPostListCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewPostListCommand_RunE(t *testing.T) {
	server := newPostListServer(t)
	defer server.Close()

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithBackend(t, tmpDir, server.URL)
	setConfigFile(t, cfgPath)

	cmd := newPostListCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestNewPostShowCommand_RunE(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name: "existing post",
			args: []string{"7"},
		},
		{
			name:    "unknown post",
			args:    []string{"8"},
			wantErr: "post 8 not found",
		},
		{
			name:    "invalid post id",
			args:    []string{"abc"},
			wantErr: "invalid post id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newPostListServer(t)
			defer server.Close()

			tmpDir := t.TempDir()
			cfgPath := testutil.SetupTestConfigWithBackend(t, tmpDir, server.URL)
			setConfigFile(t, cfgPath)

			cmd := newPostShowCommand()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPostExportCommand_RunE(t *testing.T) {
	server := newPostListServer(t)
	defer server.Close()

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithBackend(t, tmpDir, server.URL)
	setConfigFile(t, cfgPath)

	outputFile := filepath.Join(tmpDir, "notes", "photosynthesis.md")
	cmd := newPostExportCommand()
	cmd.SetArgs([]string{"7", "--output", outputFile})
	err := cmd.Execute()
	require.NoError(t, err)

	contents, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "# Photosynthesis")
	assert.Contains(t, string(contents), "Created: 2025-06-01")
	assert.Contains(t, string(contents), "Light energy becomes chemical energy.")
}

func TestNewPostExportCommand_RunE_PDF(t *testing.T) {
	server := newPostListServer(t)
	defer server.Close()

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithBackend(t, tmpDir, server.URL)
	setConfigFile(t, cfgPath)

	outputFile := filepath.Join(tmpDir, "photosynthesis.md")
	cmd := newPostExportCommand()
	cmd.SetArgs([]string{"7", "--output", outputFile, "--pdf"})
	err := cmd.Execute()
	require.NoError(t, err)

	pdfInfo, err := os.Stat(strings.TrimSuffix(outputFile, ".md") + ".pdf")
	require.NoError(t, err)
	assert.Greater(t, pdfInfo.Size(), int64(0))
}
