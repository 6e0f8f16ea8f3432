// Package export writes a local snapshot of backend study data as YAML
// decks and markdown notes.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/assets"
)

// Result tracks counts for an export run.
type Result struct {
	Decks    int
	Cards    int
	Posts    int
	Warnings int
}

// DeckExport is the file layout for one exported deck.
type DeckExport struct {
	Deck  api.Deck   `yaml:"deck"`
	Cards []api.Card `yaml:"cards,omitempty"`
}

// Exporter reads the backend and writes local files. A failure on a
// single deck or post is reported as a warning and the run continues.
type Exporter struct {
	client       api.API
	templatePath string
	writer       io.Writer
}

// NewExporter creates a new Exporter. templatePath may be empty, in
// which case posts are rendered with the embedded note template.
func NewExporter(client api.API, templatePath string, writer io.Writer) *Exporter {
	return &Exporter{
		client:       client,
		templatePath: templatePath,
		writer:       writer,
	}
}

// Export writes all decks, cards and posts under dir.
func (e *Exporter) Export(ctx context.Context, dir string) (*Result, error) {
	var result Result

	for _, subDir := range []string{"decks", "posts"} {
		if err := os.MkdirAll(filepath.Join(dir, subDir), 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", subDir, err)
		}
	}

	if err := e.exportDecks(ctx, dir, &result); err != nil {
		return nil, fmt.Errorf("exportDecks() > %w", err)
	}
	if err := e.exportPosts(ctx, dir, &result); err != nil {
		return nil, fmt.Errorf("exportPosts() > %w", err)
	}

	return &result, nil
}

func (e *Exporter) exportDecks(ctx context.Context, dir string, result *Result) error {
	decks, err := e.client.ListDecks(ctx)
	if err != nil {
		return fmt.Errorf("client.ListDecks > %w", err)
	}

	for _, deck := range decks {
		cards, err := e.client.ListCards(ctx, deck.ID, "")
		if err != nil {
			fmt.Fprintf(e.writer, "  [WARN]  failed to list cards for %q: %v\n", deck.Name, err)
			result.Warnings++
			continue
		}

		path := filepath.Join(dir, "decks", Slugify(deck.Name)+".yml")
		if err := writeYamlFile(path, DeckExport{Deck: deck, Cards: cards}); err != nil {
			fmt.Fprintf(e.writer, "  [WARN]  failed to write %s: %v\n", path, err)
			result.Warnings++
			continue
		}

		fmt.Fprintf(e.writer, "  [DECK]  %q (%d cards)\n", deck.Name, len(cards))
		result.Decks++
		result.Cards += len(cards)
	}
	return nil
}

func (e *Exporter) exportPosts(ctx context.Context, dir string, result *Result) error {
	posts, err := e.client.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("client.ListPosts > %w", err)
	}

	for _, post := range posts {
		var buf bytes.Buffer
		err := assets.WriteNote(&buf, e.templatePath, assets.NoteTemplate{
			Title:     post.Title,
			CreatedAt: post.CreatedAt.Time,
			Content:   post.Content,
		})
		if err != nil {
			fmt.Fprintf(e.writer, "  [WARN]  failed to render post %q: %v\n", post.Title, err)
			result.Warnings++
			continue
		}

		path := filepath.Join(dir, "posts", fmt.Sprintf("%d-%s.md", post.ID, Slugify(post.Title)))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintf(e.writer, "  [WARN]  failed to write %s: %v\n", path, err)
			result.Warnings++
			continue
		}

		fmt.Fprintf(e.writer, "  [POST]  %q\n", post.Title)
		result.Posts++
	}
	return nil
}

func writeYamlFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(data)
}

// Slugify turns a title into a filesystem-friendly name.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		return "untitled"
	}
	return slug
}
