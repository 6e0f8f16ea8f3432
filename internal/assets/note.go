package assets

import (
	"fmt"
	"io"
	"time"
)

// NoteTemplate is the top-level data structure for study note templates
type NoteTemplate struct {
	Title      string
	CreatedAt  time.Time
	Content    string
	Transcript []NoteTurn
}

// NoteTurn represents a single dialogue exchange for template rendering
type NoteTurn struct {
	Speaker string
	Text    string
}

func WriteNote(output io.Writer, templatePath string, templateData NoteTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackNoteTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
