package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/assets"
	"github.com/at-ishikawa/studybuddy/internal/pdf"
	"github.com/at-ishikawa/studybuddy/internal/session"
)

// SidekickCLI manages the interactive Socratic dialogue session
type SidekickCLI struct {
	*InteractiveCLI
	dialogue     *session.DialogueSession
	initialTopic string
	templatePath string
	exportFile   string
	convertPDF   bool
}

// NewSidekickCLI creates a new sidekick interactive CLI. A non-empty
// initialTopic skips the topic prompt. When exportFile is non-empty the
// finished note is also written there, and convertPDF additionally
// renders it as a PDF.
func NewSidekickCLI(client api.DialogueAPI, initialTopic, templatePath, exportFile string, convertPDF bool) *SidekickCLI {
	return &SidekickCLI{
		InteractiveCLI: NewInteractiveCLI(),
		dialogue:       session.NewDialogueSession(client),
		initialTopic:   initialTopic,
		templatePath:   templatePath,
		exportFile:     exportFile,
		convertPDF:     convertPDF,
	}
}

func (s *SidekickCLI) Session(ctx context.Context) error {
	switch s.dialogue.State() {
	case session.DialogueStateNoSession:
		return s.startDialogue(ctx)
	case session.DialogueStateActive:
		return s.replyDialogue(ctx)
	default:
		return s.finishDialogue(ctx)
	}
}

func (s *SidekickCLI) startDialogue(ctx context.Context) error {
	topic := s.initialTopic
	s.initialTopic = ""
	if topic == "" {
		fmt.Fprint(s.stdoutWriter, "Topic: ")
		input, err := s.stdinReader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		if isQuit(input) {
			fmt.Fprintln(s.stdoutWriter, "Sidekick session ended.")
			return errEnd
		}
		topic = strings.TrimSpace(input)
	}

	if err := s.dialogue.Start(ctx, topic); err != nil {
		var validationErr *session.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(s.stdoutWriter, "Invalid input: %v\n", err)
			return nil
		}
		return fmt.Errorf("dialogue.Start > %w", err)
	}

	s.printLatestQuestion()
	return nil
}

func (s *SidekickCLI) replyDialogue(ctx context.Context) error {
	fmt.Fprint(s.stdoutWriter, "> ")
	input, err := s.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if isQuit(input) {
		fmt.Fprintln(s.stdoutWriter, "Sidekick session ended.")
		return errEnd
	}

	if err := s.dialogue.Reply(ctx, strings.TrimSpace(input)); err != nil {
		var validationErr *session.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(s.stdoutWriter, "Invalid input: %v\n", err)
			return nil
		}
		return fmt.Errorf("dialogue.Reply > %w", err)
	}

	if s.dialogue.State() == session.DialogueStateComplete {
		fmt.Fprintln(s.stdoutWriter, "The tutor wrapped up the session.")
		return nil
	}

	s.printLatestQuestion()
	return nil
}

func (s *SidekickCLI) printLatestQuestion() {
	transcript := s.dialogue.Transcript()
	if len(transcript) == 0 {
		return
	}
	fmt.Fprintf(s.stdoutWriter, "Tutor: %s\n", s.bold.Sprintf("%s", transcript[len(transcript)-1].Text))
}

func (s *SidekickCLI) finishDialogue(ctx context.Context) error {
	var note bytes.Buffer
	if err := s.renderNote(&note); err != nil {
		return err
	}

	fmt.Fprintln(s.stdoutWriter)
	if _, err := s.stdoutWriter.Write(note.Bytes()); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	fmt.Fprintln(s.stdoutWriter)

	fmt.Fprint(s.stdoutWriter, "Publish this note? [y/N]: ")
	input, err := s.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	if answer == "y" || answer == "yes" {
		post, err := s.dialogue.Publish(ctx)
		if err != nil {
			return fmt.Errorf("dialogue.Publish > %w", err)
		}
		green := color.New(color.FgGreen)
		if _, err := green.Fprintf(s.stdoutWriter, "Published post #%d\n", post.ID); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	if s.exportFile != "" {
		if err := s.exportNote(note.Bytes()); err != nil {
			fmt.Fprintf(s.stdoutWriter, "Warning: could not export the note: %v\n", err)
			return errEnd
		}
		fmt.Fprintf(s.stdoutWriter, "Note saved to %s\n", s.exportFile)

		if s.convertPDF {
			pdfPath, err := pdf.ConvertMarkdownToPDF(s.exportFile)
			if err != nil {
				fmt.Fprintf(s.stdoutWriter, "Warning: could not convert the note to PDF: %v\n", err)
			} else {
				fmt.Fprintf(s.stdoutWriter, "PDF saved to %s\n", pdfPath)
			}
		}
	}
	return errEnd
}

func (s *SidekickCLI) renderNote(output io.Writer) error {
	transcript := s.dialogue.Transcript()
	turns := make([]assets.NoteTurn, 0, len(transcript))
	for _, turn := range transcript {
		turns = append(turns, assets.NoteTurn{Speaker: string(turn.Speaker), Text: turn.Text})
	}

	err := assets.WriteNote(output, s.templatePath, assets.NoteTemplate{
		Title:      s.dialogue.Title(),
		CreatedAt:  time.Now(),
		Content:    s.dialogue.Content(),
		Transcript: turns,
	})
	if err != nil {
		return fmt.Errorf("assets.WriteNote > %w", err)
	}
	return nil
}

func (s *SidekickCLI) exportNote(contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.exportFile), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.exportFile), err)
	}
	if err := os.WriteFile(s.exportFile, contents, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.exportFile, err)
	}
	return nil
}
