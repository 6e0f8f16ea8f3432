package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/assets"
	"github.com/at-ishikawa/studybuddy/internal/cli"
	"github.com/at-ishikawa/studybuddy/internal/export"
	"github.com/at-ishikawa/studybuddy/internal/pdf"
)

func newPostCommand() *cobra.Command {
	postCommand := &cobra.Command{
		Use:   "post",
		Short: "Browse published notes",
	}

	postCommand.AddCommand(newPostListCommand())
	postCommand.AddCommand(newPostShowCommand())
	postCommand.AddCommand(newPostExportCommand())

	return postCommand
}

func newPostListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			posts, err := client.ListPosts(cmd.Context())
			if err != nil {
				return fmt.Errorf("client.ListPosts > %w", err)
			}

			cli.WritePostTable(os.Stdout, posts)
			return nil
		},
	}
}

func newPostShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <post id>",
		Short: "Print a post",
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

			post, err := findPost(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("# %s\n\nCreated: %s\n\n%s\n",
				post.Title, post.CreatedAt.Format("2006-01-02"), post.Content)
			return nil
		},
	}
}

func newPostExportCommand() *cobra.Command {
	var outputFile string
	var convertPDF bool

	command := &cobra.Command{
		Use:   "export <post id>",
		Short: "Write a post to a markdown file",
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

			post, err := findPost(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile = fmt.Sprintf("%d-%s.md", post.ID, export.Slugify(post.Title))
			}

			var note bytes.Buffer
			err = assets.WriteNote(&note, cfg.Sidekick.TemplateFile, assets.NoteTemplate{
				Title:     post.Title,
				CreatedAt: post.CreatedAt.Time,
				Content:   post.Content,
			})
			if err != nil {
				return fmt.Errorf("assets.WriteNote > %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(outputFile), err)
			}
			if err := os.WriteFile(outputFile, note.Bytes(), 0o644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", outputFile, err)
			}
			fmt.Printf("Post saved to %s\n", outputFile)

			if convertPDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(outputFile)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
				}
				fmt.Printf("PDF saved to %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().StringVar(&outputFile, "output", "", "Output file (defaults to <id>-<title>.md)")
	command.Flags().BoolVar(&convertPDF, "pdf", false, "Generate PDF output in addition to markdown")

	return command
}

func findPost(ctx context.Context, client *api.Client, rawID string) (*api.Post, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid post id %q", rawID)
	}

	posts, err := client.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.ListPosts > %w", err)
	}
	for _, post := range posts {
		if post.ID == id {
			return &post, nil
		}
	}
	return nil, fmt.Errorf("post %d not found", id)
}
