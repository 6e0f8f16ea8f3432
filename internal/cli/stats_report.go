package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/studybuddy/internal/api"
)

// WriteStatsReport renders a deck's recall-strength distribution. The
// buckets come straight from the backend; the client only colors them.
func WriteStatsReport(writer io.Writer, deckName string, stats *api.ReflectStats) error {
	if deckName != "" {
		if _, err := fmt.Fprintf(writer, "Deck: %s\n", deckName); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	if stats.Total == 0 {
		if _, err := fmt.Fprintln(writer, "No cards in this deck yet."); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(writer, "Total cards: %d\n\n", stats.Total); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	rows := []struct {
		label string
		count int
		color *color.Color
	}{
		{label: "hard", count: stats.Buckets.RedHard, color: color.New(color.FgRed)},
		{label: "medium", count: stats.Buckets.OrangeMedium, color: color.New(color.FgYellow)},
		{label: "easy", count: stats.Buckets.GreenEasy, color: color.New(color.FgGreen)},
		{label: "never reviewed", count: stats.Buckets.GrayNever, color: color.New(color.Faint)},
	}

	for _, row := range rows {
		percent := float64(row.count) * 100 / float64(stats.Total)
		if _, err := row.color.Fprintf(writer, "  %-16s %4d  %5.1f%%\n", row.label, row.count, percent); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}
