package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/journal"
)

// WriteDeckTable renders decks in a fixed-width table.
func WriteDeckTable(writer io.Writer, decks []api.Deck) {
	if len(decks) == 0 {
		fmt.Fprintln(writer, "No decks found.")
		return
	}

	fmt.Fprintf(writer, "%-6s %-24s %s\n", "ID", "NAME", "DESCRIPTION")
	for _, deck := range decks {
		fmt.Fprintf(writer, "%-6d %-24s %s\n", deck.ID, deck.Name, deck.Description)
	}
}

// WriteCardTable renders cards in a fixed-width table.
func WriteCardTable(writer io.Writer, cards []api.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(writer, "No cards found.")
		return
	}

	fmt.Fprintf(writer, "%-6s %-44s %-12s %-17s %s\n", "ID", "QUESTION", "TAG", "DUE", "LAST")
	for _, card := range cards {
		due := "-"
		if card.DueAt != nil {
			due = card.DueAt.Format("2006-01-02 15:04")
		}
		last := card.LastResult
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(writer, "%-6d %-44s %-12s %-17s %s\n",
			card.ID, truncate(card.Question, 44), card.Tag, due, last)
	}
}

// WritePostTable renders posts in a fixed-width table.
func WritePostTable(writer io.Writer, posts []api.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(writer, "No posts found.")
		return
	}

	fmt.Fprintf(writer, "%-6s %-12s %s\n", "ID", "CREATED", "TITLE")
	for _, post := range posts {
		fmt.Fprintf(writer, "%-6d %-12s %s\n", post.ID, post.CreatedAt.Format("2006-01-02"), post.Title)
	}
}

// WriteJournalTable renders recent review logs, newest first.
func WriteJournalTable(writer io.Writer, logs []journal.ReviewLog) {
	if len(logs) == 0 {
		fmt.Fprintln(writer, "No reviews recorded yet.")
		return
	}

	fmt.Fprintf(writer, "%-17s %-8s %-10s %s\n", "REVIEWED", "CARD", "RESULT", "QUESTION")
	for _, log := range logs {
		fmt.Fprintf(writer, "%-17s %-8d %-10s %s\n",
			log.ReviewedAt.Format("2006-01-02 15:04"), log.CardID, log.Result, truncate(log.Question, 44))
	}
}

// WriteJournalSummary renders aggregate statistics over the journal.
func WriteJournalSummary(writer io.Writer, summary journal.Summary) {
	if summary.TotalReviews == 0 {
		fmt.Fprintln(writer, "No reviews recorded yet.")
		return
	}

	fmt.Fprintf(writer, "Total reviews: %d\n", summary.TotalReviews)
	fmt.Fprintf(writer, "Unique cards: %d\n", summary.UniqueCards)
	fmt.Fprintf(writer, "Streak: %d day(s)\n\n", summary.StreakDays)

	for _, day := range summary.Days {
		fmt.Fprintf(writer, "  %s  %4d reviews  %4d cards\n", day.Date, day.ReviewCount, day.CardCount)
	}
	fmt.Fprintln(writer)
	for _, result := range summary.Results {
		fmt.Fprintf(writer, "  %-12s %d\n", result.Result, result.Count)
	}
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
