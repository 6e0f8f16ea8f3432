package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/at-ishikawa/studybuddy/internal/api"
	"github.com/at-ishikawa/studybuddy/internal/journal"
	"github.com/at-ishikawa/studybuddy/internal/session"
)

// Recorder appends reviews to the local journal. It is optional; a nil
// recorder disables journaling without changing the review flow.
type Recorder interface {
	Create(ctx context.Context, log *journal.ReviewLog) error
}

// ReviewCLI manages the interactive review session for a deck
type ReviewCLI struct {
	*InteractiveCLI
	reviewSession *session.ReviewSession
	recorder      Recorder
	results       []string
	deckID        int64
	tag           string
}

// NewReviewCLI creates a new review interactive CLI. The results slice
// is the grading vocabulary offered to the user, in menu order.
func NewReviewCLI(client api.ReviewAPI, recorder Recorder, results []string, deckID int64, tag string) *ReviewCLI {
	return &ReviewCLI{
		InteractiveCLI: NewInteractiveCLI(),
		reviewSession:  session.NewReviewSession(client),
		recorder:       recorder,
		results:        results,
		deckID:         deckID,
		tag:            tag,
	}
}

func (r *ReviewCLI) Session(ctx context.Context) error {
	if r.reviewSession.State() == session.ReviewStateEmpty {
		if err := r.reviewSession.LoadNext(ctx, r.deckID, r.tag); err != nil {
			return fmt.Errorf("reviewSession.LoadNext > %w", err)
		}
		if r.reviewSession.Card() == nil {
			fmt.Fprintln(r.stdoutWriter, "No cards are due for review!")
			return errEnd
		}
	}

	card := r.reviewSession.Card()
	startTime := time.Now()

	fmt.Fprintf(r.stdoutWriter, "Q: %s\n", r.bold.Sprintf("%s", card.Question))
	if card.Tag != "" {
		fmt.Fprintf(r.stdoutWriter, "   tag: %s\n", card.Tag)
	}
	fmt.Fprint(r.stdoutWriter, "Press ENTER to show the answer, or (q)uit: ")

	input, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if isQuit(input) {
		fmt.Fprintln(r.stdoutWriter, "Review session ended.")
		return errEnd
	}

	// Typing a result here grades the card without showing the answer.
	if result, ok := matchResult(input, r.results); ok {
		return r.submit(ctx, card, result, startTime)
	}

	r.reviewSession.Reveal()
	fmt.Fprintf(r.stdoutWriter, "A: %s\n", r.italic.Sprintf("%s", card.Answer))

	result, err := r.promptResult()
	if err != nil {
		return err
	}
	return r.submit(ctx, card, result, startTime)
}

// promptResult asks for a result token until it gets a valid one or the
// user quits.
func (r *ReviewCLI) promptResult() (string, error) {
	for {
		fmt.Fprintf(r.stdoutWriter, "Result (%s) or (q)uit: ", strings.Join(r.results, "/"))
		input, err := r.stdinReader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if isQuit(input) {
			fmt.Fprintln(r.stdoutWriter, "Review session ended.")
			return "", errEnd
		}

		result, ok := matchResult(input, r.results)
		if !ok {
			fmt.Fprintf(r.stdoutWriter, "Unknown result %q. Expected one of: %s\n",
				strings.TrimSpace(input), strings.Join(r.results, ", "))
			continue
		}
		return result, nil
	}
}

func (r *ReviewCLI) submit(ctx context.Context, card *api.Card, result string, startTime time.Time) error {
	responseTimeMs := time.Since(startTime).Milliseconds()

	if err := r.reviewSession.Submit(ctx, result); err != nil {
		return fmt.Errorf("reviewSession.Submit > %w", err)
	}

	if r.recorder != nil {
		log := &journal.ReviewLog{
			CardID:         card.ID,
			DeckID:         card.DeckID,
			Tag:            card.Tag,
			Question:       card.Question,
			Result:         result,
			ResponseTimeMs: int(responseTimeMs),
			ReviewedAt:     time.Now(),
		}
		if err := r.recorder.Create(ctx, log); err != nil {
			fmt.Fprintf(r.stdoutWriter, "Warning: could not record the review: %v\n", err)
		}
	}

	fmt.Fprintf(r.stdoutWriter, "Recorded %s.\n", r.bold.Sprintf("%s", result))
	fmt.Fprintln(r.stdoutWriter)
	return nil
}

// matchResult resolves an input line to one of the configured result
// tokens. Full tokens match case-insensitively; a prefix matches when
// exactly one token starts with it.
func matchResult(input string, results []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	for _, result := range results {
		if strings.EqualFold(input, result) {
			return result, true
		}
	}

	matched := ""
	count := 0
	for _, result := range results {
		if strings.HasPrefix(strings.ToLower(result), input) {
			matched = result
			count++
		}
	}
	if count == 1 {
		return matched, true
	}
	return "", false
}
