// Package session holds the client-side state machines for studying.
// All durable state lives in the backend; a session only tracks what
// the user is working on right now. A backend error during any
// transition leaves the session in its prior state.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/studybuddy/internal/api"
)

// ReviewState identifies where a review session is in its lifecycle.
type ReviewState int

const (
	// ReviewStateEmpty means no card is loaded.
	ReviewStateEmpty ReviewState = iota
	// ReviewStateAnswerHidden means a card is loaded and its answer is still hidden.
	ReviewStateAnswerHidden
	// ReviewStateAnswerShown means a card is loaded and its answer was revealed.
	ReviewStateAnswerShown
)

func (s ReviewState) String() string {
	switch s {
	case ReviewStateEmpty:
		return "empty"
	case ReviewStateAnswerHidden:
		return "answer hidden"
	case ReviewStateAnswerShown:
		return "answer shown"
	}
	return "unknown"
}

// ReviewSession drives one grading loop over the backend's review
// queue. The backend decides which card is due next; the session holds
// the card being graded and the deck/tag filter to re-query with.
type ReviewSession struct {
	client api.ReviewAPI

	deckID int64
	tag    string

	card     *api.Card
	revealed bool
}

func NewReviewSession(client api.ReviewAPI) *ReviewSession {
	return &ReviewSession{
		client: client,
	}
}

func (session *ReviewSession) State() ReviewState {
	if session.card == nil {
		return ReviewStateEmpty
	}
	if session.revealed {
		return ReviewStateAnswerShown
	}
	return ReviewStateAnswerHidden
}

// Card returns the loaded card, or nil while the session is empty.
func (session *ReviewSession) Card() *api.Card {
	return session.card
}

// LoadNext fetches the next due card for a deck, optionally narrowed to
// a tag. Finding nothing due is a normal outcome that leaves the
// session empty. A loaded card always starts with its answer hidden.
func (session *ReviewSession) LoadNext(ctx context.Context, deckID int64, tag string) error {
	if deckID <= 0 {
		return ErrNoDeckSelected
	}

	card, err := session.client.NextReviewCard(ctx, deckID, tag)
	if err != nil {
		return fmt.Errorf("client.NextReviewCard > %w", err)
	}

	session.deckID = deckID
	session.tag = tag
	session.card = card
	session.revealed = false
	return nil
}

// Reveal shows the answer of the loaded card. It does nothing while no
// card is loaded. Revealing is not required before grading.
func (session *ReviewSession) Reveal() {
	if session.card == nil {
		return
	}
	session.revealed = true
}

// Submit grades the loaded card with an opaque backend result token,
// then immediately re-queries the next due card for the same filter.
// It does nothing while no card is loaded. When the re-query fails the
// session is already empty and the error is surfaced.
func (session *ReviewSession) Submit(ctx context.Context, result string) error {
	if session.card == nil {
		return nil
	}
	if strings.TrimSpace(result) == "" {
		return ErrEmptyResult
	}

	if _, err := session.client.SubmitReview(ctx, api.SubmitReviewRequest{
		CardID: session.card.ID,
		Result: result,
	}); err != nil {
		return fmt.Errorf("client.SubmitReview > %w", err)
	}

	session.card = nil
	session.revealed = false
	return session.LoadNext(ctx, session.deckID, session.tag)
}
