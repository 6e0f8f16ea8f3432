package api

import (
	"context"
	"io"
)

//go:generate mockgen -source=interface.go -destination=../mocks/api/mock_interface.go -package=mock_api

// ReviewAPI is the backend surface the review session depends on.
type ReviewAPI interface {
	NextReviewCard(ctx context.Context, deckID int64, tag string) (*Card, error)
	SubmitReview(ctx context.Context, request SubmitReviewRequest) (*Card, error)
}

// DialogueAPI is the backend surface the dialogue session depends on.
type DialogueAPI interface {
	StartSocratic(ctx context.Context, request StartSocraticRequest) (*StartSocraticResponse, error)
	ReplySocratic(ctx context.Context, request ReplySocraticRequest) (*ReplySocraticResponse, error)
	CreatePost(ctx context.Context, request CreatePostRequest) (*Post, error)
}

// IngestAPI is the backend surface for document ingestion.
type IngestAPI interface {
	IngestPDF(ctx context.Context, fileName string, document io.Reader) (*IngestResult, error)
}

// API is the full backend surface.
type API interface {
	ListDecks(ctx context.Context) ([]Deck, error)
	CreateDeck(ctx context.Context, request CreateDeckRequest) (*Deck, error)
	CreateCard(ctx context.Context, request CreateCardRequest) (*Card, error)
	ListCards(ctx context.Context, deckID int64, tag string) ([]Card, error)
	NextReviewCard(ctx context.Context, deckID int64, tag string) (*Card, error)
	SubmitReview(ctx context.Context, request SubmitReviewRequest) (*Card, error)
	IngestPDF(ctx context.Context, fileName string, document io.Reader) (*IngestResult, error)
	GetReflectStats(ctx context.Context, deckID int64) (*ReflectStats, error)
	StartSocratic(ctx context.Context, request StartSocraticRequest) (*StartSocraticResponse, error)
	ReplySocratic(ctx context.Context, request ReplySocraticRequest) (*ReplySocraticResponse, error)
	ListPosts(ctx context.Context) ([]Post, error)
	CreatePost(ctx context.Context, request CreatePostRequest) (*Post, error)
}

var (
	_ ReviewAPI   = (*Client)(nil)
	_ DialogueAPI = (*Client)(nil)
	_ IngestAPI   = (*Client)(nil)
	_ API         = (*Client)(nil)
)
