// Package api provides the typed HTTP client for the study backend.
// The backend owns all persistence and scheduling; this client only
// moves JSON across the wire.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError determines if a readiness probe should be attempted again
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on server errors and rate limiting
	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return requestErr.StatusCode >= 500 || requestErr.StatusCode == 429
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	return false
}

// WaitReady polls the backend until it answers, so commands can start
// before the backend finishes booting. Only this probe retries; session
// transitions are never retried.
func (client *Client) WaitReady(ctx context.Context, maxAttempts uint) error {
	if err := retry.Do(
		func() error {
			if _, err := client.ListDecks(ctx); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return fmt.Errorf("retry.Do > %w", err)
	}
	return nil
}

func (client *Client) ListDecks(ctx context.Context) ([]Deck, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&[]Deck{}).
		Get("/decks")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	decks := response.Result().(*[]Deck)
	if decks == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return *decks, nil
}

func (client *Client) CreateDeck(ctx context.Context, request CreateDeckRequest) (*Deck, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&Deck{}).
		Post("/decks")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	return response.Result().(*Deck), nil
}

func (client *Client) CreateCard(ctx context.Context, request CreateCardRequest) (*Card, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&Card{}).
		Post("/cards")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	return response.Result().(*Card), nil
}

func (client *Client) ListCards(ctx context.Context, deckID int64, tag string) ([]Card, error) {
	request := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("deck_id", strconv.FormatInt(deckID, 10)).
		SetResult(&[]Card{})
	if tag != "" {
		request.SetQueryParam("tag", tag)
	}

	response, err := request.Get("/cards")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	cards := response.Result().(*[]Card)
	if cards == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return *cards, nil
}

// NextReviewCard fetches the next due card for a deck, optionally
// narrowed to a tag. No due card is a valid outcome, returned as
// (nil, nil), never as an error.
func (client *Client) NextReviewCard(ctx context.Context, deckID int64, tag string) (*Card, error) {
	request := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("deck_id", strconv.FormatInt(deckID, 10)).
		SetResult(&Card{})
	if tag != "" {
		request.SetQueryParam("tag", tag)
	}

	response, err := request.Get("/review/next")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	// The backend answers a bare JSON null when nothing is due, which
	// leaves the decoded card empty.
	card := response.Result().(*Card)
	if card == nil || card.ID == 0 {
		return nil, nil
	}
	return card, nil
}

// SubmitReview grades a card and returns it with its schedule updated.
func (client *Client) SubmitReview(ctx context.Context, request SubmitReviewRequest) (*Card, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&Card{}).
		Post("/review/submit")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	return response.Result().(*Card), nil
}

// IngestPDF uploads a PDF document and returns the question/answer
// pairs the backend extracted from it.
func (client *Client) IngestPDF(ctx context.Context, fileName string, document io.Reader) (*IngestResult, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", fileName, document).
		SetResult(&IngestResult{}).
		Post("/ingest/pdf")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	result := response.Result().(*IngestResult)
	if result == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return result, nil
}

// GetReflectStats fetches the per-deck bucket summary of card progress.
func (client *Client) GetReflectStats(ctx context.Context, deckID int64) (*ReflectStats, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("deck_id", strconv.FormatInt(deckID, 10)).
		SetResult(&ReflectStats{}).
		Get("/reflect/stats")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	return response.Result().(*ReflectStats), nil
}

func (client *Client) StartSocratic(ctx context.Context, request StartSocraticRequest) (*StartSocraticResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&StartSocraticResponse{}).
		Post("/socratic/start")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	result := response.Result().(*StartSocraticResponse)
	if result == nil || result.SessionID == "" {
		return nil, fmt.Errorf("empty session in response: %s", response.String())
	}
	return result, nil
}

func (client *Client) ReplySocratic(ctx context.Context, request ReplySocraticRequest) (*ReplySocraticResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&ReplySocraticResponse{}).
		Post("/socratic/reply")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	result := response.Result().(*ReplySocraticResponse)
	if result == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return result, nil
}

func (client *Client) ListPosts(ctx context.Context) ([]Post, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&[]Post{}).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	posts := response.Result().(*[]Post)
	if posts == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return *posts, nil
}

func (client *Client) CreatePost(ctx context.Context, request CreatePostRequest) (*Post, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&Post{}).
		Post("/posts")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, newRequestError(response)
	}

	return response.Result().(*Post), nil
}
