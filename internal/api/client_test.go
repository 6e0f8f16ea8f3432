package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler func(t *testing.T, w http.ResponseWriter, r *http.Request)) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(t, w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})
	return client
}

func TestClient_ListDecks(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantResponse    []Deck
		wantError       bool
		wantErrorString string
	}{
		{
			name: "Success with decks",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/decks", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode([]Deck{
					{ID: 1, Name: "Biology"},
					{ID: 2, Name: "Spanish", Description: "A2 vocabulary"},
				})
			},
			wantResponse: []Deck{
				{ID: 1, Name: "Biology"},
				{ID: 2, Name: "Spanish", Description: "A2 vocabulary"},
			},
		},
		{
			name: "No decks",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`[]`))
			},
			wantResponse: []Deck{},
		},
		{
			name: "Error with structured detail",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"detail": "database unavailable"}`))
			},
			wantError:       true,
			wantErrorString: "database unavailable",
		},
		{
			name: "Error with plain text body",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(`upstream timed out`))
			},
			wantError:       true,
			wantErrorString: "upstream timed out",
		},
		{
			name: "Error with empty body",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantError:       true,
			wantErrorString: "request failed with status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			gotResponse, gotErr := client.ListDecks(context.Background())

			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)

				var requestErr *RequestError
				require.ErrorAs(t, gotErr, &requestErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantResponse, gotResponse)
		})
	}
}

func TestClient_CreateDeck(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, map[string]interface{}{"name": "Chemistry"}, reqBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(Deck{ID: 3, Name: "Chemistry"})
	})

	got, err := client.CreateDeck(context.Background(), CreateDeckRequest{Name: "Chemistry"})
	require.NoError(t, err)
	assert.Equal(t, &Deck{ID: 3, Name: "Chemistry"}, got)
}

func TestClient_ListCards(t *testing.T) {
	tests := []struct {
		name              string
		deckID            int64
		tag               string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantCount int
	}{
		{
			name:   "Filters by deck only",
			deckID: 1,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/cards", r.URL.Path)
				assert.Equal(t, "1", r.URL.Query().Get("deck_id"))
				assert.False(t, r.URL.Query().Has("tag"))

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode([]Card{
					{ID: 10, DeckID: 1, Question: "Q1", Answer: "A1", Ease: 2.5},
					{ID: 11, DeckID: 1, Question: "Q2", Answer: "A2", Ease: 2.5},
				})
			},
			wantCount: 2,
		},
		{
			name:   "Filters by deck and tag",
			deckID: 1,
			tag:    "cell",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "1", r.URL.Query().Get("deck_id"))
				assert.Equal(t, "cell", r.URL.Query().Get("tag"))

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode([]Card{
					{ID: 10, DeckID: 1, Tag: "cell", Question: "Q1", Answer: "A1"},
				})
			},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			got, err := client.ListCards(context.Background(), tt.deckID, tt.tag)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestClient_NextReviewCard(t *testing.T) {
	dueAt := NewTimestamp(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantCard        *Card
		wantError       bool
		wantErrorString string
	}{
		{
			name: "Due card",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/review/next", r.URL.Path)
				assert.Equal(t, "1", r.URL.Query().Get("deck_id"))
				assert.Equal(t, "cell", r.URL.Query().Get("tag"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"id": 42,
					"deck_id": 1,
					"tag": "cell",
					"question": "What is a mitochondrion?",
					"answer": "The powerhouse of the cell",
					"ease": 2.5,
					"interval_min": 10,
					"due_at": "2026-03-01T09:30:00",
					"last_result": "good",
					"wrong_count": 1,
					"right_count": 3
				}`))
			},
			wantCard: &Card{
				ID:          42,
				DeckID:      1,
				Tag:         "cell",
				Question:    "What is a mitochondrion?",
				Answer:      "The powerhouse of the cell",
				Ease:        2.5,
				IntervalMin: 10,
				DueAt:       &dueAt,
				LastResult:  "good",
				WrongCount:  1,
				RightCount:  3,
			},
		},
		{
			name: "Nothing due returns nil without error",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`null`))
			},
			wantCard: nil,
		},
		{
			name: "Unknown deck",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail": "deck not found"}`))
			},
			wantError:       true,
			wantErrorString: "deck not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			got, gotErr := client.NextReviewCard(context.Background(), 1, "cell")

			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantCard, got)
		})
	}
}

func TestClient_SubmitReview(t *testing.T) {
	t.Run("Sends the grade exactly once", func(t *testing.T) {
		var requestCount int
		client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
			requestCount++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/review/submit", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"card_id": 42, "result": "hard"}`, string(body))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(Card{ID: 42, DeckID: 1, IntervalMin: 30, LastResult: "hard"})
		})

		got, err := client.SubmitReview(context.Background(), SubmitReviewRequest{CardID: 42, Result: "hard"})
		require.NoError(t, err)
		assert.Equal(t, 1, requestCount)
		assert.Equal(t, "hard", got.LastResult)
		assert.Equal(t, 30, got.IntervalMin)
	})

	t.Run("Backend rejects an unknown result token", func(t *testing.T) {
		client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail": "result must be one of: again, good, easy"}`))
		})

		_, err := client.SubmitReview(context.Background(), SubmitReviewRequest{CardID: 42, Result: "superb"})
		require.Error(t, err)

		var requestErr *RequestError
		require.ErrorAs(t, err, &requestErr)
		assert.Equal(t, http.StatusBadRequest, requestErr.StatusCode)
		assert.Equal(t, "result must be one of: again, good, easy", requestErr.Message)
	})
}

func TestClient_IngestPDF(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ingest/pdf", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.pdf", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 fake document", string(content))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(IngestResult{
			QA: []QAPair{
				{Question: "What is osmosis?", Answer: "Diffusion of water across a membrane"},
				{Question: "What is diffusion?", Answer: "Movement from high to low concentration"},
			},
		})
	})

	got, err := client.IngestPDF(context.Background(), "notes.pdf", strings.NewReader("%PDF-1.4 fake document"))
	require.NoError(t, err)
	require.Len(t, got.QA, 2)
	assert.Equal(t, "What is osmosis?", got.QA[0].Question)
}

func TestClient_GetReflectStats(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reflect/stats", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("deck_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 12,
			"buckets": {"red_hard": 2, "orange_medium": 3, "green_easy": 4, "gray_never": 3}
		}`))
	})

	got, err := client.GetReflectStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &ReflectStats{
		Total: 12,
		Buckets: ReflectBuckets{
			RedHard:      2,
			OrangeMedium: 3,
			GreenEasy:    4,
			GrayNever:    3,
		},
	}, got)
}

func TestClient_StartSocratic(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/socratic/start", r.URL.Path)

		var reqBody StartSocraticRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "Photosynthesis", reqBody.Topic)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StartSocraticResponse{
			SessionID: "sess-1",
			Question:  "What do plants need to produce their own food?",
		})
	})

	got, err := client.StartSocratic(context.Background(), StartSocraticRequest{Topic: "Photosynthesis"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "What do plants need to produce their own food?", got.Question)
}

func TestClient_ReplySocratic(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantResponse *ReplySocraticResponse
	}{
		{
			name: "Dialogue continues",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				var reqBody ReplySocraticRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "sess-1", reqBody.SessionID)
				assert.Equal(t, "Sunlight and water", reqBody.Answer)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"done": false, "question": "Where does the carbon come from?"}`))
			},
			wantResponse: &ReplySocraticResponse{
				Done:     false,
				Question: "Where does the carbon come from?",
			},
		},
		{
			name: "Dialogue completes with a note",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"done": true, "title": "Photosynthesis Notes", "content": "Plants synthesize glucose from CO2 and water using light."}`))
			},
			wantResponse: &ReplySocraticResponse{
				Done:    true,
				Title:   "Photosynthesis Notes",
				Content: "Plants synthesize glucose from CO2 and water using light.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			got, err := client.ReplySocratic(context.Background(), ReplySocraticRequest{
				SessionID: "sess-1",
				Answer:    "Sunlight and water",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantResponse, got)
		})
	}
}

func TestClient_ListPosts(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Photosynthesis Notes", "content": "...", "created_at": "2026-02-10T08:00:00"}
		]`))
	})

	got, err := client.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Photosynthesis Notes", got[0].Title)
	assert.Equal(t, time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC), got[0].CreatedAt.Time)
}

func TestClient_CreatePost(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)

		var reqBody CreatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "Photosynthesis Notes", reqBody.Title)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 5, "title": "Photosynthesis Notes", "content": "...", "created_at": "2026-02-10T08:00:00"}`))
	})

	got, err := client.CreatePost(context.Background(), CreatePostRequest{
		Title:   "Photosynthesis Notes",
		Content: "...",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestClient_WaitReady(t *testing.T) {
	t.Run("Recovers after transient server errors", func(t *testing.T) {
		var requestCount int
		client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
			requestCount++
			if requestCount < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		})

		err := client.WaitReady(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, 3, requestCount)
	})

	t.Run("Gives up immediately on a client error", func(t *testing.T) {
		var requestCount int
		client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
			requestCount++
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail": "not found"}`))
		})

		err := client.WaitReady(context.Background(), 3)
		require.Error(t, err)
		assert.Equal(t, 1, requestCount)
	})
}
