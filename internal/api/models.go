package api

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// timestampLayout is the backend's naive timestamp format. The backend
// stores and serves times without a zone suffix; they are always UTC.
const timestampLayout = "2006-01-02T15:04:05"

// Timestamp represents a backend timestamp for JSON and YAML serialization.
// Naive values (no zone suffix) are interpreted as UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp creates a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON implements the json.Marshaler interface
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == "null" {
		return nil
	}
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("unable to parse timestamp %s: expected a JSON string", value)
	}
	parsed, err := parseTimestamp(value[1 : len(value)-1])
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.UTC().Format(timestampLayout), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (t *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := parseTimestamp(value.Value)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	// First try the backend's naive format. time.Parse accepts an
	// optional fractional second after the seconds field, so this also
	// covers microsecond values.
	t, err := time.Parse(timestampLayout, value)
	if err == nil {
		return t, nil
	}

	// If that fails, try the RFC3339 timestamp format
	t, err = time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	// If that fails, try RFC3339Nano format (with nanoseconds)
	t, err = time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp '%s': expected %s, RFC3339, or RFC3339Nano format", value, timestampLayout)
}

// Deck is a named collection of cards.
type Deck struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description,omitempty"`
}

// Card is a flashcard with its scheduling state. The scheduling fields
// are owned by the backend and never modified on the client.
type Card struct {
	ID          int64      `json:"id" yaml:"id"`
	DeckID      int64      `json:"deck_id" yaml:"deck_id"`
	Tag         string     `json:"tag" yaml:"tag,omitempty"`
	Question    string     `json:"question" yaml:"question"`
	Answer      string     `json:"answer" yaml:"answer"`
	Ease        float64    `json:"ease" yaml:"ease"`
	IntervalMin int        `json:"interval_min" yaml:"interval_min"`
	DueAt       *Timestamp `json:"due_at" yaml:"due_at,omitempty"`
	LastResult  string     `json:"last_result" yaml:"last_result,omitempty"`
	WrongCount  int        `json:"wrong_count" yaml:"wrong_count"`
	RightCount  int        `json:"right_count" yaml:"right_count"`
}

// Post is a published note.
type Post struct {
	ID        int64     `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
}

// QAPair is a question/answer pair extracted from an ingested document.
type QAPair struct {
	Question string `json:"q" yaml:"q"`
	Answer   string `json:"a" yaml:"a"`
}

// IngestResult holds the question/answer pairs extracted from one document.
type IngestResult struct {
	QA []QAPair `json:"qa" yaml:"qa"`
}

// ReflectBuckets groups cards by how well they are known.
type ReflectBuckets struct {
	RedHard      int `json:"red_hard"`
	OrangeMedium int `json:"orange_medium"`
	GreenEasy    int `json:"green_easy"`
	GrayNever    int `json:"gray_never"`
}

// ReflectStats is the per-deck reflection summary.
type ReflectStats struct {
	Total   int            `json:"total"`
	Buckets ReflectBuckets `json:"buckets"`
}

type CreateDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateCardRequest struct {
	DeckID   int64  `json:"deck_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Tag      string `json:"tag"`
}

// SubmitReviewRequest grades a card. Result is an opaque backend token;
// the backend rejects tokens outside its vocabulary.
type SubmitReviewRequest struct {
	CardID int64  `json:"card_id"`
	Result string `json:"result"`
}

type StartSocraticRequest struct {
	Topic string `json:"topic"`
}

type StartSocraticResponse struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

type ReplySocraticRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

// ReplySocraticResponse carries the next question while Done is false,
// and the final note title and content once Done is true.
type ReplySocraticResponse struct {
	Done     bool   `json:"done"`
	Question string `json:"question,omitempty"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
