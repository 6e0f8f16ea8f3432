package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/studybuddy/internal/api"
)

// DialogueState identifies where a dialogue session is in its lifecycle.
type DialogueState int

const (
	// DialogueStateNoSession means no dialogue has been started.
	DialogueStateNoSession DialogueState = iota
	// DialogueStateActive means the tutor is waiting for the next answer.
	DialogueStateActive
	// DialogueStateComplete means the tutor closed the dialogue with a note.
	DialogueStateComplete
)

func (s DialogueState) String() string {
	switch s {
	case DialogueStateNoSession:
		return "no session"
	case DialogueStateActive:
		return "active"
	case DialogueStateComplete:
		return "complete"
	}
	return "unknown"
}

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is a single transcript entry.
type Turn struct {
	Speaker Speaker
	Text    string
}

// DialogueSession drives one Socratic dialogue with the backend tutor.
// The backend keeps the dialogue itself; the session keeps the
// transcript shown to the user and, once the tutor wraps up, the note
// it produced.
type DialogueSession struct {
	client api.DialogueAPI

	state      DialogueState
	sessionID  string
	topic      string
	transcript []Turn
	title      string
	content    string
}

func NewDialogueSession(client api.DialogueAPI) *DialogueSession {
	return &DialogueSession{
		client: client,
		state:  DialogueStateNoSession,
	}
}

func (session *DialogueSession) State() DialogueState {
	return session.state
}

// Transcript returns a copy of the conversation so far.
func (session *DialogueSession) Transcript() []Turn {
	transcript := make([]Turn, len(session.transcript))
	copy(transcript, session.transcript)
	return transcript
}

func (session *DialogueSession) Topic() string {
	return session.topic
}

// Title returns the note title, available once the dialogue completes.
func (session *DialogueSession) Title() string {
	return session.title
}

// Content returns the note content, available once the dialogue completes.
func (session *DialogueSession) Content() string {
	return session.content
}

// Start opens a dialogue on a topic. A successful start discards any
// previous dialogue entirely; a failed one leaves it untouched.
func (session *DialogueSession) Start(ctx context.Context, topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}

	response, err := session.client.StartSocratic(ctx, api.StartSocraticRequest{
		Topic: topic,
	})
	if err != nil {
		return fmt.Errorf("client.StartSocratic > %w", err)
	}

	session.state = DialogueStateActive
	session.sessionID = response.SessionID
	session.topic = topic
	session.transcript = []Turn{
		{Speaker: SpeakerAssistant, Text: response.Question},
	}
	session.title = ""
	session.content = ""
	return nil
}

// Reply sends the user's answer to the active dialogue. The transcript
// grows only after the backend accepts the turn. When the tutor is
// done, the note title and content are stored and the session
// completes; otherwise the next question is appended.
func (session *DialogueSession) Reply(ctx context.Context, answer string) error {
	if session.state != DialogueStateActive {
		return &InvalidTransitionError{Operation: "reply", State: session.state.String()}
	}
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}

	response, err := session.client.ReplySocratic(ctx, api.ReplySocraticRequest{
		SessionID: session.sessionID,
		Answer:    answer,
	})
	if err != nil {
		return fmt.Errorf("client.ReplySocratic > %w", err)
	}

	session.transcript = append(session.transcript, Turn{Speaker: SpeakerUser, Text: answer})
	if response.Done {
		session.state = DialogueStateComplete
		session.title = response.Title
		session.content = response.Content
		return nil
	}
	session.transcript = append(session.transcript, Turn{Speaker: SpeakerAssistant, Text: response.Question})
	return nil
}

// Publish saves the dialogue's note to the posts store. It requires
// note content but is not a state transition: the session stays where
// it is and publishing can be repeated.
func (session *DialogueSession) Publish(ctx context.Context) (*api.Post, error) {
	if session.content == "" {
		return nil, ErrNoContent
	}

	post, err := session.client.CreatePost(ctx, api.CreatePostRequest{
		Title:   session.title,
		Content: session.content,
	})
	if err != nil {
		return nil, fmt.Errorf("client.CreatePost > %w", err)
	}
	return post, nil
}
