package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/studybuddy/internal/api"
	mock_api "github.com/at-ishikawa/studybuddy/internal/mocks/api"
)

func newTestDialogueSession(t *testing.T) (*DialogueSession, *mock_api.MockDialogueAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	client := mock_api.NewMockDialogueAPI(ctrl)
	return NewDialogueSession(client), client
}

func TestDialogueSession_Start(t *testing.T) {
	t.Run("rejects an empty topic without calling the backend", func(t *testing.T) {
		session, _ := newTestDialogueSession(t)

		err := session.Start(context.Background(), "   ")

		require.Error(t, err)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, ErrEmptyTopic, validationErr)
		assert.Equal(t, DialogueStateNoSession, session.State())
	})

	t.Run("opens a dialogue with the tutor's first question", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), api.StartSocraticRequest{Topic: "Photosynthesis"}).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "What do plants need to produce their own food?"}, nil)

		err := session.Start(context.Background(), "Photosynthesis")

		require.NoError(t, err)
		assert.Equal(t, DialogueStateActive, session.State())
		assert.Equal(t, "Photosynthesis", session.Topic())
		assert.Equal(t, []Turn{
			{Speaker: SpeakerAssistant, Text: "What do plants need to produce their own food?"},
		}, session.Transcript())
	})

	t.Run("a failed start preserves the previous dialogue", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), api.StartSocraticRequest{Topic: "Photosynthesis"}).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		client.EXPECT().
			StartSocratic(gomock.Any(), api.StartSocraticRequest{Topic: "Mitosis"}).
			Return(nil, errors.New("connection refused"))

		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))
		err := session.Start(context.Background(), "Mitosis")

		require.Error(t, err)
		assert.Equal(t, DialogueStateActive, session.State())
		assert.Equal(t, "Photosynthesis", session.Topic())
		assert.Equal(t, []Turn{{Speaker: SpeakerAssistant, Text: "Q1"}}, session.Transcript())
	})

	t.Run("a successful start discards the previous transcript", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), api.StartSocraticRequest{Topic: "Photosynthesis"}).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		client.EXPECT().
			ReplySocratic(gomock.Any(), gomock.Any()).
			Return(&api.ReplySocraticResponse{Done: false, Question: "Q2"}, nil)
		client.EXPECT().
			StartSocratic(gomock.Any(), api.StartSocraticRequest{Topic: "Mitosis"}).
			Return(&api.StartSocraticResponse{SessionID: "sess-2", Question: "What happens before a cell divides?"}, nil)

		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))
		require.NoError(t, session.Reply(context.Background(), "Sunlight"))
		require.NoError(t, session.Start(context.Background(), "Mitosis"))

		assert.Equal(t, DialogueStateActive, session.State())
		assert.Equal(t, "Mitosis", session.Topic())
		assert.Equal(t, []Turn{
			{Speaker: SpeakerAssistant, Text: "What happens before a cell divides?"},
		}, session.Transcript())
	})
}

func TestDialogueSession_Reply(t *testing.T) {
	t.Run("is rejected before a dialogue starts", func(t *testing.T) {
		session, _ := newTestDialogueSession(t)

		err := session.Reply(context.Background(), "An answer")

		require.Error(t, err)
		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "reply", transitionErr.Operation)
		assert.Equal(t, "no session", transitionErr.State)
	})

	t.Run("rejects an empty answer without calling the backend", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), gomock.Any()).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))

		err := session.Reply(context.Background(), "")

		require.Error(t, err)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, ErrEmptyAnswer, validationErr)
		assert.Len(t, session.Transcript(), 1)
	})

	t.Run("a failed reply leaves the transcript untouched", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), gomock.Any()).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		client.EXPECT().
			ReplySocratic(gomock.Any(), gomock.Any()).
			Return(nil, &api.RequestError{StatusCode: 500, Message: "tutor unavailable"})
		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))

		err := session.Reply(context.Background(), "Sunlight")

		require.Error(t, err)
		assert.Equal(t, DialogueStateActive, session.State())
		assert.Equal(t, []Turn{{Speaker: SpeakerAssistant, Text: "Q1"}}, session.Transcript())
	})

	t.Run("appends the answer and the next question together", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), gomock.Any()).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		client.EXPECT().
			ReplySocratic(gomock.Any(), api.ReplySocraticRequest{SessionID: "sess-1", Answer: "Sunlight"}).
			Return(&api.ReplySocraticResponse{Done: false, Question: "Q2"}, nil)
		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))

		err := session.Reply(context.Background(), "Sunlight")

		require.NoError(t, err)
		assert.Equal(t, []Turn{
			{Speaker: SpeakerAssistant, Text: "Q1"},
			{Speaker: SpeakerUser, Text: "Sunlight"},
			{Speaker: SpeakerAssistant, Text: "Q2"},
		}, session.Transcript())
	})

	t.Run("is rejected after the dialogue completes", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), gomock.Any()).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		client.EXPECT().
			ReplySocratic(gomock.Any(), gomock.Any()).
			Return(&api.ReplySocraticResponse{Done: true, Title: "Notes", Content: "..."}, nil)
		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))
		require.NoError(t, session.Reply(context.Background(), "Final answer"))

		err := session.Reply(context.Background(), "One more thing")

		require.Error(t, err)
		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "complete", transitionErr.State)
	})
}

func TestDialogueSession_Publish(t *testing.T) {
	t.Run("requires note content", func(t *testing.T) {
		session, _ := newTestDialogueSession(t)

		_, err := session.Publish(context.Background())

		require.Error(t, err)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, ErrNoContent, validationErr)
	})

	t.Run("can publish the same note repeatedly", func(t *testing.T) {
		session, client := newTestDialogueSession(t)
		client.EXPECT().
			StartSocratic(gomock.Any(), gomock.Any()).
			Return(&api.StartSocraticResponse{SessionID: "sess-1", Question: "Q1"}, nil)
		client.EXPECT().
			ReplySocratic(gomock.Any(), gomock.Any()).
			Return(&api.ReplySocraticResponse{Done: true, Title: "Photosynthesis Notes", Content: "Summary"}, nil)
		client.EXPECT().
			CreatePost(gomock.Any(), api.CreatePostRequest{Title: "Photosynthesis Notes", Content: "Summary"}).
			Times(2).
			Return(&api.Post{ID: 5, Title: "Photosynthesis Notes", Content: "Summary"}, nil)
		require.NoError(t, session.Start(context.Background(), "Photosynthesis"))
		require.NoError(t, session.Reply(context.Background(), "Final answer"))

		first, err := session.Publish(context.Background())
		require.NoError(t, err)
		second, err := session.Publish(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(5), first.ID)
		assert.Equal(t, int64(5), second.ID)
		assert.Equal(t, DialogueStateComplete, session.State())
	})
}

func TestDialogueSession_FullDialogue(t *testing.T) {
	session, client := newTestDialogueSession(t)
	client.EXPECT().
		StartSocratic(gomock.Any(), api.StartSocraticRequest{Topic: "Photosynthesis"}).
		Return(&api.StartSocraticResponse{
			SessionID: "sess-1",
			Question:  "What do plants need to produce their own food?",
		}, nil)
	client.EXPECT().
		ReplySocratic(gomock.Any(), api.ReplySocraticRequest{SessionID: "sess-1", Answer: "Sunlight and water"}).
		Return(&api.ReplySocraticResponse{Done: false, Question: "Where does the carbon come from?"}, nil)
	client.EXPECT().
		ReplySocratic(gomock.Any(), api.ReplySocraticRequest{SessionID: "sess-1", Answer: "Carbon dioxide in the air"}).
		Return(&api.ReplySocraticResponse{Done: false, Question: "What does the plant build from it?"}, nil)
	client.EXPECT().
		ReplySocratic(gomock.Any(), api.ReplySocraticRequest{SessionID: "sess-1", Answer: "Glucose"}).
		Return(&api.ReplySocraticResponse{
			Done:    true,
			Title:   "Photosynthesis Notes",
			Content: "Plants synthesize glucose from CO2 and water using light energy.",
		}, nil)
	client.EXPECT().
		CreatePost(gomock.Any(), api.CreatePostRequest{
			Title:   "Photosynthesis Notes",
			Content: "Plants synthesize glucose from CO2 and water using light energy.",
		}).
		Return(&api.Post{ID: 9, Title: "Photosynthesis Notes"}, nil)

	ctx := context.Background()
	require.NoError(t, session.Start(ctx, "Photosynthesis"))
	require.NoError(t, session.Reply(ctx, "Sunlight and water"))
	require.NoError(t, session.Reply(ctx, "Carbon dioxide in the air"))

	assert.Equal(t, DialogueStateActive, session.State())
	assert.Equal(t, []Turn{
		{Speaker: SpeakerAssistant, Text: "What do plants need to produce their own food?"},
		{Speaker: SpeakerUser, Text: "Sunlight and water"},
		{Speaker: SpeakerAssistant, Text: "Where does the carbon come from?"},
		{Speaker: SpeakerUser, Text: "Carbon dioxide in the air"},
		{Speaker: SpeakerAssistant, Text: "What does the plant build from it?"},
	}, session.Transcript())

	require.NoError(t, session.Reply(ctx, "Glucose"))
	assert.Equal(t, DialogueStateComplete, session.State())
	assert.Equal(t, "Photosynthesis Notes", session.Title())
	assert.Equal(t, "Plants synthesize glucose from CO2 and water using light energy.", session.Content())

	post, err := session.Publish(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), post.ID)
}
