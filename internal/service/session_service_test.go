package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/repository/postgres"
	"github.com/lumatalk/lumatalk-backend/internal/service"
	"github.com/lumatalk/lumatalk-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Utterance)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name       string
		sourceLang string
		targetLang string
		wantErr    error
	}{
		{
			name:       "successful creation",
			sourceLang: "en",
			targetLang: "fr",
		},
		{
			name:       "blank source language",
			sourceLang: "  ",
			targetLang: "fr",
			wantErr:    service.ErrValidation,
		},
		{
			name:       "blank target language",
			sourceLang: "en",
			targetLang: "",
			wantErr:    service.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := sessionService.CreateSession(ctx, user.ID, tt.sourceLang, tt.targetLang)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, session.UserID)
			assert.Equal(t, 0, session.TotalUtterances)
			assert.False(t, session.Saved)
			assert.Nil(t, session.EndTime)
			assert.False(t, session.StartTime.IsZero())
		})
	}
}

func TestSessionService_EndSession(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Utterance)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("unknown session", func(t *testing.T) {
		_, err := sessionService.EndSession(ctx, user.ID, uuid.New())
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("foreign session", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)
		_, err := sessionService.EndSession(ctx, other.ID, session.ID)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("first end time sticks", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)

		ended, err := sessionService.EndSession(ctx, user.ID, session.ID)
		require.NoError(t, err)
		require.NotNil(t, ended.EndTime)
		firstEnd := *ended.EndTime

		time.Sleep(10 * time.Millisecond)

		again, err := sessionService.EndSession(ctx, user.ID, session.ID)
		require.NoError(t, err)
		require.NotNil(t, again.EndTime)
		assert.WithinDuration(t, firstEnd, *again.EndTime, time.Millisecond)
	})
}

func TestSessionService_AddUtterance(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Utterance)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	input := service.AddUtteranceInput{
		SourceText:     "good morning",
		TranslatedText: "bonjour",
		Confidence:     0.93,
	}

	t.Run("unknown session", func(t *testing.T) {
		_, err := sessionService.AddUtterance(ctx, user.ID, uuid.New(), input)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("blank source text", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)
		bad := input
		bad.SourceText = "   "
		_, err := sessionService.AddUtterance(ctx, user.ID, session.ID, bad)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("ended session rejects utterances", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Ended().Build(t, testDB.DB)
		_, err := sessionService.AddUtterance(ctx, user.ID, session.ID, input)
		assert.ErrorIs(t, err, service.ErrSessionEnded)
	})

	t.Run("sequential appends keep counter and rows aligned", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)

		const n = 5
		for i := 0; i < n; i++ {
			utterance, err := sessionService.AddUtterance(ctx, user.ID, session.ID, input)
			require.NoError(t, err)
			assert.True(t, utterance.IsFinal)
			assert.Equal(t, session.ID, utterance.SessionID)
		}

		got, err := sessionService.GetSession(ctx, user.ID, session.ID)
		require.NoError(t, err)
		assert.Equal(t, n, got.TotalUtterances)

		utterances, err := sessionService.GetSessionUtterances(ctx, user.ID, session.ID)
		require.NoError(t, err)
		require.Len(t, utterances, n)
		for i := 1; i < len(utterances); i++ {
			assert.False(t, utterances[i].Timestamp.Before(utterances[i-1].Timestamp),
				"utterances must be ordered by timestamp ascending")
		}
	})

	t.Run("concurrent appends lose no updates", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)

		const n = 50
		var wg sync.WaitGroup
		errs := make(chan error, n)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := sessionService.AddUtterance(ctx, user.ID, session.ID, input)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		got, err := sessionService.GetSession(ctx, user.ID, session.ID)
		require.NoError(t, err)
		assert.Equal(t, n, got.TotalUtterances)

		utterances, err := sessionService.GetSessionUtterances(ctx, user.ID, session.ID)
		require.NoError(t, err)
		assert.Len(t, utterances, n)
	})
}

func TestSessionService_GetUserSessions(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Utterance)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	base := time.Now().Add(-time.Hour)
	oldest := testutil.NewSessionBuilder(user.ID).WithStartTime(base).Build(t, testDB.DB)
	newest := testutil.NewSessionBuilder(user.ID).WithStartTime(base.Add(20 * time.Minute)).Build(t, testDB.DB)
	middle := testutil.NewSessionBuilder(user.ID).WithStartTime(base.Add(10 * time.Minute)).Build(t, testDB.DB)
	testutil.NewSessionBuilder(other.ID).Build(t, testDB.DB)

	sessions, err := sessionService.GetUserSessions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, newest.ID, sessions[0].ID)
	assert.Equal(t, middle.ID, sessions[1].ID)
	assert.Equal(t, oldest.ID, sessions[2].ID)
}

func TestSessionService_DeleteSession(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.Utterance)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		assert.NoError(t, sessionService.DeleteSession(ctx, user.ID, uuid.New()))
	})

	t.Run("foreign session is rejected", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)
		err := sessionService.DeleteSession(ctx, other.ID, session.ID)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("delete cascades to utterances", func(t *testing.T) {
		session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)
		_, err := sessionService.AddUtterance(ctx, user.ID, session.ID, service.AddUtteranceInput{
			SourceText:     "hello",
			TranslatedText: "bonjour",
			Confidence:     0.9,
		})
		require.NoError(t, err)

		require.NoError(t, sessionService.DeleteSession(ctx, user.ID, session.ID))

		_, err = sessionService.GetSession(ctx, user.ID, session.ID)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)

		utterances, err := repos.Utterance.GetBySessionID(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, utterances)
	})
}
