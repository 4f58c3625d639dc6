package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/domain"
	"github.com/lumatalk/lumatalk-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session has ended")
	ErrForbidden       = errors.New("resource belongs to another user")
)

type SessionService struct {
	sessionRepo   repository.SessionRepository
	utteranceRepo repository.UtteranceRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, utteranceRepo repository.UtteranceRepository) *SessionService {
	return &SessionService{
		sessionRepo:   sessionRepo,
		utteranceRepo: utteranceRepo,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, userID uuid.UUID, sourceLang, targetLang string) (*domain.Session, error) {
	if strings.TrimSpace(sourceLang) == "" || strings.TrimSpace(targetLang) == "" {
		return nil, ErrValidation
	}

	session := &domain.Session{
		ID:              uuid.New(),
		UserID:          userID,
		SourceLang:      sourceLang,
		TargetLang:      targetLang,
		StartTime:       time.Now(),
		TotalUtterances: 0,
		Saved:           false,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// EndSession stamps the end time. Ending an already-ended session is a
// no-op: the first end time sticks.
func (s *SessionService) EndSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.EndTime != nil {
		return session, nil
	}

	now := time.Now()
	session.EndTime = &now
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

type AddUtteranceInput struct {
	SourceText     string
	TranslatedText string
	Confidence     float64
	AudioURL       string
}

func (s *SessionService) AddUtterance(ctx context.Context, userID, sessionID uuid.UUID, input AddUtteranceInput) (*domain.Utterance, error) {
	if strings.TrimSpace(input.SourceText) == "" || strings.TrimSpace(input.TranslatedText) == "" {
		return nil, ErrValidation
	}

	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndTime != nil {
		return nil, ErrSessionEnded
	}

	utterance := &domain.Utterance{
		ID:             uuid.New(),
		SessionID:      session.ID,
		SourceText:     input.SourceText,
		TranslatedText: input.TranslatedText,
		Confidence:     input.Confidence,
		Timestamp:      time.Now(),
		AudioURL:       input.AudioURL,
		IsFinal:        true,
	}

	if err := s.sessionRepo.AddUtterance(ctx, utterance); err != nil {
		return nil, err
	}

	return utterance, nil
}

func (s *SessionService) GetUserSessions(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	return s.sessionRepo.GetByUserID(ctx, userID)
}

func (s *SessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	return s.getOwnedSession(ctx, userID, sessionID)
}

func (s *SessionService) GetSessionUtterances(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.Utterance, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.utteranceRepo.GetBySessionID(ctx, sessionID)
}

// DeleteSession removes the session and its utterances. Deleting an absent
// id succeeds silently; deleting another user's session does not.
func (s *SessionService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if session.UserID != userID {
		return ErrForbidden
	}

	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *SessionService) getOwnedSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}
