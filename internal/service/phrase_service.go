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

type PhraseService struct {
	phraseRepo repository.PhraseRepository
}

func NewPhraseService(phraseRepo repository.PhraseRepository) *PhraseService {
	return &PhraseService{phraseRepo: phraseRepo}
}

type SavePhraseInput struct {
	SourceText     string
	TranslatedText string
	SourceLang     string
	TargetLang     string
	Tags           []string
}

func (s *PhraseService) SavePhrase(ctx context.Context, userID uuid.UUID, input SavePhraseInput) (*domain.SavedPhrase, error) {
	for _, field := range []string{input.SourceText, input.TranslatedText, input.SourceLang, input.TargetLang} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrValidation
		}
	}

	phrase := &domain.SavedPhrase{
		ID:             uuid.New(),
		UserID:         userID,
		SourceText:     input.SourceText,
		TranslatedText: input.TranslatedText,
		SourceLang:     input.SourceLang,
		TargetLang:     input.TargetLang,
		CreatedAt:      time.Now(),
		Tags:           input.Tags,
		ReviewCount:    0,
	}

	if err := s.phraseRepo.Create(ctx, phrase); err != nil {
		return nil, err
	}

	return phrase, nil
}

func (s *PhraseService) GetUserPhrases(ctx context.Context, userID uuid.UUID) ([]*domain.SavedPhrase, error) {
	return s.phraseRepo.GetByUserID(ctx, userID)
}

func (s *PhraseService) SearchPhrases(ctx context.Context, userID uuid.UUID, query string) ([]*domain.SavedPhrase, error) {
	return s.phraseRepo.Search(ctx, userID, query)
}

func (s *PhraseService) GetPhrasesByLanguagePair(ctx context.Context, userID uuid.UUID, sourceLang, targetLang string) ([]*domain.SavedPhrase, error) {
	return s.phraseRepo.GetByLanguagePair(ctx, userID, sourceLang, targetLang)
}

// DeletePhrase mirrors the session delete semantics: absent ids succeed
// silently, foreign ownership is rejected.
func (s *PhraseService) DeletePhrase(ctx context.Context, userID, phraseID uuid.UUID) error {
	phrase, err := s.phraseRepo.GetByID(ctx, phraseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if phrase.UserID != userID {
		return ErrForbidden
	}

	return s.phraseRepo.Delete(ctx, phraseID)
}
