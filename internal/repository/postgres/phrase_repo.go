package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/domain"
	"gorm.io/gorm"
)

type phraseRepository struct {
	db *gorm.DB
}

func NewPhraseRepository(db *gorm.DB) *phraseRepository {
	return &phraseRepository{db: db}
}

func (r *phraseRepository) Create(ctx context.Context, phrase *domain.SavedPhrase) error {
	return r.db.WithContext(ctx).Create(phrase).Error
}

func (r *phraseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedPhrase, error) {
	var phrase domain.SavedPhrase
	err := r.db.WithContext(ctx).First(&phrase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &phrase, nil
}

func (r *phraseRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.SavedPhrase, error) {
	var phrases []*domain.SavedPhrase
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&phrases).Error
	if err != nil {
		return nil, err
	}
	return phrases, nil
}

func (r *phraseRepository) Search(ctx context.Context, userID uuid.UUID, query string) ([]*domain.SavedPhrase, error) {
	var phrases []*domain.SavedPhrase
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND (source_text ILIKE ? OR translated_text ILIKE ?)", userID, pattern, pattern).
		Order("created_at DESC").
		Find(&phrases).Error
	if err != nil {
		return nil, err
	}
	return phrases, nil
}

func (r *phraseRepository) GetByLanguagePair(ctx context.Context, userID uuid.UUID, sourceLang, targetLang string) ([]*domain.SavedPhrase, error) {
	var phrases []*domain.SavedPhrase
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND source_lang = ? AND target_lang = ?", userID, sourceLang, targetLang).
		Order("created_at DESC").
		Find(&phrases).Error
	if err != nil {
		return nil, err
	}
	return phrases, nil
}

func (r *phraseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.SavedPhrase{}, "id = ?", id).Error
}
