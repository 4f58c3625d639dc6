package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/domain"
	"gorm.io/gorm"
)

type utteranceRepository struct {
	db *gorm.DB
}

func NewUtteranceRepository(db *gorm.DB) *utteranceRepository {
	return &utteranceRepository{db: db}
}

func (r *utteranceRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.Utterance, error) {
	var utterances []*domain.Utterance
	// id tiebreak keeps same-timestamp utterances in a stable order
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, id ASC").
		Find(&utterances).Error
	if err != nil {
		return nil, err
	}
	return utterances, nil
}

func (r *utteranceRepository) DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Utterance{}, "session_id = ?", sessionID).Error
}
