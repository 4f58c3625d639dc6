package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/domain"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Utterance{}, "session_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Session{}, "id = ?", id).Error
	})
}

// AddUtterance inserts the utterance row and bumps the session counter in
// one transaction. The increment runs as a SQL expression so concurrent
// appends against the same session cannot lose updates.
func (r *sessionRepository) AddUtterance(ctx context.Context, utterance *domain.Utterance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(utterance).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Session{}).
			Where("id = ?", utterance.SessionID).
			UpdateColumn("total_utterances", gorm.Expr("total_utterances + 1")).Error
	})
}
