package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddUtterance inserts the utterance and increments the session's
	// utterance counter in a single transaction.
	AddUtterance(ctx context.Context, utterance *domain.Utterance) error
}

type UtteranceRepository interface {
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.Utterance, error)
	DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error
}

type PhraseRepository interface {
	Create(ctx context.Context, phrase *domain.SavedPhrase) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedPhrase, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.SavedPhrase, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]*domain.SavedPhrase, error)
	GetByLanguagePair(ctx context.Context, userID uuid.UUID, sourceLang, targetLang string) ([]*domain.SavedPhrase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User      UserRepository
	Session   SessionRepository
	Utterance UtteranceRepository
	Phrase    PhraseRepository
}
