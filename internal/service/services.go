package service

import (
	"github.com/lumatalk/lumatalk-backend/internal/config"
	"github.com/lumatalk/lumatalk-backend/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Session *SessionService
	Phrase  *PhraseService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, cfg),
		Session: NewSessionService(repos.Session, repos.Utterance),
		Phrase:  NewPhraseService(repos.Phrase),
	}
}
