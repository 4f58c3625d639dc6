package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lumatalk/lumatalk-backend/internal/api/handlers"
	"github.com/lumatalk/lumatalk-backend/internal/api/middleware"
	"github.com/lumatalk/lumatalk-backend/internal/service"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	sessionHandler := handlers.NewSessionHandler(services.Session)
	phraseHandler := handlers.NewPhraseHandler(services.Phrase)

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.Create)
				r.Get("/", sessionHandler.List)
				r.Get("/{sessionID}", sessionHandler.Get)
				r.Put("/{sessionID}/end", sessionHandler.End)
				r.Delete("/{sessionID}", sessionHandler.Delete)
				r.Get("/{sessionID}/utterances", sessionHandler.ListUtterances)
				r.Post("/{sessionID}/utterances", sessionHandler.AddUtterance)
			})

			r.Route("/saved", func(r chi.Router) {
				r.Post("/", phraseHandler.Save)
				r.Get("/", phraseHandler.List)
				r.Get("/search", phraseHandler.Search)
				r.Get("/filter", phraseHandler.Filter)
				r.Delete("/{phraseID}", phraseHandler.Delete)
			})
		})
	})

	return r
}
