package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumatalk/lumatalk-backend/internal/api/middleware"
	"github.com/lumatalk/lumatalk-backend/internal/logger"
	"github.com/lumatalk/lumatalk-backend/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type CreateSessionRequest struct {
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type AddUtteranceRequest struct {
	SourceText     string   `json:"sourceText"`
	TranslatedText string   `json:"translatedText"`
	Confidence     *float64 `json:"confidence"`
	AudioURL       string   `json:"audioUrl"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), userID, req.SourceLang, req.TargetLang)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "Source and target language are required", http.StatusBadRequest)
			return
		}
		logger.FromRequest(r).Error().Err(err).Msg("failed to create session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := h.sessionService.GetUserSessions(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to list sessions")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	session, err := h.sessionService.EndSession(r.Context(), userID, sessionID)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), userID, sessionID); err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) ListUtterances(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	utterances, err := h.sessionService.GetSessionUtterances(r.Context(), userID, sessionID)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, utterances)
}

func (h *SessionHandler) AddUtterance(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	var req AddUtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Confidence == nil {
		http.Error(w, "Confidence is required", http.StatusBadRequest)
		return
	}

	utterance, err := h.sessionService.AddUtterance(r.Context(), userID, sessionID, service.AddUtteranceInput{
		SourceText:     req.SourceText,
		TranslatedText: req.TranslatedText,
		Confidence:     *req.Confidence,
		AudioURL:       req.AudioURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "Source and translated text are required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, service.ErrSessionEnded) {
			http.Error(w, "Session has ended", http.StatusConflict)
			return
		}
		h.writeSessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, utterance)
}

func (h *SessionHandler) requestIDs(w http.ResponseWriter, r *http.Request) (userID, sessionID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(r.Context())
	if !found {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, sessionID, true
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		logger.FromRequest(r).Error().Err(err).Msg("session operation failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
