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

type PhraseHandler struct {
	phraseService *service.PhraseService
}

func NewPhraseHandler(phraseService *service.PhraseService) *PhraseHandler {
	return &PhraseHandler{phraseService: phraseService}
}

type SavePhraseRequest struct {
	SourceText     string   `json:"sourceText"`
	TranslatedText string   `json:"translatedText"`
	SourceLang     string   `json:"sourceLang"`
	TargetLang     string   `json:"targetLang"`
	Tags           []string `json:"tags"`
}

func (h *PhraseHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SavePhraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	phrase, err := h.phraseService.SavePhrase(r.Context(), userID, service.SavePhraseInput{
		SourceText:     req.SourceText,
		TranslatedText: req.TranslatedText,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
		Tags:           req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "Text and language fields are required", http.StatusBadRequest)
			return
		}
		logger.FromRequest(r).Error().Err(err).Msg("failed to save phrase")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, phrase)
}

func (h *PhraseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	phrases, err := h.phraseService.GetUserPhrases(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to list phrases")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, phrases)
}

func (h *PhraseHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "Query parameter is required", http.StatusBadRequest)
		return
	}

	phrases, err := h.phraseService.SearchPhrases(r.Context(), userID, query)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("phrase search failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, phrases)
}

func (h *PhraseHandler) Filter(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sourceLang := r.URL.Query().Get("sourceLang")
	targetLang := r.URL.Query().Get("targetLang")
	if sourceLang == "" || targetLang == "" {
		http.Error(w, "Source and target language are required", http.StatusBadRequest)
		return
	}

	phrases, err := h.phraseService.GetPhrasesByLanguagePair(r.Context(), userID, sourceLang, targetLang)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("phrase filter failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, phrases)
}

func (h *PhraseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	phraseID, err := uuid.Parse(chi.URLParam(r, "phraseID"))
	if err != nil {
		http.Error(w, "Invalid phrase id", http.StatusBadRequest)
		return
	}

	if err := h.phraseService.DeletePhrase(r.Context(), userID, phraseID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		logger.FromRequest(r).Error().Err(err).Msg("failed to delete phrase")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
