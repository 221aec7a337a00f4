package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scamsignals/internal/domain/models"
	"scamsignals/internal/domain/services"
	"scamsignals/pkg/logger"
)

// AnalyzeHandler handles content analysis endpoints
type AnalyzeHandler struct {
	service *services.AnalysisService
	logger  *logger.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(service *services.AnalysisService, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  log.WithComponent("analyze-handler"),
	}
}

// ErrorResponse is the JSON body for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// Email handles POST /api/v1/analyze/email
func (h *AnalyzeHandler) Email(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.ContentTypeEmail)
}

// Website handles POST /api/v1/analyze/website
func (h *AnalyzeHandler) Website(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.ContentTypeWebsite)
}

// SocialMedia handles POST /api/v1/analyze/socialmedia
func (h *AnalyzeHandler) SocialMedia(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.ContentTypeSocialMedia)
}

func (h *AnalyzeHandler) analyze(w http.ResponseWriter, r *http.Request, contentType models.ContentType) {
	var content models.RawContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	content.Type = contentType

	if content.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}
	if contentType == models.ContentTypeWebsite && content.URL == "" {
		respondError(w, http.StatusBadRequest, "url is required for website analysis")
		return
	}

	record, err := h.service.Analyze(r.Context(), &content)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedContentType) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("content_type", string(contentType)).Msg("analysis failed")
		respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Get handles GET /api/v1/analyses/{hash}
func (h *AnalyzeHandler) Get(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")
	if hash == "" {
		respondError(w, http.StatusBadRequest, "hash is required")
		return
	}

	record, err := h.service.FindByHash(r.Context(), hash)
	if err != nil {
		h.logger.Error().Err(err).Str("content_hash", hash).Msg("lookup failed")
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if record == nil {
		respondError(w, http.StatusNotFound, "analysis not found")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
