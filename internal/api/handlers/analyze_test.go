package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
	"scamsignals/internal/domain/services"
	"scamsignals/pkg/logger"
)

func newTestAnalyzeHandler() *AnalyzeHandler {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	extractor := services.NewSignalExtractor(config.DefaultExtraction(), log)
	service := services.NewAnalysisService(extractor, nil, nil, nil, nil, log)
	return NewAnalyzeHandler(service, log)
}

func TestAnalyzeHandler_Email(t *testing.T) {
	h := newTestAnalyzeHandler()

	body := `{"subject":"URGENT","content":"Enter your OTP at https://secure-login.xyz/verify","from_email":"a@bank.com","reply_to_email":"b@gmail.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/email", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Email(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var record models.AnalysisRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&record))
	assert.Equal(t, models.ContentTypeEmail, record.ContentType)
	assert.Len(t, record.ContentHash, 16)
	require.NotNil(t, record.Signals)
	assert.True(t, record.Signals.Heuristics.Categories["otp_request"])
	require.NotNil(t, record.Signals.EmailMeta)
	assert.True(t, record.Signals.EmailMeta.ReplyToMismatch)
}

func TestAnalyzeHandler_MissingContent(t *testing.T) {
	h := newTestAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/email", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Email(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "content is required", errResp.Error)
}

func TestAnalyzeHandler_WebsiteRequiresURL(t *testing.T) {
	h := newTestAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/website", strings.NewReader(`{"content":"page body"}`))
	rec := httptest.NewRecorder()

	h.Website(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeHandler_InvalidBody(t *testing.T) {
	h := newTestAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/socialmedia", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.SocialMedia(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
