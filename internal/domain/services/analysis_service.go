package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"scamsignals/internal/domain/models"
	"scamsignals/internal/infrastructure/cache"
	"scamsignals/internal/infrastructure/database/repository"
	"scamsignals/pkg/logger"
)

// analysisCacheTTL bounds how long a finished analysis is served from
// Redis before falling back to the repository
const analysisCacheTTL = 24 * time.Hour

// RiskScorer turns a signals document into a risk assessment. The
// engine ships none; deployments inject their own.
type RiskScorer interface {
	Score(ctx context.Context, content *models.RawContent, signals *models.SignalsDocument) (*models.RiskAssessment, error)
}

// AnalysisService orchestrates one analysis: hash the content, reuse a
// stored result when the same content was seen before, otherwise extract
// signals, attach the checker summary, and persist.
type AnalysisService struct {
	hasher    *ContentHasher
	extractor *SignalExtractor
	checker   *ArtifactChecker
	dedup     *Deduplicator
	repo      *repository.AnalysisRepository
	cache     *cache.RedisCache
	scorer    RiskScorer
	logger    *logger.Logger
}

// NewAnalysisService creates the orchestrator. checker, dedup, repo and
// redis may be nil; the service degrades to pure extraction.
func NewAnalysisService(
	extractor *SignalExtractor,
	checker *ArtifactChecker,
	dedup *Deduplicator,
	repo *repository.AnalysisRepository,
	redis *cache.RedisCache,
	log *logger.Logger,
) *AnalysisService {
	return &AnalysisService{
		hasher:    NewContentHasher(),
		extractor: extractor,
		checker:   checker,
		dedup:     dedup,
		repo:      repo,
		cache:     redis,
		logger:    log.WithComponent("analysis"),
	}
}

// SetScorer injects the risk scorer
func (s *AnalysisService) SetScorer(scorer RiskScorer) {
	s.scorer = scorer
}

// Analyze runs the full pipeline for one piece of content
func (s *AnalysisService) Analyze(ctx context.Context, content *models.RawContent) (*models.AnalysisRecord, error) {
	hash, err := s.hasher.Hash(content)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithContentType(string(content.Type))

	if existing := s.findExisting(ctx, hash); existing != nil {
		log.Info().Str("content_hash", hash).Msg("returning stored analysis")
		existing.Cached = true
		return existing, nil
	}

	signals, err := s.extractor.Extract(content)
	if err != nil {
		return nil, err
	}

	if s.checker != nil {
		if summary := s.checker.Check(ctx, signals.Artifacts); summary != "" {
			signals.CheckerAnalysis = summary
		}
	}

	now := time.Now().UTC()
	record := &models.AnalysisRecord{
		ID:          uuid.NewString(),
		ContentHash: hash,
		ContentType: content.Type,
		Signals:     signals,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if s.scorer != nil {
		assessment, err := s.scorer.Score(ctx, content, signals)
		if err != nil {
			log.Warn().Err(err).Msg("risk scoring failed, storing signals only")
		} else {
			record.Assessment = assessment
		}
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, record); err != nil {
			log.Warn().Err(err).Str("content_hash", hash).Msg("failed to persist analysis")
		}
	}
	if s.cache != nil {
		if err := s.cache.CacheAnalysis(ctx, hash, record, analysisCacheTTL); err != nil {
			log.Warn().Err(err).Str("content_hash", hash).Msg("failed to cache analysis")
		}
	}
	if s.dedup != nil {
		s.dedup.MarkSeen(ctx, hash)
	}

	log.Info().Str("content_hash", hash).Msg("analysis completed")
	return record, nil
}

// Hash exposes the canonical content hash, e.g. for lookups
func (s *AnalysisService) Hash(content *models.RawContent) (string, error) {
	return s.hasher.Hash(content)
}

// FindByHash returns a stored analysis, or nil when unknown
func (s *AnalysisService) FindByHash(ctx context.Context, hash string) (*models.AnalysisRecord, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("analysis store not configured")
	}
	return s.repo.FindByHash(ctx, hash)
}

func (s *AnalysisService) findExisting(ctx context.Context, hash string) *models.AnalysisRecord {
	if s.cache != nil {
		var record models.AnalysisRecord
		if err := s.cache.GetCachedAnalysis(ctx, hash, &record); err == nil {
			return &record
		}
	}

	if s.dedup == nil || s.repo == nil {
		return nil
	}
	seen, err := s.dedup.Seen(ctx, hash)
	if err != nil {
		s.logger.Warn().Err(err).Str("content_hash", hash).Msg("dedup lookup failed")
		return nil
	}
	if !seen {
		return nil
	}
	record, err := s.repo.FindByHash(ctx, hash)
	if err != nil {
		s.logger.Warn().Err(err).Str("content_hash", hash).Msg("analysis lookup failed")
		return nil
	}
	return record
}
