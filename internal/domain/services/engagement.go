package services

import (
	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
	"scamsignals/pkg/logger"
)

// EngagementEvaluator derives engagement signals from raw interaction
// counts relative to audience size
type EngagementEvaluator struct {
	logger        *logger.Logger
	lowThreshold  float64
	highThreshold float64
}

// NewEngagementEvaluator creates an evaluator with the configured rate
// thresholds
func NewEngagementEvaluator(cfg config.ExtractionConfig, log *logger.Logger) *EngagementEvaluator {
	return &EngagementEvaluator{
		logger:        log.WithComponent("engagement"),
		lowThreshold:  cfg.LowEngagementRate,
		highThreshold: cfg.HighEngagementRate,
	}
}

// Evaluate computes the engagement-to-follower ratio and its rate flags.
// Views count as reach, not engagement, and are excluded from the total.
// Without metrics or a positive follower count no meaningful rate exists,
// so the whole block is omitted rather than zeroed.
func (e *EngagementEvaluator) Evaluate(metrics *models.EngagementMetrics, followers int) *models.EngagementSignals {
	if metrics == nil || followers <= 0 {
		return nil
	}

	total := metrics.Likes + metrics.Comments + metrics.Shares
	ratio := float64(total) / float64(followers)

	return &models.EngagementSignals{
		EngagementToFollowerRatio: ratio,
		LowEngagementRate:         ratio < e.lowThreshold,
		HighEngagementRate:        ratio > e.highThreshold,
	}
}
