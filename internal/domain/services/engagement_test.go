package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
)

func TestEngagementEvaluator_Evaluate(t *testing.T) {
	e := NewEngagementEvaluator(config.DefaultExtraction(), testLogger())

	tests := []struct {
		name      string
		metrics   *models.EngagementMetrics
		followers int
		ratio     float64
		low       bool
		high      bool
	}{
		{
			name:      "normal engagement",
			metrics:   &models.EngagementMetrics{Likes: 50, Comments: 10, Shares: 5, Views: 9000},
			followers: 1000,
			ratio:     0.065,
		},
		{
			name:      "low engagement",
			metrics:   &models.EngagementMetrics{Likes: 2},
			followers: 10000,
			ratio:     0.0002,
			low:       true,
		},
		{
			name:      "suspiciously high engagement",
			metrics:   &models.EngagementMetrics{Likes: 400, Comments: 100},
			followers: 1000,
			ratio:     0.5,
			high:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := e.Evaluate(tt.metrics, tt.followers)
			require.NotNil(t, signals)

			assert.InDelta(t, tt.ratio, signals.EngagementToFollowerRatio, 1e-9)
			assert.Equal(t, tt.low, signals.LowEngagementRate)
			assert.Equal(t, tt.high, signals.HighEngagementRate)
		})
	}
}

func TestEngagementEvaluator_OmittedWithoutBasis(t *testing.T) {
	e := NewEngagementEvaluator(config.DefaultExtraction(), testLogger())

	assert.Nil(t, e.Evaluate(nil, 1000))
	assert.Nil(t, e.Evaluate(&models.EngagementMetrics{Likes: 5}, 0))
	assert.Nil(t, e.Evaluate(&models.EngagementMetrics{Likes: 5}, -1))
}
