package models

import "time"

// RiskAssessment is the verdict attached to an analysis by a scorer.
// Producing one is outside the extraction engine; the fields mirror what
// downstream consumers expect.
type RiskAssessment struct {
	RiskLevel         string `json:"risk_level"`
	Analysis          string `json:"analysis"`
	RecommendedAction string `json:"recommended_action"`
}

// AnalysisRecord is a stored analysis keyed by content hash
type AnalysisRecord struct {
	ID          string           `json:"id"`
	ContentHash string           `json:"content_hash"`
	ContentType ContentType      `json:"content_type"`
	Signals     *SignalsDocument `json:"signals"`
	Assessment  *RiskAssessment  `json:"assessment,omitempty"`
	Cached      bool             `json:"cached"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
