package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"scamsignals/internal/domain/models"
	"scamsignals/internal/infrastructure/database"
	"scamsignals/pkg/logger"
)

// AnalysisRepository stores analysis records keyed by content hash
type AnalysisRepository struct {
	db     *database.PostgresDB
	logger *logger.Logger
}

// NewAnalysisRepository creates a new AnalysisRepository
func NewAnalysisRepository(db *database.PostgresDB, log *logger.Logger) *AnalysisRepository {
	return &AnalysisRepository{
		db:     db,
		logger: log.WithComponent("analysis-repository"),
	}
}

// Repositories holds all repositories
type Repositories struct {
	Analyses *AnalysisRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.PostgresDB, log *logger.Logger) *Repositories {
	return &Repositories{
		Analyses: NewAnalysisRepository(db, log),
	}
}

const analysesSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	content_hash TEXT NOT NULL UNIQUE,
	content_type TEXT NOT NULL,
	signals JSONB NOT NULL,
	assessment JSONB,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_content_type ON analyses (content_type);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
`

// EnsureSchema creates the analyses table when missing
func (r *AnalysisRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.Exec(ctx, analysesSchema); err != nil {
		return fmt.Errorf("failed to ensure analyses schema: %w", err)
	}
	return nil
}

// Save upserts an analysis record. Re-analysis of the same content hash
// replaces the stored signals and assessment.
func (r *AnalysisRepository) Save(ctx context.Context, record *models.AnalysisRecord) error {
	signals, err := json.Marshal(record.Signals)
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}

	var assessment []byte
	if record.Assessment != nil {
		assessment, err = json.Marshal(record.Assessment)
		if err != nil {
			return fmt.Errorf("failed to marshal assessment: %w", err)
		}
	}

	query := `
		INSERT INTO analyses (id, content_hash, content_type, signals, assessment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (content_hash) DO UPDATE SET
			content_type = EXCLUDED.content_type,
			signals = EXCLUDED.signals,
			assessment = EXCLUDED.assessment,
			updated_at = EXCLUDED.updated_at
	`
	if err := r.db.Exec(ctx, query,
		record.ID,
		record.ContentHash,
		string(record.ContentType),
		signals,
		assessment,
		record.CreatedAt,
		record.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// FindByHash returns the stored record for a content hash, or nil when
// none exists
func (r *AnalysisRepository) FindByHash(ctx context.Context, hash string) (*models.AnalysisRecord, error) {
	query := `
		SELECT id, content_hash, content_type, signals, assessment, created_at, updated_at
		FROM analyses
		WHERE content_hash = $1
	`
	record, err := r.scanRecord(r.db.QueryRow(ctx, query, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return record, nil
}

// ListRecent returns the most recent analyses, newest first
func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]*models.AnalysisRecord, error) {
	query := `
		SELECT id, content_hash, content_type, signals, assessment, created_at, updated_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []*models.AnalysisRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// KnownHashes returns every stored content hash, for dedup seeding
func (r *AnalysisRepository) KnownHashes(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT content_hash FROM analyses`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hashes: %w", err)
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, rows.Err()
}

// Count returns the number of stored analyses
func (r *AnalysisRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count)
	return count, err
}

func (r *AnalysisRepository) scanRecord(row pgx.Row) (*models.AnalysisRecord, error) {
	var (
		record      models.AnalysisRecord
		contentType string
		signals     []byte
		assessment  []byte
	)
	if err := row.Scan(
		&record.ID,
		&record.ContentHash,
		&contentType,
		&signals,
		&assessment,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}

	record.ContentType = models.ContentType(contentType)
	if err := json.Unmarshal(signals, &record.Signals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signals: %w", err)
	}
	if len(assessment) > 0 {
		if err := json.Unmarshal(assessment, &record.Assessment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
		}
	}
	return &record, nil
}
