package sqlite

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dsmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ dsmeta.ExtractionHistory = (*HistoryService)(nil)

// HistoryService implements dsmeta.ExtractionHistory using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// hashResult computes xxHash of a serialized result and returns hex string.
func hashResult(result string) string {
	h := xxhash.Sum64String(result)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateExtraction records an extraction run. The ID, result hash, and
// creation time are assigned here.
func (s *HistoryService) CreateExtraction(ctx context.Context, extraction *dsmeta.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	extraction.ID = uuid.New().String()
	extraction.CreatedAt = time.Now().UTC()
	extraction.ResultHash = hashResult(extraction.Result)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, url, mode, quality_score, result, result_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.URL, extraction.Mode, extraction.QualityScore,
		extraction.Result, extraction.ResultHash, extraction.CreatedAt.Format(time.RFC3339))

	return err
}

// RecentExtractions returns up to limit runs, most recent first.
func (s *HistoryService) RecentExtractions(ctx context.Context, limit int) ([]*dsmeta.Extraction, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, mode, quality_score, result, result_hash, created_at
		FROM extractions
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*dsmeta.Extraction
	for rows.Next() {
		var e dsmeta.Extraction
		var createdAt string
		if err := rows.Scan(&e.ID, &e.URL, &e.Mode, &e.QualityScore, &e.Result, &e.ResultHash, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		extractions = append(extractions, &e)
	}
	return extractions, rows.Err()
}
