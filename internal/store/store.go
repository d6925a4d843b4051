package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// Document version written with every analysis.
const DocVersion = "1.0"

// Markers recorded in data_source so a reader can tell which backend
// accepted the write.
const (
	SourceFirestore = "emotion_analysis_system"
	SourceLocal     = "local_storage"
)

// AnalysisStore persists finished analyses and serves newest-first history.
type AnalysisStore interface {
	Save(ctx context.Context, userID string, record *types.AnalysisRecord) (string, error)
	History(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error)
}

// NewAnalysisID builds a document ID that stays unique even when two runs
// land in the same second.
func NewAnalysisID(now time.Time) string {
	return fmt.Sprintf("analysis_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}
