package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LocalAnalysis is the SQLite fallback row for one persisted AnalysisRecord.
// The full document is kept as JSON so history reads return the same shape
// the remote store would; the scalar columns exist for ordering and lookups.
type LocalAnalysis struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string         `gorm:"not null;index:idx_local_analysis_user" json:"user_id"`
	AnalysisID   string         `gorm:"not null;uniqueIndex" json:"analysis_id"`
	AnalysisDate string         `gorm:"not null" json:"analysis_date"`
	EmotionScore float64        `gorm:"not null" json:"emotion_score"`
	StressLevel  string         `gorm:"not null" json:"stress_level"`
	Document     datatypes.JSON `gorm:"not null" json:"document"`
	CreatedAt    time.Time      `gorm:"not null;index" json:"created_at"`
}

func (LocalAnalysis) TableName() string { return "local_analysis" }
