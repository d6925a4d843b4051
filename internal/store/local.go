package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/errs"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/repos"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// LocalStore mirrors the remote store onto the SQLite fallback database.
type LocalStore struct {
	repo repos.LocalAnalysisRepo
	log  *logger.Logger
	now  func() time.Time
}

func NewLocalStore(repo repos.LocalAnalysisRepo, log *logger.Logger) *LocalStore {
	storeLog := log.With("service", "LocalStore")
	return &LocalStore{repo: repo, log: storeLog, now: time.Now}
}

func (ls *LocalStore) Save(ctx context.Context, userID string, record *types.AnalysisRecord) (string, error) {
	if record.AnalysisID == "" {
		record.AnalysisID = NewAnalysisID(ls.now())
	}
	record.UserID = userID
	record.DataSource = SourceLocal
	record.Version = DocVersion
	if record.Timestamp.IsZero() {
		record.Timestamp = ls.now()
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return "", errs.Storage("failed to encode analysis for local storage", err)
	}

	row := &types.LocalAnalysis{
		ID:           uuid.New(),
		UserID:       userID,
		AnalysisID:   record.AnalysisID,
		AnalysisDate: record.AnalysisDate,
		EmotionScore: record.OverallEmotion.EmotionScore,
		StressLevel:  record.CalendarAnalysis.StressLevel,
		Document:     datatypes.JSON(raw),
		CreatedAt:    ls.now(),
	}
	if _, err := ls.repo.Create(ctx, nil, []*types.LocalAnalysis{row}); err != nil {
		return "", errs.Storage("failed to save analysis locally", err)
	}

	ls.log.Info("Analysis saved to local storage", "user_id", userID, "analysis_id", record.AnalysisID)
	return record.AnalysisID, nil
}

func (ls *LocalStore) History(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	rows, err := ls.repo.GetByUserID(ctx, nil, userID, limit)
	if err != nil {
		return nil, errs.Storage("failed to read local analysis history", err)
	}

	var records []types.AnalysisRecord
	for _, row := range rows {
		var record types.AnalysisRecord
		if err := json.Unmarshal(row.Document, &record); err != nil {
			ls.log.Warn("Skipping malformed local analysis row", "analysis_id", row.AnalysisID, "error", err)
			continue
		}
		records = append(records, record)
	}

	ls.log.Debug("History loaded from local storage", "user_id", userID, "count", len(records))
	return records, nil
}
