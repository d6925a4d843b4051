package store

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

type fakeLocalRepo struct {
	rows []*types.LocalAnalysis
}

func (f *fakeLocalRepo) Create(_ context.Context, _ *gorm.DB, rows []*types.LocalAnalysis) ([]*types.LocalAnalysis, error) {
	f.rows = append(f.rows, rows...)
	return rows, nil
}

func (f *fakeLocalRepo) GetByUserID(_ context.Context, _ *gorm.DB, userID string, limit int) ([]*types.LocalAnalysis, error) {
	var out []*types.LocalAnalysis
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLocalRepo) GetByAnalysisIDs(_ context.Context, _ *gorm.DB, _ []string) ([]*types.LocalAnalysis, error) {
	return nil, nil
}

func (f *fakeLocalRepo) DeleteByUserID(_ context.Context, _ *gorm.DB, _ string) error {
	return nil
}

func TestLocalStoreRoundTrip(t *testing.T) {
	repo := &fakeLocalRepo{}
	ls := NewLocalStore(repo, testLogger(t))
	ls.now = func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) }

	record := &types.AnalysisRecord{
		AnalysisDate:     "2026-08-31 09:00:00",
		OverallEmotion:   types.OverallEmotion{EmotionScore: 0.42, EmotionState: "긍정적", MoodEmoji: "🙂"},
		CalendarAnalysis: types.CalendarAnalysis{StressLevel: types.StressMedium, FatigueIndex: 1.2},
	}

	id, err := ls.Save(context.Background(), "u1", record)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" || record.AnalysisID != id {
		t.Fatalf("analysis id: got=%s record=%s", id, record.AnalysisID)
	}
	if record.DataSource != SourceLocal || record.Version != DocVersion {
		t.Fatalf("record metadata: source=%s version=%s", record.DataSource, record.Version)
	}

	row := repo.rows[0]
	if row.EmotionScore != 0.42 || row.StressLevel != types.StressMedium || row.AnalysisDate != "2026-08-31 09:00:00" {
		t.Fatalf("scalar columns: %+v", row)
	}

	records, err := ls.History(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("history count: want=1 got=%d", len(records))
	}
	got := records[0]
	if got.OverallEmotion.EmotionState != "긍정적" || got.CalendarAnalysis.FatigueIndex != 1.2 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.DataSource != SourceLocal {
		t.Fatalf("data source: got=%s", got.DataSource)
	}
}

func TestLocalStoreKeepsExistingAnalysisID(t *testing.T) {
	repo := &fakeLocalRepo{}
	ls := NewLocalStore(repo, testLogger(t))

	record := &types.AnalysisRecord{AnalysisID: "analysis_20260831_090000_deadbeef"}
	id, err := ls.Save(context.Background(), "u1", record)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id != "analysis_20260831_090000_deadbeef" {
		t.Fatalf("existing id must be kept: got=%s", id)
	}
}
