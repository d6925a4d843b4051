package store

import (
	"context"

	"google.golang.org/grpc/status"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// FallbackStore tries the remote store first and degrades to the local one
// when the remote is absent or failing. The two stores are never reconciled.
type FallbackStore struct {
	primary  AnalysisStore
	fallback AnalysisStore
	log      *logger.Logger
}

func NewFallbackStore(primary, fallback AnalysisStore, log *logger.Logger) *FallbackStore {
	storeLog := log.With("service", "FallbackStore")
	return &FallbackStore{primary: primary, fallback: fallback, log: storeLog}
}

func (f *FallbackStore) Save(ctx context.Context, userID string, record *types.AnalysisRecord) (string, error) {
	if f.primary != nil {
		analysisID, err := f.primary.Save(ctx, userID, record)
		if err == nil {
			return analysisID, nil
		}
		f.logDegrade("save", err)
	}
	return f.fallback.Save(ctx, userID, record)
}

func (f *FallbackStore) History(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	if f.primary != nil {
		records, err := f.primary.History(ctx, userID, limit)
		if err == nil {
			return records, nil
		}
		f.logDegrade("history", err)
	}
	return f.fallback.History(ctx, userID, limit)
}

func (f *FallbackStore) logDegrade(op string, err error) {
	if st, ok := status.FromError(err); ok {
		f.log.Warn("Remote store failed, using local storage", "op", op, "grpc_code", st.Code().String(), "error", err)
		return
	}
	f.log.Warn("Remote store failed, using local storage", "op", op, "error", err)
}
