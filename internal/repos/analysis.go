package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

type LocalAnalysisRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.LocalAnalysis) ([]*types.LocalAnalysis, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*types.LocalAnalysis, error)
	GetByAnalysisIDs(ctx context.Context, tx *gorm.DB, analysisIDs []string) ([]*types.LocalAnalysis, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error
}

type localAnalysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocalAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) LocalAnalysisRepo {
	repoLog := baseLog.With("repo", "LocalAnalysisRepo")
	return &localAnalysisRepo{db: db, log: repoLog}
}

func (lar *localAnalysisRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.LocalAnalysis) ([]*types.LocalAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = lar.db
	}

	if len(rows) == 0 {
		return []*types.LocalAnalysis{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (lar *localAnalysisRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*types.LocalAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = lar.db
	}

	var results []*types.LocalAnalysis

	query := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (lar *localAnalysisRepo) GetByAnalysisIDs(ctx context.Context, tx *gorm.DB, analysisIDs []string) ([]*types.LocalAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = lar.db
	}

	var results []*types.LocalAnalysis

	if len(analysisIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("analysis_id IN ?", analysisIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (lar *localAnalysisRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error {
	transaction := tx
	if transaction == nil {
		transaction = lar.db
	}

	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.LocalAnalysis{}).Error
}
