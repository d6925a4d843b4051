package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
	"github.com/kimjw-dev/moodlens-backend/internal/utils"
)

// SQLiteService owns the on-disk database used when Firestore is unreachable.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	path := utils.GetEnv("LOCAL_DB_PATH", "data/local_analysis.db", log)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Failed to create local database directory", "error", err)
			return nil, fmt.Errorf("Failed to create local database directory: %w", err)
		}
	}

	log.Info("Opening local SQLite database...", "path", path)
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Error("Failed to open SQLite database", "error", err)
		return nil, fmt.Errorf("Failed to open SQLite database: %w", err)
	}

	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating local tables...")
	if err := s.db.AutoMigrate(&types.LocalAnalysis{}); err != nil {
		s.log.Error("Auto migration failed for local tables", "error", err)
		return err
	}
	s.log.Info("Local tables migrated")
	return nil
}

func (s *SQLiteService) GetDB() *gorm.DB {
	return s.db
}
