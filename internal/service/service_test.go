package service

import (
	"path/filepath"
	"testing"
	"timesheets/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
		&model.Client{}, &model.AppUser{}, &model.EpicArea{}, &model.Epic{},
		&model.Rate{}, &model.Forecast{}, &model.TimeLog{}, &model.Calendar{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
