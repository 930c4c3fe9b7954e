package services

import (
	"testing"
	"time"

	"github.com/calotrack/backend/internal/calc"
	"github.com/calotrack/backend/internal/config"
	"github.com/calotrack/backend/internal/dto"
	"github.com/calotrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory sqlite database per test, migrated with the
// full schema. MaxOpenConns(1) keeps gorm's pool on the single connection the
// in-memory database lives on. TranslateError is on, same as production, so
// unique violations surface as gorm.ErrDuplicatedKey here too.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.DailyLog{},
		&models.FoodEntry{},
		&models.ExerciseEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

// seedProfile registers a default male maintain-goal profile for a fresh
// user id and returns both.
func seedProfile(t *testing.T, db *gorm.DB) (uuid.UUID, *models.Profile) {
	t.Helper()

	userID := uuid.New()
	svc := NewProfileService(db)
	profile, err := svc.Create(userID, &dto.CreateProfileRequest{
		Height:        175,
		Weight:        75,
		Age:           30,
		Gender:        calc.GenderMale,
		ActivityLevel: calc.ActivityModerate,
		Goal:          calc.GoalMaintain,
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return userID, profile
}
