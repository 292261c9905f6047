package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sajeel/daily-tracker/internal/database"
	"github.com/sajeel/daily-tracker/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow is a Tuesday afternoon.
var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func setupTestService(t *testing.T) (*TrackerService, *gorm.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "tracker.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewTrackerService(db, func() time.Time { return fixedNow }, time.UTC), db
}

// day returns the date offset days from fixedNow's date.
func day(offset int) time.Time {
	return models.Today(fixedNow, time.UTC).AddDate(0, 0, offset)
}

func intPtr(n int) *int { return &n }

func fullDay() *models.SaveTrackerRequest {
	return &models.SaveTrackerRequest{
		Salah:  models.SalahPayload{Fajr: true, Dhuhr: true, Asr: true, Maghrib: true, Isha: true},
		Quran:  models.QuranPayload{Read: true, Pages: 4, Surah: "Al-Kahf"},
		Habits: models.HabitsPayload{Exercise: true, Dhikr: true, Water: 8, SleepHours: 7.5},
		Mood:   intPtr(4),
		Notes:  "good day",
	}
}
