package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sajeel/daily-tracker/internal/models"
)

// Streaks counts, for each of salah, quran and exercise, the consecutive days
// ending today on which it was done. A day with no record breaks a streak
// the same way a day with the flag unset does.
func (s *TrackerService) Streaks(ctx context.Context, person models.Person) (models.StreakSummary, error) {
	today := s.Today()
	db := s.db.WithContext(ctx)

	var trackers []models.Tracker
	if err := db.Where("person = ? AND date <= ?", person, today).
		Order("date DESC").
		Find(&trackers).Error; err != nil {
		return models.StreakSummary{}, fmt.Errorf("list trackers: %w", err)
	}

	var total int64
	if err := db.Model(&models.Tracker{}).Where("person = ?", person).Count(&total).Error; err != nil {
		return models.StreakSummary{}, fmt.Errorf("count trackers: %w", err)
	}

	return models.StreakSummary{
		SalahStreak:      streak(trackers, today, (*models.Tracker).AllSalah),
		QuranStreak:      streak(trackers, today, func(t *models.Tracker) bool { return t.QuranRead }),
		ExerciseStreak:   streak(trackers, today, func(t *models.Tracker) bool { return t.Exercise }),
		TotalDaysTracked: total,
	}, nil
}

// streak walks trackers, newest first, from today backwards one day at a time.
func streak(trackers []models.Tracker, today time.Time, done func(*models.Tracker) bool) int {
	count := 0
	expected := today
	for i := range trackers {
		t := &trackers[i]
		if t.Date.After(expected) {
			continue
		}
		if t.Date.Before(expected) || !done(t) {
			break
		}
		count++
		expected = expected.AddDate(0, 0, -1)
	}
	return count
}

// Weekly returns one entry per day from six days ago through today, oldest
// first.
func (s *TrackerService) Weekly(ctx context.Context, person models.Person) ([]models.WeeklyDay, error) {
	today := s.Today()
	start := today.AddDate(0, 0, -6)

	var trackers []models.Tracker
	if err := s.db.WithContext(ctx).
		Where("person = ? AND date >= ? AND date <= ?", person, start, today).
		Find(&trackers).Error; err != nil {
		return nil, fmt.Errorf("list week: %w", err)
	}

	byDate := make(map[string]*models.Tracker, len(trackers))
	for i := range trackers {
		byDate[models.FormatDate(trackers[i].Date)] = &trackers[i]
	}

	week := make([]models.WeeklyDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		day := models.WeeklyDay{
			Date: models.FormatDate(d),
			Day:  models.ShortWeekday(d),
		}
		if t, ok := byDate[day.Date]; ok {
			day.SalahCount = t.SalahCount()
			day.HabitCount = t.HabitCount()
			day.Quran = t.QuranRead
			day.Mood = t.Mood
		}
		week = append(week, day)
	}
	return week, nil
}
