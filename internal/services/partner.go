package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sajeel/daily-tracker/internal/models"
	"gorm.io/gorm"
)

// Partner summarises today's record of person's partner.
func (s *TrackerService) Partner(ctx context.Context, person models.Person) (models.PartnerSummary, error) {
	partner := person.Partner()
	today := s.Today()

	summary := models.PartnerSummary{
		Partner:        partner,
		PartnerDisplay: partner.DisplayName(),
		Date:           models.FormatDate(today),
	}

	var t models.Tracker
	err := s.db.WithContext(ctx).Where("person = ? AND date = ?", partner, today).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return summary, nil
	}
	if err != nil {
		return models.PartnerSummary{}, fmt.Errorf("get partner tracker: %w", err)
	}

	salahCount := t.SalahCount()
	habitCount := t.HabitCount()
	summary.HasData = true
	summary.SalahCount = &salahCount
	summary.Quran = &t.QuranRead
	summary.HabitCount = &habitCount
	summary.Mood = &t.Mood
	summary.Exercise = &t.Exercise
	summary.Water = &t.Water
	return summary, nil
}
