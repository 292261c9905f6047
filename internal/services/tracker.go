package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sajeel/daily-tracker/internal/logger"
	"github.com/sajeel/daily-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidPayload = errors.New("invalid tracker payload")

// TrackerService reads, saves and aggregates daily tracker records.
type TrackerService struct {
	db  *gorm.DB
	now func() time.Time
	loc *time.Location
}

// Global tracker service instance
var Trackers *TrackerService

// InitTrackers sets up the global service on db, computing "today" in loc.
func InitTrackers(db *gorm.DB, loc *time.Location) {
	Trackers = NewTrackerService(db, time.Now, loc)
}

func NewTrackerService(db *gorm.DB, now func() time.Time, loc *time.Location) *TrackerService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &TrackerService{db: db, now: now, loc: loc}
}

// Today is the current calendar date in the service's timezone.
func (s *TrackerService) Today() time.Time {
	return models.Today(s.now(), s.loc)
}

// Columns overwritten when a save hits an existing (person, date) row;
// created_at keeps its original value.
var replacedColumns = []string{
	"fajr", "dhuhr", "asr", "maghrib", "isha", "tahajjud",
	"quran_read", "quran_pages", "quran_surah",
	"exercise", "no_junk_food", "wake_early", "dua_after_salah", "dhikr", "sadaqah",
	"water", "sleep_hours", "mood", "notes", "updated_at",
}

// Get returns the record for person on date, or the empty default shape when
// nothing has been saved for that day.
func (s *TrackerService) Get(ctx context.Context, person models.Person, date time.Time) (models.TrackerResponse, error) {
	var tracker models.Tracker
	err := s.db.WithContext(ctx).
		Where("person = ? AND date = ?", person, date).
		Preload("Goals", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&tracker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EmptyTrackerResponse(person, date), nil
	}
	if err != nil {
		return models.TrackerResponse{}, fmt.Errorf("get tracker: %w", err)
	}
	return tracker.Response(), nil
}

// Save replaces every field of the (person, date) record with req, creating
// the record if needed, and replaces its goal list. Either all of it is
// applied or none of it.
func (s *TrackerService) Save(ctx context.Context, person models.Person, date time.Time, req *models.SaveTrackerRequest) (uuid.UUID, error) {
	if err := validateSave(req); err != nil {
		return uuid.Nil, err
	}

	record := req.Tracker(person, date)
	var id uuid.UUID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(replacedColumns),
		}).Create(&record).Error; err != nil {
			return fmt.Errorf("upsert tracker: %w", err)
		}

		// On conflict the row keeps its original id.
		var stored models.Tracker
		if err := tx.Select("id").
			Where("person = ? AND date = ?", person, date).
			First(&stored).Error; err != nil {
			return fmt.Errorf("reload tracker: %w", err)
		}

		if err := tx.Where("tracker_id = ?", stored.ID).Delete(&models.TrackerGoal{}).Error; err != nil {
			return fmt.Errorf("clear goals: %w", err)
		}

		if len(req.Goals) > 0 {
			goals := make([]models.TrackerGoal, len(req.Goals))
			for i, g := range req.Goals {
				goals[i] = models.TrackerGoal{
					TrackerID: stored.ID,
					Text:      g.Text,
					Done:      g.Done,
					Order:     i,
				}
			}
			if err := tx.Create(&goals).Error; err != nil {
				return fmt.Errorf("create goals: %w", err)
			}
		}

		id = stored.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	logger.Debug("tracker saved", "person", person, "date", models.FormatDate(date), "goals", len(req.Goals))
	return id, nil
}

// Delete removes the (person, date) record and its goals. It reports whether
// a record existed.
func (s *TrackerService) Delete(ctx context.Context, person models.Person, date time.Time) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tracker models.Tracker
		err := tx.Select("id").Where("person = ? AND date = ?", person, date).First(&tracker).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find tracker: %w", err)
		}

		if err := tx.Where("tracker_id = ?", tracker.ID).Delete(&models.TrackerGoal{}).Error; err != nil {
			return fmt.Errorf("delete goals: %w", err)
		}
		if err := tx.Delete(&tracker).Error; err != nil {
			return fmt.Errorf("delete tracker: %w", err)
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func validateSave(req *models.SaveTrackerRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidPayload)
	}
	if req.Quran.Pages < 0 {
		return fmt.Errorf("%w: quran pages must not be negative", ErrInvalidPayload)
	}
	if utf8.RuneCountInString(req.Quran.Surah) > models.MaxQuranSurahLen {
		return fmt.Errorf("%w: surah must be at most %d characters", ErrInvalidPayload, models.MaxQuranSurahLen)
	}
	if req.Habits.Water < 0 {
		return fmt.Errorf("%w: water must not be negative", ErrInvalidPayload)
	}
	if req.Habits.SleepHours < 0 {
		return fmt.Errorf("%w: sleep hours must not be negative", ErrInvalidPayload)
	}
	for i, g := range req.Goals {
		if utf8.RuneCountInString(g.Text) > models.MaxGoalTextLen {
			return fmt.Errorf("%w: goal %d is longer than %d characters", ErrInvalidPayload, i, models.MaxGoalTextLen)
		}
	}
	return nil
}
