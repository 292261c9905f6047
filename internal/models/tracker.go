package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultMood      = 3
	MaxGoalTextLen   = 500
	MaxQuranSurahLen = 200
)

// Tracker is one person's record for one calendar day.
type Tracker struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Person Person    `json:"person" gorm:"type:varchar(50);not null;uniqueIndex:uidx_tracker_person_date"`
	Date   time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uidx_tracker_person_date"`

	Fajr     bool `json:"fajr" gorm:"not null"`
	Dhuhr    bool `json:"dhuhr" gorm:"not null"`
	Asr      bool `json:"asr" gorm:"not null"`
	Maghrib  bool `json:"maghrib" gorm:"not null"`
	Isha     bool `json:"isha" gorm:"not null"`
	Tahajjud bool `json:"tahajjud" gorm:"not null"`

	QuranRead  bool   `json:"quranRead" gorm:"not null"`
	QuranPages int    `json:"quranPages" gorm:"not null"`
	QuranSurah string `json:"quranSurah" gorm:"type:varchar(200);not null"`

	Exercise      bool    `json:"exercise" gorm:"not null"`
	NoJunkFood    bool    `json:"noJunkFood" gorm:"not null"`
	WakeEarly     bool    `json:"wakeEarly" gorm:"not null"`
	DuaAfterSalah bool    `json:"duaAfterSalah" gorm:"not null"`
	Dhikr         bool    `json:"dhikr" gorm:"not null"`
	Sadaqah       bool    `json:"sadaqah" gorm:"not null"`
	Water         int     `json:"water" gorm:"not null"`
	SleepHours    float64 `json:"sleepHours" gorm:"not null"`

	// No column default: gorm skips zero values on insert when one is set,
	// which would turn an explicit mood of 0 into 3.
	Mood  int    `json:"mood" gorm:"not null"`
	Notes string `json:"notes" gorm:"type:text;not null"`

	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Goals     []TrackerGoal `json:"goals,omitempty" gorm:"foreignKey:TrackerID;constraint:OnDelete:CASCADE"`
}

func (Tracker) TableName() string {
	return "daily_trackers"
}

func (t *Tracker) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// SalahCount counts the five obligatory prayers; tahajjud is not included.
func (t *Tracker) SalahCount() int {
	return countTrue(t.Fajr, t.Dhuhr, t.Asr, t.Maghrib, t.Isha)
}

func (t *Tracker) AllSalah() bool {
	return t.SalahCount() == 5
}

func (t *Tracker) HabitCount() int {
	return countTrue(t.Exercise, t.NoJunkFood, t.WakeEarly, t.DuaAfterSalah, t.Dhikr, t.Sadaqah)
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// TrackerGoal is one entry in a tracker's goal list. Goals are replaced
// wholesale on every save, so their IDs change across saves.
type TrackerGoal struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TrackerID uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	Text      string    `json:"text" gorm:"type:varchar(500);not null"`
	Done      bool      `json:"done" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:position;not null"`
}

func (TrackerGoal) TableName() string {
	return "tracker_goals"
}

func (g *TrackerGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Tracker DTOs

type SalahPayload struct {
	Fajr     bool `json:"fajr"`
	Dhuhr    bool `json:"dhuhr"`
	Asr      bool `json:"asr"`
	Maghrib  bool `json:"maghrib"`
	Isha     bool `json:"isha"`
	Tahajjud bool `json:"tahajjud"`
}

type QuranPayload struct {
	Read  bool   `json:"read"`
	Pages int    `json:"pages"`
	Surah string `json:"surah"`
}

type HabitsPayload struct {
	Exercise      bool    `json:"exercise"`
	NoJunkFood    bool    `json:"no_junk_food"`
	WakeEarly     bool    `json:"wake_early"`
	DuaAfterSalah bool    `json:"dua_after_salah"`
	Dhikr         bool    `json:"dhikr"`
	Sadaqah       bool    `json:"sadaqah"`
	Water         int     `json:"water"`
	SleepHours    float64 `json:"sleep_hours"`
}

type GoalPayload struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

var ErrNullGoal = errors.New("goal must be an object, not null")

// UnmarshalJSON rejects null list entries instead of saving them as empty
// goals.
func (g *GoalPayload) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrNullGoal
	}
	type plain GoalPayload
	return json.Unmarshal(data, (*plain)(g))
}

// SaveTrackerRequest is the body of a tracker save. Every field is optional;
// absent fields take their defaults and overwrite whatever was stored.
type SaveTrackerRequest struct {
	Salah  SalahPayload  `json:"salah"`
	Quran  QuranPayload  `json:"quran"`
	Habits HabitsPayload `json:"habits"`
	Goals  []GoalPayload `json:"goals"`
	Mood   *int          `json:"mood"`
	Notes  string        `json:"notes"`
}

// Tracker builds the scalar part of the record described by the request.
func (r *SaveTrackerRequest) Tracker(person Person, date time.Time) Tracker {
	mood := DefaultMood
	if r.Mood != nil {
		mood = *r.Mood
	}
	return Tracker{
		Person:        person,
		Date:          date,
		Fajr:          r.Salah.Fajr,
		Dhuhr:         r.Salah.Dhuhr,
		Asr:           r.Salah.Asr,
		Maghrib:       r.Salah.Maghrib,
		Isha:          r.Salah.Isha,
		Tahajjud:      r.Salah.Tahajjud,
		QuranRead:     r.Quran.Read,
		QuranPages:    r.Quran.Pages,
		QuranSurah:    r.Quran.Surah,
		Exercise:      r.Habits.Exercise,
		NoJunkFood:    r.Habits.NoJunkFood,
		WakeEarly:     r.Habits.WakeEarly,
		DuaAfterSalah: r.Habits.DuaAfterSalah,
		Dhikr:         r.Habits.Dhikr,
		Sadaqah:       r.Habits.Sadaqah,
		Water:         r.Habits.Water,
		SleepHours:    r.Habits.SleepHours,
		Mood:          mood,
		Notes:         r.Notes,
	}
}

// TrackerResponse is the wire shape of a day's record. ID is nil when no
// record exists yet.
type TrackerResponse struct {
	ID     *uuid.UUID    `json:"id,omitempty"`
	Person Person        `json:"person"`
	Date   string        `json:"date"`
	Salah  SalahPayload  `json:"salah"`
	Quran  QuranPayload  `json:"quran"`
	Habits HabitsPayload `json:"habits"`
	Goals  []TrackerGoal `json:"goals"`
	Mood   int           `json:"mood"`
	Notes  string        `json:"notes"`
}

// EmptyTrackerResponse is returned for a day with no record.
func EmptyTrackerResponse(person Person, date time.Time) TrackerResponse {
	return TrackerResponse{
		Person: person,
		Date:   FormatDate(date),
		Goals:  []TrackerGoal{},
		Mood:   DefaultMood,
	}
}

func (t *Tracker) Response() TrackerResponse {
	id := t.ID
	goals := t.Goals
	if goals == nil {
		goals = []TrackerGoal{}
	}
	return TrackerResponse{
		ID:     &id,
		Person: t.Person,
		Date:   FormatDate(t.Date),
		Salah: SalahPayload{
			Fajr:     t.Fajr,
			Dhuhr:    t.Dhuhr,
			Asr:      t.Asr,
			Maghrib:  t.Maghrib,
			Isha:     t.Isha,
			Tahajjud: t.Tahajjud,
		},
		Quran: QuranPayload{
			Read:  t.QuranRead,
			Pages: t.QuranPages,
			Surah: t.QuranSurah,
		},
		Habits: HabitsPayload{
			Exercise:      t.Exercise,
			NoJunkFood:    t.NoJunkFood,
			WakeEarly:     t.WakeEarly,
			DuaAfterSalah: t.DuaAfterSalah,
			Dhikr:         t.Dhikr,
			Sadaqah:       t.Sadaqah,
			Water:         t.Water,
			SleepHours:    t.SleepHours,
		},
		Goals: goals,
		Mood:  t.Mood,
		Notes: t.Notes,
	}
}

type SaveResult struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}
