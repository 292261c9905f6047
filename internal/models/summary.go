package models

type StreakSummary struct {
	SalahStreak      int   `json:"salahStreak"`
	QuranStreak      int   `json:"quranStreak"`
	ExerciseStreak   int   `json:"exerciseStreak"`
	TotalDaysTracked int64 `json:"totalDaysTracked"`
}

// WeeklyDay is one day of the 7-day overview. A day without a record has
// every count at zero, including mood.
type WeeklyDay struct {
	Date       string `json:"date"`
	Day        string `json:"day"`
	SalahCount int    `json:"salahCount"`
	HabitCount int    `json:"habitCount"`
	Quran      bool   `json:"quran"`
	Mood       int    `json:"mood"`
}

// PartnerSummary describes the partner's day. When HasData is false only
// the first four fields are set.
type PartnerSummary struct {
	Partner        Person `json:"partner"`
	PartnerDisplay string `json:"partner_display"`
	Date           string `json:"date"`
	HasData        bool   `json:"has_data"`
	SalahCount     *int   `json:"salahCount,omitempty"`
	Quran          *bool  `json:"quran,omitempty"`
	HabitCount     *int   `json:"habitCount,omitempty"`
	Mood           *int   `json:"mood,omitempty"`
	Exercise       *bool  `json:"exercise,omitempty"`
	Water          *int   `json:"water,omitempty"`
}
