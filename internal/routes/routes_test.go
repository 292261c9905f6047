package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sajeel/daily-tracker/internal/database"
	"github.com/sajeel/daily-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func setupTestApp(t *testing.T, staticDir string) *fiber.App {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "tracker.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	prev := services.Trackers
	services.Trackers = services.NewTrackerService(db, func() time.Time { return fixedNow }, time.UTC)
	t.Cleanup(func() { services.Trackers = prev })

	return NewApp(staticDir)
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestGetTrackerDefault(t *testing.T) {
	app := setupTestApp(t, "")

	status, body := do(t, app, http.MethodGet, "/api/tracker/sajeel/2026-03-10/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{
		"person": "sajeel",
		"date": "2026-03-10",
		"salah": {"fajr": false, "dhuhr": false, "asr": false, "maghrib": false, "isha": false, "tahajjud": false},
		"quran": {"read": false, "pages": 0, "surah": ""},
		"habits": {"exercise": false, "no_junk_food": false, "wake_early": false, "dua_after_salah": false,
		           "dhikr": false, "sadaqah": false, "water": 0, "sleep_hours": 0},
		"goals": [],
		"mood": 3,
		"notes": ""
	}`, body)
}

func TestSaveAndReadBack(t *testing.T) {
	app := setupTestApp(t, "")

	payload := `{
		"salah": {"fajr": true, "dhuhr": true, "asr": true, "maghrib": true, "isha": true, "tahajjud": false},
		"quran": {"read": true, "pages": 5, "surah": "Al-Mulk"},
		"habits": {"exercise": true, "water": 7, "sleep_hours": 8},
		"goals": [{"text": "A", "done": false}, {"text": "B", "done": true}],
		"mood": 5,
		"notes": "alhamdulillah"
	}`
	status, body := do(t, app, http.MethodPost, "/api/tracker/mahrukh/2026-03-10/", payload)
	require.Equal(t, http.StatusOK, status, body)

	var saved struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &saved))
	assert.True(t, saved.Success)
	assert.NotEmpty(t, saved.ID)

	status, body = do(t, app, http.MethodGet, "/api/tracker/mahrukh/2026-03-10/", "")
	require.Equal(t, http.StatusOK, status)

	var got struct {
		ID    string `json:"id"`
		Quran struct {
			Read  bool   `json:"read"`
			Pages int    `json:"pages"`
			Surah string `json:"surah"`
		} `json:"quran"`
		Habits map[string]any `json:"habits"`
		Goals  []struct {
			ID    string `json:"id"`
			Text  string `json:"text"`
			Done  bool   `json:"done"`
			Order int    `json:"order"`
		} `json:"goals"`
		Mood  int    `json:"mood"`
		Notes string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, saved.ID, got.ID)
	assert.True(t, got.Quran.Read)
	assert.Equal(t, 5, got.Quran.Pages)
	assert.Equal(t, "Al-Mulk", got.Quran.Surah)
	assert.Equal(t, true, got.Habits["exercise"])
	assert.Equal(t, float64(7), got.Habits["water"])
	assert.Equal(t, 5, got.Mood)
	assert.Equal(t, "alhamdulillah", got.Notes)
	require.Len(t, got.Goals, 2)
	assert.Equal(t, "A", got.Goals[0].Text)
	assert.False(t, got.Goals[0].Done)
	assert.Equal(t, 0, got.Goals[0].Order)
	assert.Equal(t, "B", got.Goals[1].Text)
	assert.True(t, got.Goals[1].Done)
	assert.Equal(t, 1, got.Goals[1].Order)
}

func TestSaveOnClientPath(t *testing.T) {
	app := setupTestApp(t, "")

	status, body := do(t, app, http.MethodPost, "/api/tracker/sajeel/2026-03-10/save/", `{"mood": 2}`)
	require.Equal(t, http.StatusOK, status, body)

	_, body = do(t, app, http.MethodGet, "/api/tracker/sajeel/2026-03-10", "")
	assert.Contains(t, body, `"mood":2`)
}

func TestSaveFailures(t *testing.T) {
	app := setupTestApp(t, "")

	cases := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/api/tracker/sajeel/2026-03-10/", `{"salah": `},
		{"wrong type", "/api/tracker/sajeel/2026-03-10/", `{"salah": {"fajr": "yes"}}`},
		{"negative water", "/api/tracker/sajeel/2026-03-10/", `{"habits": {"water": -1}}`},
		{"bad date", "/api/tracker/sajeel/March-10/", `{}`},
		{"null body", "/api/tracker/sajeel/2026-03-10/", `null`},
		{"array body", "/api/tracker/sajeel/2026-03-10/", `[{"mood": 1}]`},
		{"null goal", "/api/tracker/sajeel/2026-03-10/", `{"goals": [{"text": "a"}, null]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, status)

			var resp map[string]any
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, false, resp["success"])
			assert.NotEmpty(t, resp["error"])
		})
	}

	// Nothing was written.
	_, body := do(t, app, http.MethodGet, "/api/streaks/sajeel/", "")
	assert.Contains(t, body, `"totalDaysTracked":0`)
}

func TestNullBodyKeepsExistingRecord(t *testing.T) {
	app := setupTestApp(t, "")

	status, body := do(t, app, http.MethodPost, "/api/tracker/sajeel/2026-03-10/", `{"mood": 1, "notes": "kept", "goals": [{"text": "walk"}]}`)
	require.Equal(t, http.StatusOK, status, body)

	for _, payload := range []string{`null`, ` `, `{"goals": [null]}`} {
		status, body = do(t, app, http.MethodPost, "/api/tracker/sajeel/2026-03-10/", payload)
		assert.Equal(t, http.StatusBadRequest, status, "payload %q", payload)
		assert.Contains(t, body, `"success":false`)
	}

	_, body = do(t, app, http.MethodGet, "/api/tracker/sajeel/2026-03-10", "")
	assert.Contains(t, body, `"mood":1`)
	assert.Contains(t, body, `"notes":"kept"`)
	assert.Contains(t, body, `"text":"walk"`)
}

func TestUnknownPerson(t *testing.T) {
	app := setupTestApp(t, "")

	for _, path := range []string{
		"/api/tracker/bob/2026-03-10/",
		"/api/streaks/bob/",
		"/api/weekly/bob/",
		"/api/partner/bob/",
	} {
		status, body := do(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.JSONEq(t, `{"error": "Unknown person"}`, body, path)
	}
}

func TestGetTrackerBadDate(t *testing.T) {
	app := setupTestApp(t, "")

	status, body := do(t, app, http.MethodGet, "/api/tracker/sajeel/2026-13-01/", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "invalid date")
}

func TestDeleteTracker(t *testing.T) {
	app := setupTestApp(t, "")

	status, _ := do(t, app, http.MethodPost, "/api/tracker/sajeel/2026-03-09/", `{"goals": [{"text": "x"}]}`)
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, app, http.MethodDelete, "/api/tracker/sajeel/2026-03-09/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success": true, "deleted": true}`, body)

	_, body = do(t, app, http.MethodDelete, "/api/tracker/sajeel/2026-03-09/", "")
	assert.JSONEq(t, `{"success": true, "deleted": false}`, body)
}

func TestStreaksEndpoint(t *testing.T) {
	app := setupTestApp(t, "")

	full := `{"salah": {"fajr": true, "dhuhr": true, "asr": true, "maghrib": true, "isha": true},
		"quran": {"read": true}, "habits": {"exercise": true}}`
	for _, date := range []string{"2026-03-10", "2026-03-09", "2026-03-08", "2026-03-06"} {
		status, body := do(t, app, http.MethodPost, "/api/tracker/sajeel/"+date+"/", full)
		require.Equal(t, http.StatusOK, status, body)
	}

	status, body := do(t, app, http.MethodGet, "/api/streaks/sajeel/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"salahStreak": 3, "quranStreak": 3, "exerciseStreak": 3, "totalDaysTracked": 4}`, body)

	_, body = do(t, app, http.MethodGet, "/api/streaks/mahrukh/", "")
	assert.JSONEq(t, `{"salahStreak": 0, "quranStreak": 0, "exerciseStreak": 0, "totalDaysTracked": 0}`, body)
}

func TestWeeklyEndpoint(t *testing.T) {
	app := setupTestApp(t, "")

	status, _ := do(t, app, http.MethodPost, "/api/tracker/sajeel/2026-03-08/", `{"salah": {"asr": true}, "mood": 4}`)
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, app, http.MethodGet, "/api/weekly/sajeel/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[
		{"date": "2026-03-04", "day": "Wed", "salahCount": 0, "habitCount": 0, "quran": false, "mood": 0},
		{"date": "2026-03-05", "day": "Thu", "salahCount": 0, "habitCount": 0, "quran": false, "mood": 0},
		{"date": "2026-03-06", "day": "Fri", "salahCount": 0, "habitCount": 0, "quran": false, "mood": 0},
		{"date": "2026-03-07", "day": "Sat", "salahCount": 0, "habitCount": 0, "quran": false, "mood": 0},
		{"date": "2026-03-08", "day": "Sun", "salahCount": 1, "habitCount": 0, "quran": false, "mood": 4},
		{"date": "2026-03-09", "day": "Mon", "salahCount": 0, "habitCount": 0, "quran": false, "mood": 0},
		{"date": "2026-03-10", "day": "Tue", "salahCount": 0, "habitCount": 0, "quran": false, "mood": 0}
	]`, body)
}

func TestPartnerEndpoint(t *testing.T) {
	app := setupTestApp(t, "")

	status, body := do(t, app, http.MethodGet, "/api/partner/sajeel/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"partner": "mahrukh", "partner_display": "Mahrukh", "date": "2026-03-10", "has_data": false}`, body)

	status, _ = do(t, app, http.MethodPost, "/api/tracker/mahrukh/2026-03-10/",
		`{"salah": {"fajr": true, "dhuhr": true}, "habits": {"exercise": true, "water": 3}, "mood": 4}`)
	require.Equal(t, http.StatusOK, status)

	_, body = do(t, app, http.MethodGet, "/api/partner/sajeel/", "")
	assert.JSONEq(t, `{
		"partner": "mahrukh", "partner_display": "Mahrukh", "date": "2026-03-10", "has_data": true,
		"salahCount": 2, "quran": false, "habitCount": 1, "mood": 4, "exercise": true, "water": 3
	}`, body)

	_, body = do(t, app, http.MethodGet, "/api/partner/mahrukh/", "")
	assert.Contains(t, body, `"partner":"sajeel"`)
	assert.Contains(t, body, `"has_data":false`)
}

func TestStaticPage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>tracker</h1>"), 0o644))
	app := setupTestApp(t, dir)

	status, body := do(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "tracker")
}

func TestUnknownRoute(t *testing.T) {
	app := setupTestApp(t, "")

	status, body := do(t, app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "error")
}
