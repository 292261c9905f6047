package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sajeel/daily-tracker/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_tracker",
		Description: "Get a person's tracker for a day: salah, quran, habits, goals, mood and notes",
	}, s.handleGetTracker)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_tracker",
		Description: "Replace a person's tracker for a day with the given record, including its goal list",
	}, s.handleSaveTracker)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streaks",
		Description: "Current salah, quran and exercise streaks ending today",
	}, s.handleGetStreaks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weekly",
		Description: "Seven day overview ending today, oldest first",
	}, s.handleGetWeekly)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_partner",
		Description: "Today's summary for the person's partner",
	}, s.handleGetPartner)
}

type dayInput struct {
	Person string `json:"person" jsonschema:"Person: sajeel or mahrukh"`
	Date   string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type saveTrackerInput struct {
	Person  string                    `json:"person" jsonschema:"Person: sajeel or mahrukh"`
	Date    string                    `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
	Tracker models.SaveTrackerRequest `json:"tracker" jsonschema:"The full day record"`
}

type personInput struct {
	Person string `json:"person" jsonschema:"Person: sajeel or mahrukh"`
}

type saveOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type weeklyOutput struct {
	Days []models.WeeklyDay `json:"days"`
}

func (s *Server) parseDay(person, date string) (models.Person, time.Time, error) {
	p, err := models.ParsePerson(person)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", err, person)
	}
	if date == "" {
		return p, s.trackers.Today(), nil
	}
	d, err := models.ParseDate(date)
	if err != nil {
		return "", time.Time{}, err
	}
	return p, d, nil
}

func (s *Server) handleGetTracker(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, any, error) {
	person, date, err := s.parseDay(input.Person, input.Date)
	if err != nil {
		return nil, nil, err
	}

	tracker, err := s.trackers.Get(ctx, person, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get tracker: %w", err)
	}
	return nil, tracker, nil
}

func (s *Server) handleSaveTracker(ctx context.Context, req *mcp.CallToolRequest, input saveTrackerInput) (*mcp.CallToolResult, saveOutput, error) {
	person, date, err := s.parseDay(input.Person, input.Date)
	if err != nil {
		return nil, saveOutput{}, err
	}

	id, err := s.trackers.Save(ctx, person, date, &input.Tracker)
	if err != nil {
		return nil, saveOutput{}, fmt.Errorf("failed to save tracker: %w", err)
	}

	return nil, saveOutput{
		ID:      id.String(),
		Message: fmt.Sprintf("Saved %s for %s", models.FormatDate(date), person.DisplayName()),
	}, nil
}

func (s *Server) handleGetStreaks(ctx context.Context, req *mcp.CallToolRequest, input personInput) (*mcp.CallToolResult, models.StreakSummary, error) {
	person, err := models.ParsePerson(input.Person)
	if err != nil {
		return nil, models.StreakSummary{}, fmt.Errorf("%w: %q", err, input.Person)
	}

	streaks, err := s.trackers.Streaks(ctx, person)
	if err != nil {
		return nil, models.StreakSummary{}, fmt.Errorf("failed to get streaks: %w", err)
	}
	return nil, streaks, nil
}

func (s *Server) handleGetWeekly(ctx context.Context, req *mcp.CallToolRequest, input personInput) (*mcp.CallToolResult, weeklyOutput, error) {
	person, err := models.ParsePerson(input.Person)
	if err != nil {
		return nil, weeklyOutput{}, fmt.Errorf("%w: %q", err, input.Person)
	}

	week, err := s.trackers.Weekly(ctx, person)
	if err != nil {
		return nil, weeklyOutput{}, fmt.Errorf("failed to get weekly overview: %w", err)
	}
	return nil, weeklyOutput{Days: week}, nil
}

func (s *Server) handleGetPartner(ctx context.Context, req *mcp.CallToolRequest, input personInput) (*mcp.CallToolResult, any, error) {
	person, err := models.ParsePerson(input.Person)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", err, input.Person)
	}

	summary, err := s.trackers.Partner(ctx, person)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get partner summary: %w", err)
	}
	return nil, summary, nil
}
