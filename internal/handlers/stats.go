package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajeel/daily-tracker/internal/logger"
	"github.com/sajeel/daily-tracker/internal/middleware"
	"github.com/sajeel/daily-tracker/internal/services"
)

func GetStreaks(c *fiber.Ctx) error {
	person := middleware.GetPerson(c)

	streaks, err := services.Trackers.Streaks(c.UserContext(), person)
	if err != nil {
		logger.Error("streaks", "person", person, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to calculate streaks",
		})
	}

	return c.JSON(streaks)
}

// GetWeekly returns the last seven days, oldest first.
func GetWeekly(c *fiber.Ctx) error {
	person := middleware.GetPerson(c)

	week, err := services.Trackers.Weekly(c.UserContext(), person)
	if err != nil {
		logger.Error("weekly", "person", person, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load weekly overview",
		})
	}

	return c.JSON(week)
}

// GetPartnerSummary returns a quick view of the partner's today.
func GetPartnerSummary(c *fiber.Ctx) error {
	person := middleware.GetPerson(c)

	summary, err := services.Trackers.Partner(c.UserContext(), person)
	if err != nil {
		logger.Error("partner summary", "person", person, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load partner summary",
		})
	}

	return c.JSON(summary)
}
