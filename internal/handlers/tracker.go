package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sajeel/daily-tracker/internal/logger"
	"github.com/sajeel/daily-tracker/internal/middleware"
	"github.com/sajeel/daily-tracker/internal/models"
	"github.com/sajeel/daily-tracker/internal/services"
)

// GetTracker returns the person's record for :date. A day with no record
// gets the default shape, never a 404.
func GetTracker(c *fiber.Ctx) error {
	person := middleware.GetPerson(c)
	date, err := models.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	tracker, err := services.Trackers.Get(c.UserContext(), person, date)
	if err != nil {
		logger.Error("get tracker", "person", person, "date", c.Params("date"), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load tracker",
		})
	}

	return c.JSON(tracker)
}

// SaveTracker replaces the person's record for :date with the request body.
// Every failure is reported as {success: false, error} with a 400.
func SaveTracker(c *fiber.Ctx) error {
	person := middleware.GetPerson(c)
	date, err := models.ParseDate(c.Params("date"))
	if err != nil {
		return saveFailed(c, err)
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || body[0] != '{' {
		return saveFailed(c, fmt.Errorf("request body must be a JSON object"))
	}

	var req models.SaveTrackerRequest
	if err := c.App().Config().JSONDecoder(body, &req); err != nil {
		return saveFailed(c, fmt.Errorf("invalid JSON body: %w", err))
	}

	id, err := services.Trackers.Save(c.UserContext(), person, date, &req)
	if err != nil {
		logger.Warn("save tracker", "person", person, "date", c.Params("date"), "err", err)
		return saveFailed(c, err)
	}

	return c.JSON(models.SaveResult{
		Success: true,
		ID:      id,
	})
}

func saveFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func DeleteTracker(c *fiber.Ctx) error {
	person := middleware.GetPerson(c)
	date, err := models.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	deleted, err := services.Trackers.Delete(c.UserContext(), person, date)
	if err != nil {
		logger.Error("delete tracker", "person", person, "date", c.Params("date"), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete tracker",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"deleted": deleted,
	})
}
