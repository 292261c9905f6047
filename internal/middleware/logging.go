package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sajeel/daily-tracker/internal/logger"
)

// RequestLogger writes one log line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		keyvals := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request", append(keyvals, "err", err)...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request", keyvals...)
		default:
			logger.Info("request", keyvals...)
		}
		return err
	}
}
