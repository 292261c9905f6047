package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajeel/daily-tracker/internal/models"
)

// RequirePerson rejects requests whose :person segment is not one of the
// tracked people and stores the parsed person in the context.
func RequirePerson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		person, err := models.ParsePerson(c.Params("person"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Unknown person",
			})
		}

		c.Locals("person", person)
		return c.Next()
	}
}

// GetPerson extracts the person stored by RequirePerson
func GetPerson(c *fiber.Ctx) models.Person {
	person, ok := c.Locals("person").(models.Person)
	if !ok {
		return ""
	}
	return person
}
