package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/habits/internal/db"
)

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	title, weekDays, fields := parseCreateHabitInput(c.Body())
	if len(fields) > 0 {
		return validationError(c, fields)
	}

	if err := handler.habitService.Create(title, weekDays, time.Now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}

	return c.SendStatus(fiber.StatusCreated)
}

// ToggleHabit flips completion state for the habit on the current day,
// regardless of any date the client may have been viewing. The identifier
// only has to be a well-formed UUID; whether it names an existing habit is
// not checked.
func (handler *Handler) ToggleHabit(c *fiber.Ctx) error {
	habitID := c.Params("id")
	if _, err := uuid.Parse(habitID); err != nil {
		return validationError(c, map[string]string{"id": "must be a valid uuid"})
	}

	if err := handler.dayService.Toggle(habitID, time.Now()); err != nil {
		if errors.Is(err, db.ErrDuplicateCompletion) {
			return apiError(c, fiber.StatusConflict, "completion already recorded")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle habit")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
