package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	date, err := coerceDateParam(c.Query("date"), handler.location)
	if err != nil {
		return validationError(c, map[string]string{"date": err.Error()})
	}

	possibleHabits, err := handler.habitService.Possible(date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch possible habits")
	}

	completedHabits, err := handler.dayService.CompletedHabitIDs(date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch completed habits")
	}

	return c.JSON(fiber.Map{
		"possibleHabits":  possibleHabits,
		"completedHabits": completedHabits,
	})
}
