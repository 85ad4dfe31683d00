package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habits/internal/db"
	"github.com/terraincognita07/habits/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repositories   *db.Repositories
	habitService   *services.HabitService
	dayService     *services.DayService
	summaryService *services.SummaryService
	location       *time.Location
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories:   repositories,
		habitService:   services.NewHabitService(repositories.Habits, location),
		dayService:     services.NewDayService(repositories.Days, repositories.DayHabits, location),
		summaryService: services.NewSummaryService(repositories.Days, repositories.Habits, repositories.DayHabits),
		location:       location,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
