package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habits/internal/models"
)

type HabitRepository interface {
	Create(habit *models.Habit) error
	ListPossible(date time.Time, weekDay int) ([]models.Habit, error)
}

type HabitService struct {
	habits   HabitRepository
	location *time.Location
}

func NewHabitService(habits HabitRepository, location *time.Location) *HabitService {
	return &HabitService{
		habits:   habits,
		location: location,
	}
}

// Create records a habit with created_at pinned to the start of the current
// day. One weekday row is written per input element; duplicates in the input
// produce duplicate rows.
func (service *HabitService) Create(title string, weekDays []int, now time.Time) error {
	habit := models.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: DateAtLocation(now, service.location),
		WeekDays:  make([]models.HabitWeekDay, 0, len(weekDays)),
	}
	for _, weekDay := range weekDays {
		habit.WeekDays = append(habit.WeekDays, models.HabitWeekDay{
			ID:      uuid.NewString(),
			HabitID: habit.ID,
			WeekDay: weekDay,
		})
	}
	return service.habits.Create(&habit)
}

// Possible lists habits applicable on the date: created on or before it,
// recurring on its weekday. Whether a day row exists for the date is
// irrelevant here.
func (service *HabitService) Possible(date time.Time) ([]models.Habit, error) {
	normalized := DateAtLocation(date, service.location)
	return service.habits.ListPossible(normalized, WeekdayIndex(normalized))
}
