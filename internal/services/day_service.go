package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habits/internal/models"
)

type DayRepository interface {
	FindByDate(date time.Time) (models.Day, bool, error)
	Create(day *models.Day) error
}

type DayHabitRepository interface {
	FindByDayAndHabit(dayID string, habitID string) (models.DayHabit, bool, error)
	Create(entry *models.DayHabit) error
	DeleteByID(id string) error
	ListHabitIDsByDay(dayID string) ([]string, error)
}

type DayService struct {
	days      DayRepository
	dayHabits DayHabitRepository
	location  *time.Location
}

func NewDayService(days DayRepository, dayHabits DayHabitRepository, location *time.Location) *DayService {
	return &DayService{
		days:      days,
		dayHabits: dayHabits,
		location:  location,
	}
}

// CompletedHabitIDs returns the habit identifiers completed on the date.
// A missing day row means nothing was completed, never an error.
func (service *DayService) CompletedHabitIDs(date time.Time) ([]string, error) {
	day, found, err := service.days.FindByDate(DateAtLocation(date, service.location))
	if err != nil {
		return nil, err
	}
	if !found {
		return make([]string, 0), nil
	}
	return service.dayHabits.ListHabitIDsByDay(day.ID)
}

// Toggle flips completion state for the habit on the current day. The day
// row is created lazily on first use. The habit identifier is taken as
// given: no existence or applicability check happens here.
func (service *DayService) Toggle(habitID string, now time.Time) error {
	today := DateAtLocation(now, service.location)

	day, found, err := service.days.FindByDate(today)
	if err != nil {
		return err
	}
	if !found {
		day = models.Day{ID: uuid.NewString(), Date: today}
		if err := service.days.Create(&day); err != nil {
			return err
		}
	}

	entry, found, err := service.dayHabits.FindByDayAndHabit(day.ID, habitID)
	if err != nil {
		return err
	}
	if found {
		return service.dayHabits.DeleteByID(entry.ID)
	}

	return service.dayHabits.Create(&models.DayHabit{
		ID:      uuid.NewString(),
		DayID:   day.ID,
		HabitID: habitID,
	})
}
