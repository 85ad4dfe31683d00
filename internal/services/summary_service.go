package services

import (
	"time"

	"github.com/terraincognita07/habits/internal/models"
)

type SummaryDayReader interface {
	ListAll() ([]models.Day, error)
}

type SummaryHabitReader interface {
	ListWithWeekDays() ([]models.Habit, error)
}

type SummaryCompletionReader interface {
	CountByDay() (map[string]int, error)
}

// SummaryEntry reports, for one recorded day, how many habits were completed
// and how many were possible on it.
type SummaryEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Amount    int       `json:"amount"`
}

type SummaryService struct {
	days        SummaryDayReader
	habits      SummaryHabitReader
	completions SummaryCompletionReader
}

func NewSummaryService(days SummaryDayReader, habits SummaryHabitReader, completions SummaryCompletionReader) *SummaryService {
	return &SummaryService{
		days:        days,
		habits:      habits,
		completions: completions,
	}
}

// Build assembles one entry per recorded day, in store order. Completed
// counts come from a single grouped query; amounts reuse the same weekday
// rule as the day query, applied to the stored normalized date.
func (service *SummaryService) Build() ([]SummaryEntry, error) {
	days, err := service.days.ListAll()
	if err != nil {
		return nil, err
	}

	completedCounts, err := service.completions.CountByDay()
	if err != nil {
		return nil, err
	}

	habits, err := service.habits.ListWithWeekDays()
	if err != nil {
		return nil, err
	}

	entries := make([]SummaryEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, SummaryEntry{
			ID:        day.ID,
			Date:      day.Date,
			Completed: completedCounts[day.ID],
			Amount:    countPossibleHabits(habits, day.Date),
		})
	}
	return entries, nil
}

func countPossibleHabits(habits []models.Habit, date time.Time) int {
	weekDay := WeekdayIndex(date)
	amount := 0
	for _, habit := range habits {
		if habit.CreatedAt.After(date) {
			continue
		}
		if habitRecursOn(habit, weekDay) {
			amount++
		}
	}
	return amount
}

func habitRecursOn(habit models.Habit, weekDay int) bool {
	for _, entry := range habit.WeekDays {
		if entry.WeekDay == weekDay {
			return true
		}
	}
	return false
}
