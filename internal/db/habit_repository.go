package db

import (
	"time"

	"github.com/terraincognita07/habits/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

// Create persists a habit together with its weekday rows in one transaction.
func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("WeekDays").Create(habit).Error; err != nil {
			return err
		}
		if len(habit.WeekDays) == 0 {
			return nil
		}
		return tx.Create(&habit.WeekDays).Error
	})
}

// ListPossible returns the habits applicable on the given date: created on or
// before it and recurring on its weekday.
func (repo *HabitRepository) ListPossible(date time.Time, weekDay int) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Distinct("habits.*").
		Joins("JOIN habit_week_days ON habit_week_days.habit_id = habits.id").
		Where("habits.created_at <= ? AND habit_week_days.week_day = ?", date, weekDay).
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ListWithWeekDays() ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Preload("WeekDays").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
