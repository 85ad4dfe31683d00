package models

import "time"

// Habit is a recurring task definition. CreatedAt always holds a start-of-day
// timestamp in the configured location; neither the title nor the weekday set
// can be changed after creation.
type Habit struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	WeekDays  []HabitWeekDay `gorm:"foreignKey:HabitID" json:"-"`
}

// HabitWeekDay marks one weekday (0=Sunday..6=Saturday) a habit recurs on.
// A habit may carry duplicate rows for the same weekday; creation preserves
// the input as given.
type HabitWeekDay struct {
	ID      string `gorm:"primaryKey" json:"id"`
	HabitID string `gorm:"not null;index" json:"habit_id"`
	WeekDay int    `gorm:"column:week_day;not null" json:"week_day"`
}
