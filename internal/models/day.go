package models

import "time"

// Day records a calendar date that has seen at least one completion toggle.
// Date is always a start-of-day timestamp and is unique across the table;
// rows are created lazily by the first toggle targeting that date.
type Day struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Date      time.Time  `gorm:"not null;uniqueIndex:uidx_days_date" json:"date"`
	DayHabits []DayHabit `gorm:"foreignKey:DayID" json:"-"`
}

// DayHabit marks a habit as completed on a day. Its existence is the sole
// source of truth for completion state. HabitID is intentionally not a
// foreign key: the toggle endpoint accepts identifiers without checking
// that a matching habit exists.
type DayHabit struct {
	ID      string `gorm:"primaryKey" json:"id"`
	DayID   string `gorm:"not null;uniqueIndex:uidx_day_habits_day_habit" json:"day_id"`
	HabitID string `gorm:"not null;uniqueIndex:uidx_day_habits_day_habit" json:"habit_id"`
}
