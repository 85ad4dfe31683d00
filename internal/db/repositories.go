package db

import "gorm.io/gorm"

type Repositories struct {
	Habits    *HabitRepository
	Days      *DayRepository
	DayHabits *DayHabitRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Habits:    NewHabitRepository(database),
		Days:      NewDayRepository(database),
		DayHabits: NewDayHabitRepository(database),
	}
}
