package db

import (
	"errors"
	"strings"

	"github.com/terraincognita07/habits/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateCompletion reports that a completion mark already exists for
// the (day, habit) pair. It surfaces when two toggles race on the same pair
// and the unique index rejects the losing insert.
var ErrDuplicateCompletion = errors.New("completion already recorded for day and habit")

type DayHabitRepository struct {
	database *gorm.DB
}

func NewDayHabitRepository(database *gorm.DB) *DayHabitRepository {
	return &DayHabitRepository{database: database}
}

func (repo *DayHabitRepository) FindByDayAndHabit(dayID string, habitID string) (models.DayHabit, bool, error) {
	entry := models.DayHabit{}
	result := repo.database.Where("day_id = ? AND habit_id = ?", dayID, habitID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DayHabit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayHabit{}, false, nil
	}
	return entry, true, nil
}

func (repo *DayHabitRepository) Create(entry *models.DayHabit) error {
	err := repo.database.Create(entry).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicateCompletion
	}
	return err
}

// DeleteByID is a no-op when the row is already gone, so a racing
// un-complete never fails.
func (repo *DayHabitRepository) DeleteByID(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.DayHabit{}).Error
}

func (repo *DayHabitRepository) ListHabitIDsByDay(dayID string) ([]string, error) {
	ids := make([]string, 0)
	if err := repo.database.Model(&models.DayHabit{}).
		Where("day_id = ?", dayID).
		Pluck("habit_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

type dayCompletionCount struct {
	DayID string `gorm:"column:day_id"`
	Count int    `gorm:"column:count"`
}

// CountByDay returns completion counts grouped by day in a single query.
func (repo *DayHabitRepository) CountByDay() (map[string]int, error) {
	rows := make([]dayCompletionCount, 0)
	if err := repo.database.
		Raw(`SELECT day_id, count(*) AS count FROM day_habits GROUP BY day_id`).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.DayID] = row.Count
	}
	return counts, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
