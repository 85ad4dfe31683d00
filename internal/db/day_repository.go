package db

import (
	"time"

	"github.com/terraincognita07/habits/internal/models"
	"gorm.io/gorm"
)

type DayRepository struct {
	database *gorm.DB
}

func NewDayRepository(database *gorm.DB) *DayRepository {
	return &DayRepository{database: database}
}

// FindByDate looks up the day row whose normalized date matches exactly.
// Absence is not an error; callers treat a missing day as zero completions.
func (repo *DayRepository) FindByDate(date time.Time) (models.Day, bool, error) {
	day := models.Day{}
	result := repo.database.Where("date = ?", date).Limit(1).Find(&day)
	if result.Error != nil {
		return models.Day{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Day{}, false, nil
	}
	return day, true, nil
}

func (repo *DayRepository) Create(day *models.Day) error {
	return repo.database.Create(day).Error
}

func (repo *DayRepository) ListAll() ([]models.Day, error) {
	days := make([]models.Day, 0)
	if err := repo.database.Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}
