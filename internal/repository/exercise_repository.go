package repository

import (
	"github.com/exertrack/exercise-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormExerciseRepository is a GORM implementation of ExerciseRepository
type GormExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &GormExerciseRepository{db: db}
}

// Create creates a new exercise
func (r *GormExerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

// List retrieves exercises matching the filter ordered by date ascending.
// The returned count ignores Limit.
func (r *GormExerciseRepository) List(filter ExerciseFilter) ([]models.Exercise, int64, error) {
	query := r.db.Model(&models.Exercise{}).Where("user_id = ?", filter.UserID)

	from, to := filter.DateRange.From, filter.DateRange.To
	switch {
	case from != nil && to != nil:
		query = query.Where("date BETWEEN ? AND ?", *from, *to)
	case from != nil:
		query = query.Where("date >= ?", *from)
	case to != nil:
		query = query.Where("date <= ?", *to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("date ASC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit)
	}

	var exercises []models.Exercise
	if err := listQuery.Find(&exercises).Error; err != nil {
		return nil, 0, err
	}

	return exercises, total, nil
}
