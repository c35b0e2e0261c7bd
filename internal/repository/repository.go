package repository

import (
	"time"

	"github.com/exertrack/exercise-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByUsername finds a user by exact username match
	FindByUsername(username string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)
}

// DateRange bounds the exercise date filter. Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ExerciseFilter holds filtering options for listing exercises
type ExerciseFilter struct {
	UserID    string
	DateRange DateRange

	// Limit caps the number of returned rows; zero means no cap.
	Limit int
}

// ExerciseRepository defines the interface for exercise data access
type ExerciseRepository interface {
	// Create creates a new exercise
	Create(exercise *models.Exercise) error

	// List retrieves exercises matching the filter ordered by date
	// ascending, together with the total match count ignoring Limit.
	List(filter ExerciseFilter) ([]models.Exercise, int64, error)
}
