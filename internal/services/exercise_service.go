package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/exertrack/exercise-tracker-api/internal/models"
	"github.com/exertrack/exercise-tracker-api/internal/repository"
	"github.com/exertrack/exercise-tracker-api/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrExerciseFieldsRequired = errors.New("exercise fields are required")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidDateRange       = errors.New("invalid date query params")
	ErrInvalidLimit           = errors.New("limit must be a positive integer")
)

// ExerciseService handles exercise business logic.
type ExerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// CreateExerciseInput represents input for logging an exercise. Duration is
// a pointer so a missing field is distinguishable from zero.
type CreateExerciseInput struct {
	UserID      string
	Description string
	Duration    *float64
	Date        string
}

// CreateExercise logs an exercise for an existing user. An omitted date
// defaults to today.
func (s *ExerciseService) CreateExercise(input CreateExerciseInput) (*models.Exercise, *models.User, error) {
	if strings.TrimSpace(input.Description) == "" || input.Duration == nil {
		return nil, nil, ErrExerciseFieldsRequired
	}

	user, err := s.userRepo.FindByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	date := today()
	if input.Date != "" {
		parsed, ok := validation.ParseDate(input.Date)
		if !ok {
			return nil, nil, ErrInvalidDate
		}
		date = parsed
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Description: input.Description,
		Duration:    *input.Duration,
		Date:        date,
	}

	if err := s.exerciseRepo.Create(exercise); err != nil {
		if errors.Is(err, models.ErrDurationTooSmall) {
			return nil, nil, models.ErrDurationTooSmall
		}
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return exercise, user, nil
}

// ListLogsInput carries the raw query parameters for a log listing.
type ListLogsInput struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// Logs is the result of a log listing.
type Logs struct {
	User      *models.User
	Count     int64
	Exercises []models.Exercise
}

// ListLogs returns a user's exercises, optionally date-filtered and capped.
// Count always reflects the full match set.
func (s *ExerciseService) ListLogs(input ListLogsInput) (*Logs, error) {
	var dateRange repository.DateRange
	if input.From != "" {
		from, ok := validation.ParseDate(input.From)
		if !ok {
			return nil, ErrInvalidDateRange
		}
		dateRange.From = &from
	}
	if input.To != "" {
		to, ok := validation.ParseDate(input.To)
		if !ok {
			return nil, ErrInvalidDateRange
		}
		dateRange.To = &to
	}

	limit := 0
	if input.Limit != "" {
		n, ok := validation.ParsePositiveInt(input.Limit)
		if !ok {
			return nil, ErrInvalidLimit
		}
		limit = n
	}

	user, err := s.userRepo.FindByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	exercises, total, err := s.exerciseRepo.List(repository.ExerciseFilter{
		UserID:    user.ID,
		DateRange: dateRange,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return &Logs{
		User:      user,
		Count:     total,
		Exercises: exercises,
	}, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
