package dto

import (
	"github.com/exertrack/exercise-tracker-api/internal/models"
	"github.com/exertrack/exercise-tracker-api/internal/validation"
)

// ExerciseDTO represents a single log entry in API responses. Dates are
// always serialized as plain calendar dates.
type ExerciseDTO struct {
	ID          uint64  `json:"id"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// CreatedExerciseDTO merges a created exercise with its owner's username
type CreatedExerciseDTO struct {
	ID          uint64  `json:"id"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// LogsResponse represents a user's exercise log
type LogsResponse struct {
	Username string        `json:"username"`
	ID       string        `json:"id"`
	Count    int64         `json:"count"`
	Logs     []ExerciseDTO `json:"logs"`
}

// ToExerciseDTO converts an Exercise model to ExerciseDTO
func ToExerciseDTO(exercise models.Exercise) ExerciseDTO {
	return ExerciseDTO{
		ID:          exercise.ID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(validation.DateLayout),
	}
}

// ToCreatedExerciseDTO converts a created exercise and its owner to a DTO
func ToCreatedExerciseDTO(exercise models.Exercise, user models.User) CreatedExerciseDTO {
	return CreatedExerciseDTO{
		ID:          exercise.ID,
		UserID:      exercise.UserID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(validation.DateLayout),
	}
}

// ToLogsResponse converts a user's exercises to LogsResponse
func ToLogsResponse(user models.User, count int64, exercises []models.Exercise) LogsResponse {
	logs := make([]ExerciseDTO, len(exercises))
	for i, exercise := range exercises {
		logs[i] = ToExerciseDTO(exercise)
	}

	return LogsResponse{
		Username: user.Username,
		ID:       user.ID,
		Count:    count,
		Logs:     logs,
	}
}
