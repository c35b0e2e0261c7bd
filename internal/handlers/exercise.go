package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/exertrack/exercise-tracker-api/internal/dto"
	apierrors "github.com/exertrack/exercise-tracker-api/internal/errors"
	"github.com/exertrack/exercise-tracker-api/internal/models"
	"github.com/exertrack/exercise-tracker-api/internal/services"
)

// ExerciseHandler coordinates exercise-related HTTP handlers.
type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
	}
}

// CreateExercise logs an exercise for the user in the path.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	type CreateExerciseRequest struct {
		Description string   `json:"description"`
		Duration    *float64 `json:"duration"`
		Date        string   `json:"date"`
	}

	var req CreateExerciseRequest
	// Missing or malformed fields fall through to the required-fields check.
	_ = c.ShouldBindJSON(&req)

	exercise, user, err := h.exerciseService.CreateExercise(services.CreateExerciseInput{
		UserID:      c.Param("id"),
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		respondExerciseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatedExerciseDTO(*exercise, *user))
}

// ListLogs returns the user's exercise log with optional date-range
// filtering and a result cap.
func (h *ExerciseHandler) ListLogs(c *gin.Context) {
	logs, err := h.exerciseService.ListLogs(services.ListLogsInput{
		UserID: c.Param("id"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  c.Query("limit"),
	})
	if err != nil {
		respondExerciseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLogsResponse(*logs.User, logs.Count, logs.Exercises))
}

func respondExerciseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrExerciseFieldsRequired):
		apierrors.BadRequest(c, "All exercise fields are required")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrInvalidDate):
		apierrors.BadRequest(c, "Invalid date")
	case errors.Is(err, services.ErrInvalidDateRange):
		apierrors.BadRequest(c, "Invalid date query params")
	case errors.Is(err, services.ErrInvalidLimit):
		apierrors.BadRequest(c, "Limit query param should be positive integer")
	case errors.Is(err, models.ErrDurationTooSmall):
		apierrors.BadRequest(c, "Duration should be positive number greater or equal 0.01")
	default:
		log.Error().Err(err).Msg("exercise handler: unexpected failure")
		apierrors.InternalError(c, "")
	}
}
