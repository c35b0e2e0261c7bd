package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/exertrack/exercise-tracker-api/internal/models"
	"github.com/exertrack/exercise-tracker-api/internal/validation"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupExerciseRepo(t *testing.T) (*gorm.DB, ExerciseRepository, UserRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Exercise{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewExerciseRepository(db), NewUserRepository(db)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, ok := validation.ParseDate(value)
	require.True(t, ok)
	return date
}

func seedExercises(t *testing.T, repo ExerciseRepository, userRepo UserRepository, dates ...string) *models.User {
	t.Helper()

	user := &models.User{Username: "seed-user"}
	require.NoError(t, userRepo.Create(user))

	for _, d := range dates {
		require.NoError(t, repo.Create(&models.Exercise{
			UserID:      user.ID,
			Description: "entry " + d,
			Duration:    10,
			Date:        mustDate(t, d),
		}))
	}
	return user
}

func TestGormExerciseRepository_List_BetweenInclusive(t *testing.T) {
	_, repo, userRepo := setupExerciseRepo(t)
	user := seedExercises(t, repo, userRepo, "2024-01-01", "2024-01-15", "2024-02-01")

	from := mustDate(t, "2024-01-01")
	to := mustDate(t, "2024-01-15")

	exercises, total, err := repo.List(ExerciseFilter{
		UserID:    user.ID,
		DateRange: DateRange{From: &from, To: &to},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, exercises, 2)
}

func TestGormExerciseRepository_List_OpenBounds(t *testing.T) {
	_, repo, userRepo := setupExerciseRepo(t)
	user := seedExercises(t, repo, userRepo, "2024-01-01", "2024-01-15", "2024-02-01")

	from := mustDate(t, "2024-01-15")
	exercises, total, err := repo.List(ExerciseFilter{
		UserID:    user.ID,
		DateRange: DateRange{From: &from},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, exercises, 2)

	to := mustDate(t, "2024-01-14")
	exercises, total, err = repo.List(ExerciseFilter{
		UserID:    user.ID,
		DateRange: DateRange{To: &to},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "entry 2024-01-01", exercises[0].Description)
}

func TestGormExerciseRepository_List_LimitAndOrder(t *testing.T) {
	_, repo, userRepo := setupExerciseRepo(t)
	// Deliberately unordered insertion.
	user := seedExercises(t, repo, userRepo, "2024-03-03", "2024-03-01", "2024-03-02")

	exercises, total, err := repo.List(ExerciseFilter{
		UserID: user.ID,
		Limit:  2,
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, exercises, 2)
	require.Equal(t, "entry 2024-03-01", exercises[0].Description)
	require.Equal(t, "entry 2024-03-02", exercises[1].Description)
}

func TestGormExerciseRepository_List_ScopedToUser(t *testing.T) {
	_, repo, userRepo := setupExerciseRepo(t)
	user := seedExercises(t, repo, userRepo, "2024-04-01")

	other := &models.User{Username: "other-user"}
	require.NoError(t, userRepo.Create(other))
	require.NoError(t, repo.Create(&models.Exercise{
		UserID:      other.ID,
		Description: "someone else",
		Duration:    10,
		Date:        mustDate(t, "2024-04-01"),
	}))

	exercises, total, err := repo.List(ExerciseFilter{UserID: user.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "entry 2024-04-01", exercises[0].Description)
}

func TestGormExerciseRepository_Create_DurationFloor(t *testing.T) {
	_, repo, userRepo := setupExerciseRepo(t)

	user := &models.User{Username: "floor-user"}
	require.NoError(t, userRepo.Create(user))

	err := repo.Create(&models.Exercise{
		UserID:      user.ID,
		Description: "too short",
		Duration:    0.001,
		Date:        mustDate(t, "2024-05-01"),
	})
	require.ErrorIs(t, err, models.ErrDurationTooSmall)

	require.NoError(t, repo.Create(&models.Exercise{
		UserID:      user.ID,
		Description: "at the floor",
		Duration:    models.MinDuration,
		Date:        mustDate(t, "2024-05-01"),
	}))
}
