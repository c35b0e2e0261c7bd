package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gosqlmysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"github.com/exertrack/exercise-tracker-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestGormUserRepository_FindByUsername_QueryShape(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "username"}).
		AddRow("8f2b6a9e-0000-0000-0000-000000000001", "alice")
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = .+").
		WillReturnRows(rows)

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsername_NotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = .+").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := repo.FindByUsername("missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Create_DuplicateKeyTranslated(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&gosqlmysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bob'"})
	mock.ExpectRollback()

	err := repo.Create(&models.User{Username: "bob"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_SQLiteUniqueIndex(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	repo := NewUserRepository(db)
	require.NoError(t, repo.Create(&models.User{Username: "carol"}))

	err = repo.Create(&models.User{Username: "carol"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
