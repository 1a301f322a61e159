package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newFaultDB wires gorm to a sqlmock connection so driver-level failures
// can be injected without a real database.
func newFaultDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_CountStorageFault(t *testing.T) {
	db, mock := newFaultDB(t)
	repo := NewUserRepository(db)

	driverErr := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT count").WillReturnError(driverErr)

	_, err := repo.Count()
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, driverErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CheckCredentialsStorageFault(t *testing.T) {
	db, mock := newFaultDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("connection reset"))

	ok, err := repo.CheckCredentials("alice@sems.com", "secret123")
	require.False(t, ok)
	require.ErrorIs(t, err, ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateStorageFault(t *testing.T) {
	db, mock := newFaultDB(t)
	repo := NewEventRepository(db)

	// The organizer check fails inside the transaction; the insert never
	// runs and the transaction rolls back.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	_, err := repo.Create(eventAt("alice@sems.com", time.Now()))
	require.ErrorIs(t, err, ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CountStorageFault(t *testing.T) {
	db, mock := newFaultDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Count()
	require.ErrorIs(t, err, ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}
