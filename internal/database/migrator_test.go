package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)

	assert.NoError(t, runner.WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 10 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	runner := NewMigrationRunner(db)

	assert.NoError(t, runner.WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 10 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db)

	err = runner.WaitForDatabase()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not ready after")
}

func TestRunMigrations_MissingDirectoryIsSkipped(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = "does/not/exist"

	assert.NoError(t, runner.RunMigrations())
}
