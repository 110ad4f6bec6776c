package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bankist/internal/config"
	"bankist/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func shortRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	err = NewReadinessWaiter(db, discardLogger()).WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewReadinessWaiter(db, discardLogger()).WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = NewReadinessWaiter(db, discardLogger()).WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 5
	retryInterval = time.Hour
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	mock.ExpectPing().WillReturnError(errors.New("starting"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = NewReadinessWaiter(db, discardLogger()).WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_MemoryDriverHasNoDatabase(t *testing.T) {
	_, err := New(&config.StorageConfig{Driver: config.StorageDriverMemory})

	assert.ErrorIs(t, err, config.ErrUnknownStorageDriver)
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:         config.StorageDriverSQLite,
			SQLitePath:     ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg, discardLogger())
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable(&models.Account{}))
	assert.True(t, db.Migrator().HasIndex(&models.Account{}, "UserName"))
}

func TestSetupTestDB_StoresAccounts(t *testing.T) {
	db := SetupTestDB(t)

	accounts := models.DemoAccounts()
	models.AssignUserNames(accounts)
	require.NoError(t, db.Create(&accounts).Error)

	var stored models.Account
	require.NoError(t, db.Where("user_name = ?", "stw").First(&stored).Error)
	assert.Equal(t, "Steven Thomas Williams", stored.Owner)
	assert.Equal(t, []float64{200, -200, 340, -300, -20, 50, 400, -460}, stored.Movements)
	assert.Equal(t, 3333, stored.PIN)
}
