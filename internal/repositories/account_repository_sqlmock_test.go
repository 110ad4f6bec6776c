package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankist/internal/ledger"
	"bankist/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var accountColumns = []string{"id", "owner", "user_name", "movements", "interest_rate", "pin", "created_at", "updated_at"}

func newSQLMockRepository(t *testing.T) (AccountRepositoryInterface, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewAccountRepository(db), mock
}

func TestAccountRepository_FindByUserName_ScansMovements(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_name = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(1, "Jonas Schmedtmann", "js", "[200,450,-400]", 1.2, 1111, now, now))

	account, err := repo.FindByUserName(context.Background(), "js")

	require.NoError(t, err)
	assert.Equal(t, []float64{200, 450, -400}, account.Movements)
	assert.Equal(t, 1111, account.PIN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByUserName_DatabaseError(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "accounts"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByUserName(context.Background(), "js")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAccountRepository_Count_DatabaseError(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).WillReturnError(errors.New("timeout"))

	_, err := repo.Count(context.Background())

	assert.ErrorContains(t, err, "failed to count accounts")
}

func TestAccountRepository_RemoveByUserName_NoRows(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE user_name = \$1`).
		WithArgs("zz").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.RemoveByUserName(context.Background(), "zz")

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Apply_RollsBackOnUpdateFailure(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_name = \$1 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(1, "Jonas Schmedtmann", "js", "[3840]", 1.2, 1111, now, now))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_name = \$1 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(2, "Jessica Davis", "jd", "[11720]", 1.5, 2222, now, now))
	mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	tx := ledger.Transaction{
		Kind: ledger.KindTransfer,
		Entries: []ledger.Entry{
			{UserName: "js", Amount: -100},
			{UserName: "jd", Amount: 100},
		},
	}

	err := repo.Apply(context.Background(), tx)

	assert.ErrorContains(t, err, "failed to update movements of jd")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Initialize_RollsBackOnLookupFailure(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Initialize(context.Background(), []*models.Account{
		{Owner: "Peter Parker", Movements: []float64{100}, InterestRate: 1, PIN: 5555},
	})

	assert.ErrorContains(t, err, "failed to check user name")
	assert.NoError(t, mock.ExpectationsWereMet())
}
