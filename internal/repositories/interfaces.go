package repositories

import (
	"context"
	"errors"

	"bankist/internal/ledger"
	"bankist/internal/models"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateUserName  = errors.New("user name already exists")
	ErrEmptyTransaction   = errors.New("transaction has no entries")
	ErrDirectoryNotLoaded = errors.New("directory has not been initialized")
)

// AccountRepositoryInterface defines the contract for the account directory.
// Accounts returned by lookups are copies; movements change only through Apply.
type AccountRepositoryInterface interface {
	Initialize(ctx context.Context, accounts []*models.Account) error
	FindByUserName(ctx context.Context, userName string) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Count(ctx context.Context) (int64, error)
	RemoveByUserName(ctx context.Context, userName string) error
	Apply(ctx context.Context, tx ledger.Transaction) error
	Ping(ctx context.Context) error
}
