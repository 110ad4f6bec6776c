package repositories

import (
	"context"
	"fmt"
	"sync"

	"bankist/internal/ledger"
	"bankist/internal/models"
)

// memoryAccountRepository keeps the directory in process memory, in insertion order
type memoryAccountRepository struct {
	mu       sync.RWMutex
	loaded   bool
	accounts []*models.Account
}

// NewMemoryAccountRepository creates an empty in-memory directory
func NewMemoryAccountRepository() AccountRepositoryInterface {
	return &memoryAccountRepository{}
}

// Initialize assigns user names and loads accounts in the given order
func (r *memoryAccountRepository) Initialize(ctx context.Context, accounts []*models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	models.AssignUserNames(accounts)

	seen := make(map[string]bool, len(r.accounts)+len(accounts))
	for _, existing := range r.accounts {
		seen[existing.UserName] = true
	}

	loaded := make([]*models.Account, 0, len(accounts))
	for _, account := range accounts {
		if err := account.Validate(); err != nil {
			return fmt.Errorf("invalid account %q: %w", account.Owner, err)
		}
		if seen[account.UserName] {
			return fmt.Errorf("%w: %s", ErrDuplicateUserName, account.UserName)
		}
		seen[account.UserName] = true

		stored := account.Clone()
		if stored.Movements == nil {
			stored.Movements = []float64{}
		}
		loaded = append(loaded, stored)
	}

	r.accounts = append(r.accounts, loaded...)
	r.loaded = true
	return nil
}

// FindByUserName returns a copy of the account with the exact user name
func (r *memoryAccountRepository) FindByUserName(ctx context.Context, userName string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return nil, ErrDirectoryNotLoaded
	}

	if i := r.indexOf(userName); i >= 0 {
		return r.accounts[i].Clone(), nil
	}
	return nil, ErrAccountNotFound
}

// List returns copies of all accounts in directory order
func (r *memoryAccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a.Clone())
	}
	return out, nil
}

// Count returns the number of accounts in the directory
func (r *memoryAccountRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.accounts)), nil
}

// RemoveByUserName removes the account with the exact user name
func (r *memoryAccountRepository) RemoveByUserName(ctx context.Context, userName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userName)
	if i < 0 {
		return ErrAccountNotFound
	}

	r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
	return nil
}

// Apply appends every entry of tx, or none of them when an account is missing
func (r *memoryAccountRepository) Apply(ctx context.Context, tx ledger.Transaction) error {
	if len(tx.Entries) == 0 {
		return ErrEmptyTransaction
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byUserName := make(map[string]*models.Account, len(tx.Entries))
	for _, userName := range tx.UserNames() {
		i := r.indexOf(userName)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, userName)
		}
		byUserName[userName] = r.accounts[i]
	}

	tx.ApplyTo(byUserName)
	return nil
}

// Ping always succeeds for the in-memory directory
func (r *memoryAccountRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *memoryAccountRepository) indexOf(userName string) int {
	for i, a := range r.accounts {
		if a.UserName == userName {
			return i
		}
	}
	return -1
}
