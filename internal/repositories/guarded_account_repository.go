package repositories

import (
	"context"
	"errors"
	"fmt"

	"bankist/internal/ledger"
	"bankist/internal/models"
)

// guardedAccountRepository puts a circuit breaker in front of a storage-backed directory.
// Lookup misses and rejected input are answers, not failures, and never trip the breaker.
type guardedAccountRepository struct {
	next    AccountRepositoryInterface
	breaker *CircuitBreaker
}

// NewGuardedAccountRepository wraps next so that a store that keeps failing is not called
// again until the breaker resets. Calls made while it is open return ErrCircuitBreakerOpen.
func NewGuardedAccountRepository(next AccountRepositoryInterface, breaker *CircuitBreaker) AccountRepositoryInterface {
	return &guardedAccountRepository{
		next:    next,
		breaker: breaker,
	}
}

func (r *guardedAccountRepository) Initialize(ctx context.Context, accounts []*models.Account) error {
	return r.guard(func() error {
		return r.next.Initialize(ctx, accounts)
	})
}

func (r *guardedAccountRepository) FindByUserName(ctx context.Context, userName string) (*models.Account, error) {
	var account *models.Account
	err := r.guard(func() error {
		var err error
		account, err = r.next.FindByUserName(ctx, userName)
		return err
	})
	return account, err
}

func (r *guardedAccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	var accounts []*models.Account
	err := r.guard(func() error {
		var err error
		accounts, err = r.next.List(ctx)
		return err
	})
	return accounts, err
}

func (r *guardedAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.guard(func() error {
		var err error
		count, err = r.next.Count(ctx)
		return err
	})
	return count, err
}

func (r *guardedAccountRepository) RemoveByUserName(ctx context.Context, userName string) error {
	return r.guard(func() error {
		return r.next.RemoveByUserName(ctx, userName)
	})
}

func (r *guardedAccountRepository) Apply(ctx context.Context, tx ledger.Transaction) error {
	return r.guard(func() error {
		return r.next.Apply(ctx, tx)
	})
}

// Ping always reaches the store so health checks can observe recovery
func (r *guardedAccountRepository) Ping(ctx context.Context) error {
	if err := r.next.Ping(ctx); err != nil {
		r.breaker.RecordFailure()
		return err
	}
	return nil
}

func (r *guardedAccountRepository) guard(call func() error) error {
	if r.breaker.IsOpen() {
		return fmt.Errorf("account storage unavailable: %w", ErrCircuitBreakerOpen)
	}

	err := call()
	if err != nil && !isAnswer(err) {
		r.breaker.RecordFailure()
		return err
	}

	r.breaker.RecordSuccess()
	return err
}

func isAnswer(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrDuplicateUserName) ||
		errors.Is(err, ErrEmptyTransaction) ||
		errors.Is(err, ErrDirectoryNotLoaded) ||
		models.IsValidationError(err) ||
		errors.Is(err, context.Canceled)
}
