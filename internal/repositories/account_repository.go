package repositories

import (
	"context"
	"errors"
	"fmt"

	"bankist/internal/ledger"
	"bankist/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements AccountRepositoryInterface on top of gorm
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a gorm-backed account directory
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Initialize assigns user names and inserts the accounts in order, all or nothing
func (r *accountRepository) Initialize(ctx context.Context, accounts []*models.Account) error {
	models.AssignUserNames(accounts)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, account := range accounts {
			var existing int64
			if err := tx.Model(&models.Account{}).Where("user_name = ?", account.UserName).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to check user name: %w", err)
			}
			if existing > 0 {
				return fmt.Errorf("%w: %s", ErrDuplicateUserName, account.UserName)
			}

			if err := tx.Create(account).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("%w: %s", ErrDuplicateUserName, account.UserName)
				}
				return fmt.Errorf("failed to create account %q: %w", account.Owner, err)
			}
		}
		return nil
	})
}

// FindByUserName retrieves an account by its exact user name
func (r *accountRepository) FindByUserName(ctx context.Context, userName string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by user name: %w", err)
	}
	return &account, nil
}

// List retrieves all accounts in directory order
func (r *accountRepository) List(ctx context.Context) ([]*models.Account, error) {
	var accounts []*models.Account
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Count returns the number of accounts
func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return total, nil
}

// RemoveByUserName deletes the account with the exact user name
func (r *accountRepository) RemoveByUserName(ctx context.Context, userName string) error {
	result := r.db.WithContext(ctx).Where("user_name = ?", userName).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Apply appends every entry of tx inside one database transaction with row locking
func (r *accountRepository) Apply(ctx context.Context, t ledger.Transaction) error {
	if len(t.Entries) == 0 {
		return ErrEmptyTransaction
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		byUserName := make(map[string]*models.Account, len(t.Entries))
		for _, userName := range t.UserNames() {
			account := &models.Account{}
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_name = ?", userName).
				First(account).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrAccountNotFound, userName)
				}
				return fmt.Errorf("failed to lock account %s: %w", userName, err)
			}
			byUserName[userName] = account
		}

		t.ApplyTo(byUserName)

		for _, userName := range t.UserNames() {
			account := byUserName[userName]
			if err := tx.Model(account).Select("movements").Updates(account).Error; err != nil {
				return fmt.Errorf("failed to update movements of %s: %w", userName, err)
			}
		}
		return nil
	})
}

// Ping checks that the underlying database is reachable
func (r *accountRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
