package models

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"
)

var (
	ErrOwnerRequired   = errors.New("owner is required")
	ErrInvalidUserName = errors.New("user name does not match owner initials")
	ErrInvalidPIN      = errors.New("pin must be a positive number")
)

// Account represents a bank account and its movement history
type Account struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Owner        string    `gorm:"type:varchar(100);not null" json:"owner"`
	UserName     string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"userName"`
	Movements    []float64 `gorm:"type:text;serializer:json" json:"movements"`
	InterestRate float64   `gorm:"not null;default:0" json:"interestRate"`
	PIN          int       `gorm:"column:pin;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.UserName == "" {
		a.UserName = ComputeUserName(a.Owner)
	}

	if a.Movements == nil {
		a.Movements = []float64{}
	}

	return a.Validate()
}

// IsValidationError reports whether err comes from Account.Validate
func IsValidationError(err error) bool {
	return errors.Is(err, ErrOwnerRequired) ||
		errors.Is(err, ErrInvalidUserName) ||
		errors.Is(err, ErrInvalidPIN)
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Owner) == "" {
		return ErrOwnerRequired
	}

	if a.UserName != ComputeUserName(a.Owner) {
		return ErrInvalidUserName
	}

	if a.PIN <= 0 {
		return ErrInvalidPIN
	}

	return nil
}

// FirstName returns the first word of the owner's name
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Clone returns a copy that shares no movement storage with a
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = make([]float64, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return &cp
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// ComputeUserName derives a user name from the lowercase initial of each
// whitespace-separated word of the owner's name
func ComputeUserName(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// AssignUserNames sets the user name of every account from its owner
func AssignUserNames(accounts []*Account) {
	for _, account := range accounts {
		account.UserName = ComputeUserName(account.Owner)
	}
}
