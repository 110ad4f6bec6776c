package services

import (
	"context"
	"time"

	"bankist/internal/ledger"
	"bankist/internal/models"
)

// Presenter is the display surface the session writes to.
// Implementations only render; they never call back into the session.
type Presenter interface {
	PresentMovements(rows []ledger.Row, sorted bool)
	PresentBalance(value float64)
	PresentSummary(income, outgoingAbs, interest float64)
	PresentWelcome(firstName string)
	SetUIVisibility(visible bool)
	NotifyFailure(message string)
}

// SessionServiceInterface handles the events of the single interactive session.
// Raw input strings are parsed here, so callers pass form values unchanged.
type SessionServiceInterface interface {
	Login(ctx context.Context, p Presenter, userName, pin string) error
	Transfer(ctx context.Context, p Presenter, amount, recipient string) error
	RequestLoan(ctx context.Context, p Presenter, amount string) error
	CloseAccount(ctx context.Context, p Presenter, userName, pin string) error
	ToggleSort(ctx context.Context, p Presenter) error
	Refresh(ctx context.Context, p Presenter) error
	CurrentUserName() (string, bool)
}

// DirectoryServiceInterface exposes directory-wide operations that sit outside a session
type DirectoryServiceInterface interface {
	LoadDemoAccounts(ctx context.Context) error
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	HealthCheck(ctx context.Context) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogLogin(ctx context.Context, userName string, success bool)
	LogTransfer(ctx context.Context, fromUserName, toUserName string, amount float64, accepted bool)
	LogLoan(ctx context.Context, userName string, amount float64, approved bool)
	LogAccountClosed(ctx context.Context, userName string, success bool)
	LogSortToggled(ctx context.Context, userName string, sorted bool)
	LogLedgerFailure(ctx context.Context, operation string, err error)
}
