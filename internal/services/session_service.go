package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bankist/internal/ledger"
	"bankist/internal/models"
	"bankist/internal/repositories"
)

var (
	ErrNotLoggedIn          = errors.New("no account is logged in")
	ErrAuthenticationFailed = errors.New("user name or pin is incorrect")
	ErrTransferRejected     = errors.New("transfer rejected")
	ErrLoanRejected         = errors.New("loan rejected")
	ErrCloseRejected        = errors.New("account close rejected")
)

const (
	TransferFailureMessage = "Transfer unsuccessful, please check the username/amount and try again"
	LoanFailureMessage     = "Requested amount not approved"
)

// sessionService implements SessionServiceInterface.
// Every event runs to completion under mu, so events never interleave.
type sessionService struct {
	mu         sync.Mutex
	accounts   repositories.AccountRepositoryInterface
	audit      AuditLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	current    string
	loggedIn   bool
	sortActive bool
}

// NewSessionService creates the session controller over the account directory
func NewSessionService(
	accounts repositories.AccountRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SessionServiceInterface {
	return &sessionService{
		accounts: accounts,
		audit:    audit,
		metrics:  metrics,
		logger:   logger,
	}
}

// Login makes the matching account current. A failed attempt changes nothing and shows nothing.
func (s *sessionService) Login(ctx context.Context, p Presenter, userName, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.FindByUserName(ctx, userName)
	if err != nil {
		if !isLookupMiss(err) {
			return fmt.Errorf("failed to look up account: %w", err)
		}
		s.recordEvent(ctx, "login", "failed")
		s.audit.LogLogin(ctx, userName, false)
		return ErrAuthenticationFailed
	}

	if float64(account.PIN) != ledger.ParseNumber(pin) {
		s.recordEvent(ctx, "login", "failed")
		s.audit.LogLogin(ctx, userName, false)
		return ErrAuthenticationFailed
	}

	s.current = account.UserName
	s.loggedIn = true
	s.sortActive = false

	p.PresentWelcome(account.FirstName())
	p.SetUIVisibility(true)
	s.presentSnapshot(p, account)

	s.recordEvent(ctx, "login", "success")
	s.audit.LogLogin(ctx, account.UserName, true)
	return nil
}

// Transfer moves amount from the current account to recipient when the transfer rules allow it
func (s *sessionService) Transfer(ctx context.Context, p Presenter, amount, recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.currentAccount(ctx)
	if err != nil {
		return err
	}

	value := ledger.ParseNumber(amount)

	receiver, err := s.accounts.FindByUserName(ctx, recipient)
	if err != nil {
		if !isLookupMiss(err) {
			return fmt.Errorf("failed to look up recipient: %w", err)
		}
		receiver = nil
	}

	if !ledger.ValidateTransfer(sender, receiver, value) {
		p.NotifyFailure(TransferFailureMessage)
		s.recordEvent(ctx, "transfer", "rejected")
		s.audit.LogTransfer(ctx, sender.UserName, recipient, value, false)
		return ErrTransferRejected
	}

	if err := s.apply(ctx, ledger.NewTransfer(sender, receiver, value)); err != nil {
		return err
	}

	s.recordEvent(ctx, "transfer", "accepted")
	s.metrics.RecordGauge(MetricMovementAmount, value, map[string]string{"kind": ledger.KindTransfer})
	s.audit.LogTransfer(ctx, sender.UserName, receiver.UserName, value, true)

	return s.refreshLocked(ctx, p)
}

// RequestLoan deposits amount into the current account when some movement covers a tenth of it
func (s *sessionService) RequestLoan(ctx context.Context, p Presenter, amount string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.currentAccount(ctx)
	if err != nil {
		return err
	}

	value := ledger.ParseNumber(amount)

	if !ledger.ValidateLoan(account, value) {
		p.NotifyFailure(LoanFailureMessage)
		s.recordEvent(ctx, "loan", "rejected")
		s.audit.LogLoan(ctx, account.UserName, value, false)
		return ErrLoanRejected
	}

	if err := s.apply(ctx, ledger.NewLoan(account, value)); err != nil {
		return err
	}

	s.recordEvent(ctx, "loan", "accepted")
	s.metrics.RecordGauge(MetricMovementAmount, value, map[string]string{"kind": ledger.KindLoan})
	s.audit.LogLoan(ctx, account.UserName, value, true)

	return s.refreshLocked(ctx, p)
}

// CloseAccount removes the current account when both credentials match it, then logs out
func (s *sessionService) CloseAccount(ctx context.Context, p Presenter, userName, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.currentAccount(ctx)
	if err != nil {
		return err
	}

	if userName != account.UserName || ledger.ParseNumber(pin) != float64(account.PIN) {
		s.recordEvent(ctx, "close", "rejected")
		s.audit.LogAccountClosed(ctx, account.UserName, false)
		return ErrCloseRejected
	}

	if err := s.accounts.RemoveByUserName(ctx, account.UserName); err != nil {
		s.audit.LogLedgerFailure(ctx, "close", err)
		return fmt.Errorf("failed to remove account: %w", err)
	}

	s.current = ""
	s.loggedIn = false
	s.sortActive = false

	p.SetUIVisibility(false)

	s.recordEvent(ctx, "close", "accepted")
	s.audit.LogAccountClosed(ctx, account.UserName, true)
	s.recordDirectorySize(ctx)
	return nil
}

// ToggleSort flips the display order and re-renders only the movements
func (s *sessionService) ToggleSort(ctx context.Context, p Presenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.currentAccount(ctx)
	if err != nil {
		return err
	}

	s.sortActive = !s.sortActive
	p.PresentMovements(ledger.DisplayOrder(account.Movements, s.sortActive), s.sortActive)

	s.recordEvent(ctx, "sort", "accepted")
	s.audit.LogSortToggled(ctx, account.UserName, s.sortActive)
	return nil
}

// Refresh re-renders the full snapshot of the current account
func (s *sessionService) Refresh(ctx context.Context, p Presenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx, p)
}

func (s *sessionService) CurrentUserName() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, s.loggedIn
}

func (s *sessionService) refreshLocked(ctx context.Context, p Presenter) error {
	account, err := s.currentAccount(ctx)
	if err != nil {
		return err
	}

	s.presentSnapshot(p, account)
	return nil
}

// currentAccount loads a fresh copy of the logged-in account
func (s *sessionService) currentAccount(ctx context.Context) (*models.Account, error) {
	if !s.loggedIn {
		return nil, ErrNotLoggedIn
	}

	account, err := s.accounts.FindByUserName(ctx, s.current)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			s.logger.WarnContext(ctx, "current account vanished from directory", "user_name", s.current)
			s.current = ""
			s.loggedIn = false
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load current account: %w", err)
	}
	return account, nil
}

func (s *sessionService) presentSnapshot(p Presenter, account *models.Account) {
	summary := ledger.Summarize(account)

	p.PresentMovements(ledger.DisplayOrder(account.Movements, s.sortActive), s.sortActive)
	p.PresentBalance(summary.Balance)
	p.PresentSummary(summary.Income, summary.OutgoingAbs, summary.Interest)
}

func (s *sessionService) apply(ctx context.Context, tx ledger.Transaction) error {
	start := time.Now()
	err := s.accounts.Apply(ctx, tx)
	s.metrics.RecordProcessingTime(MetricLedgerApply, time.Since(start))

	if err != nil {
		s.recordEvent(ctx, tx.Kind, "failed")
		s.audit.LogLedgerFailure(ctx, tx.Kind, err)
		return fmt.Errorf("failed to apply %s: %w", tx.Kind, err)
	}
	return nil
}

func (s *sessionService) recordEvent(ctx context.Context, event, outcome string) {
	s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{
		"event":   event,
		"outcome": outcome,
	})
	s.logger.DebugContext(ctx, "session event", "event", event, "outcome", outcome)
}

func (s *sessionService) recordDirectorySize(ctx context.Context) {
	count, err := s.accounts.Count(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to count accounts", "error", err)
		return
	}
	s.metrics.RecordGauge(MetricDirectoryAccount, float64(count), nil)
}

func isLookupMiss(err error) bool {
	return errors.Is(err, repositories.ErrAccountNotFound) || errors.Is(err, repositories.ErrDirectoryNotLoaded)
}
