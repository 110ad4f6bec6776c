package handlers

import (
	stderrors "errors"
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/presenter"
	"bankist/internal/repositories"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

var _ services.Presenter = (*presenter.Frame)(nil)

// SessionHandler exposes the interactive session over HTTP.
// Every request is one UI event rendered into the shared screen.
type SessionHandler struct {
	session services.SessionServiceInterface
	screen  *presenter.Screen
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session services.SessionServiceInterface, screen *presenter.Screen) *SessionHandler {
	return &SessionHandler{
		session: session,
		screen:  screen,
	}
}

// GetScreen re-renders the logged in account from storage and returns the display state.
// With nobody logged in the screen is returned as it is.
//
// Method: GET /api/v1/session
func (h *SessionHandler) GetScreen(c echo.Context) error {
	frame := h.screen.Frame()
	err := h.session.Refresh(requestContext(c), frame)
	if err != nil && !stderrors.Is(err, services.ErrNotLoggedIn) {
		return h.sendSessionError(c, frame, err)
	}

	return c.JSON(http.StatusOK, frame.Snapshot())
}

// Login handles the login form
//
// Method: POST /api/v1/session/login
//
// Success Response: 200 OK with the rendered screen
// Error Responses:
//   - 400: VALIDATION_001 malformed body or field
//   - 401: AUTH_001 unknown user name or wrong PIN (the screen is left untouched)
//   - 500: SYSTEM_001 storage failure
func (h *SessionHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	frame := h.screen.Frame()
	if err := h.session.Login(requestContext(c), frame, req.UserName, req.PIN); err != nil {
		return h.sendSessionError(c, frame, err)
	}

	return c.JSON(http.StatusOK, frame.Snapshot())
}

// Transfer handles the transfer form
//
// Method: POST /api/v1/session/transfers
//
// Error Responses:
//   - 401: AUTH_002 nobody is logged in
//   - 422: TRANSFER_001 rejected, the message carries the notice shown to the user
func (h *SessionHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	frame := h.screen.Frame()
	if err := h.session.Transfer(requestContext(c), frame, req.Amount, req.To); err != nil {
		return h.sendSessionError(c, frame, err)
	}

	return c.JSON(http.StatusOK, frame.Snapshot())
}

// RequestLoan handles the loan form
//
// Method: POST /api/v1/session/loans
//
// Error Responses:
//   - 401: AUTH_002 nobody is logged in
//   - 422: LOAN_001 not approved
func (h *SessionHandler) RequestLoan(c echo.Context) error {
	var req dto.LoanRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	frame := h.screen.Frame()
	if err := h.session.RequestLoan(requestContext(c), frame, req.Amount); err != nil {
		return h.sendSessionError(c, frame, err)
	}

	return c.JSON(http.StatusOK, frame.Snapshot())
}

// CloseAccount handles the close account form.
// On success the account is gone and the screen is hidden.
//
// Method: POST /api/v1/session/close
func (h *SessionHandler) CloseAccount(c echo.Context) error {
	var req dto.CloseAccountRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	frame := h.screen.Frame()
	if err := h.session.CloseAccount(requestContext(c), frame, req.UserName, req.PIN); err != nil {
		return h.sendSessionError(c, frame, err)
	}

	return c.JSON(http.StatusOK, frame.Snapshot())
}

// ToggleSort flips the movement order
//
// Method: POST /api/v1/session/sort
func (h *SessionHandler) ToggleSort(c echo.Context) error {
	frame := h.screen.Frame()
	if err := h.session.ToggleSort(requestContext(c), frame); err != nil {
		return h.sendSessionError(c, frame, err)
	}

	return c.JSON(http.StatusOK, frame.Snapshot())
}

func (h *SessionHandler) sendSessionError(c echo.Context, frame *presenter.Frame, err error) error {
	var opts []errors.ErrorOption
	if notice := frame.Failure(); notice != "" {
		opts = append(opts, errors.WithMessage(notice))
	}

	switch {
	case stderrors.Is(err, services.ErrAuthenticationFailed):
		return SendError(c, errors.AuthInvalidCredentials)
	case stderrors.Is(err, services.ErrNotLoggedIn):
		return SendError(c, errors.AuthNotLoggedIn)
	case stderrors.Is(err, services.ErrTransferRejected):
		return SendError(c, errors.TransferRejected, opts...)
	case stderrors.Is(err, services.ErrLoanRejected):
		return SendError(c, errors.LoanRejected, opts...)
	case stderrors.Is(err, services.ErrCloseRejected):
		return SendError(c, errors.AccountCloseRejected)
	case stderrors.Is(err, repositories.ErrCircuitBreakerOpen):
		return SendError(c, errors.SystemServiceUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
