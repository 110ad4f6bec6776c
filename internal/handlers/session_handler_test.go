package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankist/internal/dto"
	"bankist/internal/ledger"
	"bankist/internal/presenter"
	"bankist/internal/repositories"
	"bankist/internal/services"
	"bankist/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestSessionHandler(t *testing.T) {
	suite.Run(t, new(SessionHandlerSuite))
}

type SessionHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	session *service_mocks.MockSessionServiceInterface
	screen  *presenter.Screen
	handler *SessionHandler
	e       *echo.Echo
}

func (s *SessionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.session = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.screen = presenter.NewScreen("EUR")
	s.handler = NewSessionHandler(s.session, s.screen)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *SessionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionHandlerSuite) newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *SessionHandlerSuite) decodeScreen(rec *httptest.ResponseRecorder) dto.ScreenResponse {
	var view dto.ScreenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func (s *SessionHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func renderJonas(p services.Presenter) {
	movements := []float64{200, 450, -400, 3000, -650, -130, 70, 1300}
	p.PresentWelcome("Jonas")
	p.SetUIVisibility(true)
	p.PresentMovements(ledger.DisplayOrder(movements, false), false)
	p.PresentBalance(ledger.Balance(movements))
	p.PresentSummary(5020, 1180, 59.4)
}

func (s *SessionHandlerSuite) TestLogin() {
	s.Run("successful login renders the screen", func() {
		s.session.EXPECT().
			Login(gomock.Any(), gomock.Any(), "js", "1111").
			DoAndReturn(func(ctx context.Context, p services.Presenter, userName, pin string) error {
				s.Equal("trace-123", ctx.Value(services.CorrelationIDKey))
				renderJonas(p)
				return nil
			})

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/login", `{"username":"js","pin":"1111"}`)

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)

		view := s.decodeScreen(rec)
		s.True(view.Visible)
		s.Equal("Welcome back Jonas", view.Welcome)
		s.Equal("3840 EUR", view.Balance)
		s.Len(view.Movements, 8)
		s.Require().NotNil(view.Summary)
		s.Equal("59.4 EUR", view.Summary.Interest)
	})

	s.Run("failed login leaves the screen untouched", func() {
		s.screen = presenter.NewScreen("EUR")
		s.handler = NewSessionHandler(s.session, s.screen)

		s.session.EXPECT().
			Login(gomock.Any(), gomock.Any(), "js", "9999").
			Return(services.ErrAuthenticationFailed)

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/login", `{"username":"js","pin":"9999"}`)

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_001", s.decodeError(rec).Error.Code)
		s.Equal("trace-123", s.decodeError(rec).Error.TraceID)
		s.False(s.screen.Snapshot().Visible)
		s.Equal(presenter.DefaultWelcome, s.screen.Snapshot().Welcome)
	})

	s.Run("invalid request body", func() {
		c, rec := s.newContext(http.MethodPost, "/api/v1/session/login", "invalid json")

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
	})

	s.Run("control characters are refused", func() {
		c, _ := s.newContext(http.MethodPost, "/api/v1/session/login", `{"username":"js\u0000","pin":"1111"}`)

		s.Error(s.handler.Login(c))
	})

	s.Run("empty fields reach the session", func() {
		s.session.EXPECT().
			Login(gomock.Any(), gomock.Any(), "", "").
			Return(services.ErrAuthenticationFailed)

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/login", `{}`)

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *SessionHandlerSuite) TestTransfer() {
	s.Run("accepted transfer returns the new screen", func() {
		s.session.EXPECT().
			Transfer(gomock.Any(), gomock.Any(), "100", "jd").
			DoAndReturn(func(_ context.Context, p services.Presenter, _, _ string) error {
				renderJonas(p)
				return nil
			})

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/transfers", `{"to":"jd","amount":"100"}`)

		s.NoError(s.handler.Transfer(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Empty(s.decodeScreen(rec).Notice)
	})

	s.Run("rejected transfer carries the notice", func() {
		s.session.EXPECT().
			Transfer(gomock.Any(), gomock.Any(), "99999", "jd").
			DoAndReturn(func(_ context.Context, p services.Presenter, _, _ string) error {
				p.NotifyFailure(services.TransferFailureMessage)
				return services.ErrTransferRejected
			})

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/transfers", `{"to":"jd","amount":"99999"}`)

		s.NoError(s.handler.Transfer(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		response := s.decodeError(rec)
		s.Equal("TRANSFER_001", response.Error.Code)
		s.Equal(services.TransferFailureMessage, response.Error.Message)
	})

	s.Run("not logged in", func() {
		s.session.EXPECT().
			Transfer(gomock.Any(), gomock.Any(), "100", "jd").
			Return(services.ErrNotLoggedIn)

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/transfers", `{"to":"jd","amount":"100"}`)

		s.NoError(s.handler.Transfer(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_002", s.decodeError(rec).Error.Code)
	})
}

func (s *SessionHandlerSuite) TestRequestLoan() {
	s.Run("rejected loan", func() {
		s.session.EXPECT().
			RequestLoan(gomock.Any(), gomock.Any(), "1000000").
			DoAndReturn(func(_ context.Context, p services.Presenter, _ string) error {
				p.NotifyFailure(services.LoanFailureMessage)
				return services.ErrLoanRejected
			})

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/loans", `{"amount":"1000000"}`)

		s.NoError(s.handler.RequestLoan(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		response := s.decodeError(rec)
		s.Equal("LOAN_001", response.Error.Code)
		s.Equal("Requested amount not approved", response.Error.Message)
	})

	s.Run("storage failure is hidden", func() {
		s.session.EXPECT().
			RequestLoan(gomock.Any(), gomock.Any(), "1000").
			Return(stderrors.New("failed to apply loan: connection reset"))

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/loans", `{"amount":"1000"}`)

		s.NoError(s.handler.RequestLoan(c))
		s.Equal(http.StatusInternalServerError, rec.Code)

		response := s.decodeError(rec)
		s.Equal("SYSTEM_001", response.Error.Code)
		s.NotContains(response.Error.Message, "connection reset")
	})
}

func (s *SessionHandlerSuite) TestCloseAccount() {
	s.Run("successful close hides the screen", func() {
		s.session.EXPECT().
			CloseAccount(gomock.Any(), gomock.Any(), "js", "1111").
			DoAndReturn(func(_ context.Context, p services.Presenter, _, _ string) error {
				p.SetUIVisibility(false)
				return nil
			})

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/close", `{"username":"js","pin":"1111"}`)

		s.NoError(s.handler.CloseAccount(c))
		s.Equal(http.StatusOK, rec.Code)

		view := s.decodeScreen(rec)
		s.False(view.Visible)
		s.Empty(view.Movements)
		s.Nil(view.Summary)
	})

	s.Run("mismatched credentials", func() {
		s.session.EXPECT().
			CloseAccount(gomock.Any(), gomock.Any(), "jd", "1111").
			Return(services.ErrCloseRejected)

		c, rec := s.newContext(http.MethodPost, "/api/v1/session/close", `{"username":"jd","pin":"1111"}`)

		s.NoError(s.handler.CloseAccount(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal("ACCOUNT_002", s.decodeError(rec).Error.Code)
	})
}

func (s *SessionHandlerSuite) TestToggleSort() {
	s.session.EXPECT().
		ToggleSort(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p services.Presenter) error {
			p.SetUIVisibility(true)
			p.PresentMovements(ledger.DisplayOrder([]float64{200, -400, 3000}, true), true)
			return nil
		})

	c, rec := s.newContext(http.MethodPost, "/api/v1/session/sort", "")

	s.NoError(s.handler.ToggleSort(c))
	s.Equal(http.StatusOK, rec.Code)

	view := s.decodeScreen(rec)
	s.True(view.Sorted)
	s.Require().Len(view.Movements, 3)
	s.Equal(float64(-400), view.Movements[0].Value)
	s.Equal(float64(3000), view.Movements[2].Value)
}

func (s *SessionHandlerSuite) TestGetScreen() {
	s.Run("nobody logged in", func() {
		s.session.EXPECT().
			Refresh(gomock.Any(), gomock.Any()).
			Return(services.ErrNotLoggedIn)

		c, rec := s.newContext(http.MethodGet, "/api/v1/session", "")

		s.NoError(s.handler.GetScreen(c))
		s.Equal(http.StatusOK, rec.Code)

		view := s.decodeScreen(rec)
		s.False(view.Visible)
		s.Equal(presenter.DefaultWelcome, view.Welcome)
		s.Empty(view.Movements)
	})

	s.Run("logged in account is re-rendered", func() {
		s.session.EXPECT().
			Refresh(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p services.Presenter) error {
				renderJonas(p)
				return nil
			})

		c, rec := s.newContext(http.MethodGet, "/api/v1/session", "")

		s.NoError(s.handler.GetScreen(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("3840 EUR", s.decodeScreen(rec).Balance)
	})

	s.Run("storage unavailable", func() {
		s.session.EXPECT().
			Refresh(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to load current account: %w", repositories.ErrCircuitBreakerOpen))

		c, rec := s.newContext(http.MethodGet, "/api/v1/session", "")

		s.NoError(s.handler.GetScreen(c))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal("SYSTEM_003", s.decodeError(rec).Error.Code)
	})
}
