package handlers

import (
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves the account directory
type AccountHandler struct {
	directory services.DirectoryServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(directory services.DirectoryServiceInterface) *AccountHandler {
	return &AccountHandler{directory: directory}
}

// ListAccounts returns every account in the directory without PINs
//
// Method: GET /api/v1/accounts
//
// Success Response: 200 OK
//   - accounts: owner, username and movement count, in directory order
//   - total: number of accounts
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.directory.ListAccounts(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.AccountListResponse{
		Accounts: make([]dto.AccountListItem, 0, len(accounts)),
		Total:    len(accounts),
	}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, dto.AccountListItem{
			Owner:     account.Owner,
			UserName:  account.UserName,
			Movements: len(account.Movements),
		})
	}

	return c.JSON(http.StatusOK, response)
}
