package dto

// Session Request DTOs
//
// Every field is the raw text of a form input. The session parses and judges the
// values itself, so only the raw_input rule is applied here.

// LoginRequest represents the login form
type LoginRequest struct {
	UserName string `json:"username" validate:"raw_input"`
	PIN      string `json:"pin" validate:"raw_input"`
}

// TransferRequest represents the transfer form
type TransferRequest struct {
	To     string `json:"to" validate:"raw_input"`
	Amount string `json:"amount" validate:"raw_input"`
}

// LoanRequest represents the loan form
type LoanRequest struct {
	Amount string `json:"amount" validate:"raw_input"`
}

// CloseAccountRequest represents the close account form
type CloseAccountRequest struct {
	UserName string `json:"username" validate:"raw_input"`
	PIN      string `json:"pin" validate:"raw_input"`
}

// Session Response DTOs

// MovementView is one rendered movement row
type MovementView struct {
	Number  int     `json:"number"`
	Type    string  `json:"type"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// SummaryView holds the rendered summary labels
type SummaryView struct {
	In       string `json:"in"`
	Out      string `json:"out"`
	Interest string `json:"interest"`
}

// ScreenResponse is the state of the display after an event
type ScreenResponse struct {
	Visible   bool           `json:"visible"`
	Welcome   string         `json:"welcome"`
	Sorted    bool           `json:"sorted"`
	Movements []MovementView `json:"movements"`
	Balance   string         `json:"balance,omitempty"`
	Summary   *SummaryView   `json:"summary,omitempty"`
	Notice    string         `json:"notice,omitempty"`
}

// AccountListItem is the public view of a directory entry
type AccountListItem struct {
	Owner     string `json:"owner"`
	UserName  string `json:"username"`
	Movements int    `json:"movements"`
}

// AccountListResponse represents the directory listing
type AccountListResponse struct {
	Accounts []AccountListItem `json:"accounts"`
	Total    int               `json:"total"`
}

// HealthResponse represents the health endpoint payload
type HealthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Database string `json:"database"`
}
