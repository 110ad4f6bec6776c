// Package ledger computes the figures derived from an account's movements
// and decides whether transfers and loans may proceed.
//
// Every figure is recomputed from the movements on each call. Nothing here
// caches or mutates an account.
package ledger

import (
	"math"
	"sort"

	"bankist/internal/models"
)

const (
	// RowTypeDeposit labels a movement greater than zero
	RowTypeDeposit = "deposit"
	// RowTypeWithdrawal labels every other movement
	RowTypeWithdrawal = "withdrawal"

	// InterestThreshold is the per-deposit interest a deposit must exceed to count
	InterestThreshold = 1.0
)

// Summary holds the derived figures for one account
type Summary struct {
	Balance     float64 `json:"balance"`
	Income      float64 `json:"income"`
	Outgoing    float64 `json:"outgoing"`
	OutgoingAbs float64 `json:"outgoingAbs"`
	Interest    float64 `json:"interest"`
}

// Row is one movement as it appears on screen
type Row struct {
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
}

// Balance returns the sum of all movements
func Balance(movements []float64) float64 {
	total := 0.0
	for _, m := range movements {
		total += m
	}
	return total
}

// Income returns the sum of all deposits
func Income(movements []float64) float64 {
	total := 0.0
	for _, m := range movements {
		if m > 0 {
			total += m
		}
	}
	return total
}

// Outgoing returns the sum of all withdrawals. The result is zero or negative.
func Outgoing(movements []float64) float64 {
	total := 0.0
	for _, m := range movements {
		if m < 0 {
			total += m
		}
	}
	return total
}

// Interest returns the interest paid on deposits at the given percentage rate.
// A deposit whose own interest is not above InterestThreshold is left out of the sum entirely.
func Interest(movements []float64, interestRate float64) float64 {
	total := 0.0
	for _, m := range movements {
		if m <= 0 {
			continue
		}
		term := m * interestRate / 100
		if term > InterestThreshold {
			total += term
		}
	}
	return total
}

// Summarize computes every derived figure for the account
func Summarize(account *models.Account) Summary {
	outgoing := Outgoing(account.Movements)
	return Summary{
		Balance:     Balance(account.Movements),
		Income:      Income(account.Movements),
		Outgoing:    outgoing,
		OutgoingAbs: math.Abs(outgoing),
		Interest:    Interest(account.Movements, account.InterestRate),
	}
}

// DisplayOrder returns the movements as numbered rows.
// In sorted mode the rows are in ascending order of value; the input slice is never reordered.
func DisplayOrder(movements []float64, sorted bool) []Row {
	values := movements
	if sorted {
		values = make([]float64, len(movements))
		copy(values, movements)
		sort.Float64s(values)
	}

	rows := make([]Row, 0, len(values))
	for i, v := range values {
		rowType := RowTypeWithdrawal
		if v > 0 {
			rowType = RowTypeDeposit
		}
		rows = append(rows, Row{Number: i + 1, Type: rowType, Value: v})
	}
	return rows
}
