package presenter

import (
	"math"
	"testing"

	"bankist/internal/dto"
	"bankist/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		value    float64
		currency string
		expected string
	}{
		{value: 3840, currency: "EUR", expected: "3840 EUR"},
		{value: 0, currency: "EUR", expected: "0 EUR"},
		{value: -400, currency: "EUR", expected: "-400 EUR"},
		{value: 59.4, currency: "EUR", expected: "59.4 EUR"},
		{value: 0.1 + 0.2, currency: "USD", expected: "0.30000000000000004 USD"},
		{value: math.Inf(1), currency: "EUR", expected: "Infinity EUR"},
		{value: math.Inf(-1), currency: "EUR", expected: "-Infinity EUR"},
		{value: math.NaN(), currency: "EUR", expected: "NaN EUR"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatMoney(tc.value, tc.currency))
		})
	}
}

func TestScreen_HiddenUntilLogin(t *testing.T) {
	screen := NewScreen("EUR")

	view := screen.Snapshot()

	assert.False(t, view.Visible)
	assert.Equal(t, DefaultWelcome, view.Welcome)
	assert.Empty(t, view.Movements)
	assert.Empty(t, view.Balance)
	assert.Nil(t, view.Summary)
}

func TestScreen_FrameRendersSnapshot(t *testing.T) {
	screen := NewScreen("EUR")
	frame := screen.Frame()
	movements := []float64{200, -400, 3000}

	frame.PresentWelcome("Jonas")
	frame.SetUIVisibility(true)
	frame.PresentMovements(ledger.DisplayOrder(movements, false), false)
	frame.PresentBalance(ledger.Balance(movements))
	frame.PresentSummary(3200, 400, 38.4)

	view := frame.Snapshot()

	assert.True(t, view.Visible)
	assert.Equal(t, "Welcome back Jonas", view.Welcome)
	assert.False(t, view.Sorted)
	require.Len(t, view.Movements, 3)
	assert.Equal(t, 2, view.Movements[1].Number)
	assert.Equal(t, ledger.RowTypeWithdrawal, view.Movements[1].Type)
	assert.Equal(t, "-400 EUR", view.Movements[1].Display)
	assert.Equal(t, "2800 EUR", view.Balance)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "3200 EUR", view.Summary.In)
	assert.Equal(t, "400 EUR", view.Summary.Out)
	assert.Equal(t, "38.4 EUR", view.Summary.Interest)
	assert.Empty(t, view.Notice)
}

func TestScreen_FailureStaysWithItsFrame(t *testing.T) {
	screen := NewScreen("EUR")
	failing := screen.Frame()
	failing.NotifyFailure("Requested amount not approved")

	assert.Equal(t, "Requested amount not approved", failing.Failure())
	assert.Equal(t, "Requested amount not approved", failing.Snapshot().Notice)
	assert.Empty(t, screen.Frame().Snapshot().Notice)
	assert.Empty(t, screen.Snapshot().Notice)
}

func TestScreen_StateOutlivesFrames(t *testing.T) {
	screen := NewScreen("EUR")

	first := screen.Frame()
	first.SetUIVisibility(true)
	first.PresentMovements(ledger.DisplayOrder([]float64{5, -1}, true), true)

	view := screen.Frame().Snapshot()
	assert.True(t, view.Visible)
	assert.True(t, view.Sorted)
	assert.Equal(t, float64(-1), view.Movements[0].Value)

	screen.Frame().SetUIVisibility(false)
	assert.Empty(t, screen.Snapshot().Movements)
}

func TestFrame_CopiesRows(t *testing.T) {
	screen := NewScreen("EUR")
	frame := screen.Frame()
	rows := ledger.DisplayOrder([]float64{10}, false)

	frame.SetUIVisibility(true)
	frame.PresentMovements(rows, false)
	rows[0].Value = 99

	assert.Equal(t, float64(10), screen.Snapshot().Movements[0].Value)
}

func TestScreen_OverflowedFiguresStillRender(t *testing.T) {
	screen := NewScreen("EUR")
	frame := screen.Frame()

	movements := []float64{1.7e308, 1.7e308, -400}
	frame.SetUIVisibility(true)
	frame.PresentMovements(ledger.DisplayOrder(movements, false), false)
	frame.PresentBalance(ledger.Balance(movements))
	frame.PresentSummary(ledger.Income(movements), 400, ledger.Interest(movements, 1.2))

	var view dto.ScreenResponse
	require.NotPanics(t, func() { view = screen.Snapshot() })

	assert.Equal(t, "Infinity EUR", view.Balance)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "Infinity EUR", view.Summary.In)
	assert.Equal(t, "400 EUR", view.Summary.Out)
	assert.Len(t, view.Movements, 3)
}
