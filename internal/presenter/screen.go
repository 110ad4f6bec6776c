// Package presenter keeps the display state the session renders into and turns it
// into the screen payload served to clients.
package presenter

import (
	"math"
	"sync"

	"bankist/internal/dto"
	"bankist/internal/ledger"

	"github.com/shopspring/decimal"
)

// DefaultWelcome is shown until someone logs in
const DefaultWelcome = "Log in to get started"

// Screen is the persistent display surface. It outlives individual events, like a page that stays open.
type Screen struct {
	mu       sync.RWMutex
	currency string

	visible  bool
	welcome  string
	sorted   bool
	rows     []ledger.Row
	balance  float64
	income   float64
	outgoing float64
	interest float64
}

func NewScreen(currency string) *Screen {
	return &Screen{
		currency: currency,
		welcome:  DefaultWelcome,
	}
}

// Frame returns a presenter for a single event.
// Display changes go to the screen; a failure notice stays with the frame.
func (s *Screen) Frame() *Frame {
	return &Frame{screen: s}
}

// Snapshot renders the current display state. Figures are only included while the UI is visible.
func (s *Screen) Snapshot() dto.ScreenResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := dto.ScreenResponse{
		Visible:   s.visible,
		Welcome:   s.welcome,
		Sorted:    s.sorted,
		Movements: []dto.MovementView{},
	}

	if !s.visible {
		return view
	}

	for _, row := range s.rows {
		view.Movements = append(view.Movements, dto.MovementView{
			Number:  row.Number,
			Type:    row.Type,
			Value:   row.Value,
			Display: s.format(row.Value),
		})
	}
	view.Balance = s.format(s.balance)
	view.Summary = &dto.SummaryView{
		In:       s.format(s.income),
		Out:      s.format(s.outgoing),
		Interest: s.format(s.interest),
	}

	return view
}

func (s *Screen) format(value float64) string {
	return FormatMoney(value, s.currency)
}

// FormatMoney renders value in its shortest exact decimal form followed by the currency code.
// Sums that overflowed render as Infinity, -Infinity or NaN.
func FormatMoney(value float64, currency string) string {
	switch {
	case math.IsNaN(value):
		return "NaN " + currency
	case math.IsInf(value, 1):
		return "Infinity " + currency
	case math.IsInf(value, -1):
		return "-Infinity " + currency
	}
	return decimal.NewFromFloat(value).String() + " " + currency
}

// Frame implements services.Presenter for one event
type Frame struct {
	screen  *Screen
	failure string
}

func (f *Frame) PresentMovements(rows []ledger.Row, sorted bool) {
	f.screen.mu.Lock()
	defer f.screen.mu.Unlock()

	f.screen.rows = append([]ledger.Row(nil), rows...)
	f.screen.sorted = sorted
}

func (f *Frame) PresentBalance(value float64) {
	f.screen.mu.Lock()
	defer f.screen.mu.Unlock()

	f.screen.balance = value
}

func (f *Frame) PresentSummary(income, outgoingAbs, interest float64) {
	f.screen.mu.Lock()
	defer f.screen.mu.Unlock()

	f.screen.income = income
	f.screen.outgoing = outgoingAbs
	f.screen.interest = interest
}

func (f *Frame) PresentWelcome(firstName string) {
	f.screen.mu.Lock()
	defer f.screen.mu.Unlock()

	f.screen.welcome = "Welcome back " + firstName
}

func (f *Frame) SetUIVisibility(visible bool) {
	f.screen.mu.Lock()
	defer f.screen.mu.Unlock()

	f.screen.visible = visible
}

func (f *Frame) NotifyFailure(message string) {
	f.failure = message
}

// Failure returns the notice raised during the event, if any
func (f *Frame) Failure() string {
	return f.failure
}

// Snapshot renders the screen with this frame's notice attached
func (f *Frame) Snapshot() dto.ScreenResponse {
	view := f.screen.Snapshot()
	view.Notice = f.failure
	return view
}
