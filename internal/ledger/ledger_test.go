package ledger

import (
	"math"
	"testing"

	"bankist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
	accounts []*models.Account
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.accounts = models.DemoAccounts()
	models.AssignUserNames(s.accounts)
}

func (s *LedgerTestSuite) TestBalance_SumOfMovements() {
	s.Equal(float64(3840), Balance(s.accounts[0].Movements))
	s.Equal(float64(11720), Balance(s.accounts[1].Movements))
	s.Equal(float64(0), Balance(nil))
}

func (s *LedgerTestSuite) TestIncomeAndOutgoing() {
	movements := s.accounts[0].Movements

	s.Equal(float64(5020), Income(movements))
	s.Equal(float64(-1180), Outgoing(movements))
	s.Equal(Balance(movements), Income(movements)+Outgoing(movements))
}

func (s *LedgerTestSuite) TestInterest_PerDepositThreshold() {
	testCases := []struct {
		name      string
		movements []float64
		rate      float64
		expected  float64
	}{
		{name: "small deposit excluded", movements: []float64{70}, rate: 1.2, expected: 0},
		{name: "large deposit included", movements: []float64{3000}, rate: 1.2, expected: 36},
		{name: "exactly one is excluded", movements: []float64{100}, rate: 1, expected: 0},
		{name: "withdrawals ignored", movements: []float64{-5000}, rate: 2, expected: 0},
		{name: "threshold applies per deposit not to total", movements: []float64{80, 80, 80}, rate: 1, expected: 0},
		{name: "mixed", movements: []float64{200, 450, -400, 3000, 70}, rate: 1.2, expected: 2.4 + 5.4 + 36},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.InDelta(tc.expected, Interest(tc.movements, tc.rate), 1e-9)
		})
	}
}

func (s *LedgerTestSuite) TestSummarize_Account1() {
	summary := Summarize(s.accounts[0])

	s.Equal(float64(3840), summary.Balance)
	s.Equal(float64(5020), summary.Income)
	s.Equal(float64(-1180), summary.Outgoing)
	s.Equal(float64(1180), summary.OutgoingAbs)
	// 200, 450, 3000 and 1300 earn interest above 1; 70 does not
	s.InDelta(2.4+5.4+36+15.6, summary.Interest, 1e-9)
}

func (s *LedgerTestSuite) TestSummarize_NoWithdrawals() {
	summary := Summarize(s.accounts[3])

	s.Equal(float64(0), summary.Outgoing)
	s.False(math.Signbit(summary.OutgoingAbs))
}

func (s *LedgerTestSuite) TestSummarize_RecomputedAfterMutation() {
	account := s.accounts[0]
	before := Summarize(account)

	account.Movements = append(account.Movements, -100)
	after := Summarize(account)

	s.Equal(before.Balance-100, after.Balance)
	s.Equal(before.OutgoingAbs+100, after.OutgoingAbs)
	s.Equal(before.Income, after.Income)
}

func (s *LedgerTestSuite) TestDisplayOrder_Natural() {
	rows := DisplayOrder([]float64{200, -400, 3000}, false)

	s.Equal([]Row{
		{Number: 1, Type: RowTypeDeposit, Value: 200},
		{Number: 2, Type: RowTypeWithdrawal, Value: -400},
		{Number: 3, Type: RowTypeDeposit, Value: 3000},
	}, rows)
}

func (s *LedgerTestSuite) TestDisplayOrder_SortedDoesNotMutate() {
	movements := s.accounts[0].Movements
	original := append([]float64(nil), movements...)

	sorted := DisplayOrder(movements, true)
	s.Equal(original, movements)

	values := make([]float64, len(sorted))
	for i, row := range sorted {
		values[i] = row.Value
		s.Equal(i+1, row.Number)
	}
	s.Equal([]float64{-650, -400, -130, 70, 200, 450, 1300, 3000}, values)

	natural := DisplayOrder(movements, false)
	for i, row := range natural {
		s.Equal(original[i], row.Value)
	}
}

func (s *LedgerTestSuite) TestDisplayOrder_ZeroIsWithdrawal() {
	rows := DisplayOrder([]float64{0}, false)
	s.Equal(RowTypeWithdrawal, rows[0].Type)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		isNaN    bool
	}{
		{name: "integer", raw: "100", expected: 100},
		{name: "decimal", raw: "12.5", expected: 12.5},
		{name: "negative", raw: "-50", expected: -50},
		{name: "surrounding whitespace", raw: "  1111 ", expected: 1111},
		{name: "blank is zero", raw: "", expected: 0},
		{name: "spaces are zero", raw: "   ", expected: 0},
		{name: "letters", raw: "abc", isNaN: true},
		{name: "trailing garbage", raw: "10abc", isNaN: true},
		{name: "exponent", raw: "1.7e308", expected: 1.7e308},
		{name: "leading dot", raw: ".5", expected: 0.5},
		{name: "explicit plus", raw: "+25", expected: 25},
		{name: "hex integer", raw: "0x10", expected: 16},
		{name: "upper case hex prefix", raw: "0XfF", expected: 255},
		{name: "octal integer", raw: "0o17", expected: 15},
		{name: "binary integer", raw: "0b101", expected: 5},
		{name: "signed hex", raw: "-0x10", isNaN: true},
		{name: "sign after prefix", raw: "0x-10", isNaN: true},
		{name: "bare prefix", raw: "0x", isNaN: true},
		{name: "hex float", raw: "0x1p4", isNaN: true},
		{name: "underscores", raw: "1_000", isNaN: true},
		{name: "infinity", raw: "Infinity", expected: math.Inf(1)},
		{name: "negative infinity", raw: "-Infinity", expected: math.Inf(-1)},
		{name: "overflow", raw: "1e309", expected: math.Inf(1)},
		{name: "lower case inf", raw: "inf", isNaN: true},
		{name: "nan literal", raw: "NaN", isNaN: true},
		{name: "lone dot", raw: ".", isNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.raw)
			if tt.isNaN {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
