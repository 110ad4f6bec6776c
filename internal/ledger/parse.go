package ledger

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var integerBases = map[string]int{
	"0x": 16,
	"0o": 8,
	"0b": 2,
}

// ParseNumber converts raw user input to a number the way a browser form field does.
// Blank input is zero. Unsigned 0x, 0o and 0b integers and Infinity are accepted.
// Anything else that is not a decimal number is NaN, so every comparison made by
// the validators on it is false.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 {
		if base, ok := integerBases[strings.ToLower(s[:2])]; ok {
			return parseInteger(s[2:], base)
		}
	}

	// ParseFloat also knows inf, nan, hex floats and underscores; a form field does not
	if strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune("0123456789.eE+-", r) }) >= 0 {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return value
}

func parseInteger(digits string, base int) float64 {
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	value, _ := new(big.Float).SetInt(n).Float64()
	return value
}
