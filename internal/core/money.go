// Package core provides money parsing and handling utilities.
//
// Amounts are Korean won, which has no fractional subunit in circulation:
// everything is stored and summed as whole-won int64 values so repeated
// additions never lose precision.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseWon converts an amount string to whole won.
//
// It accepts plain digit strings ("9000"), strings with thousands grouping
// ("9,000") and a decimal tail ("9000.5"), which is half-up rounded to the
// nearest won. Signs are rejected; amounts are never negative.
//
// Examples:
//
//	ParseWon("9000")    -> 9000, nil
//	ParseWon("9,000")   -> 9000, nil
//	ParseWon("9000.4")  -> 9000, nil (rounds down)
//	ParseWon("9000.5")  -> 9001, nil (rounds up)
func ParseWon(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	// Commas are grouping separators here, not decimal marks.
	s = strings.ReplaceAll(s, ",", "")

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	won, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Half-up rounding on the first fractional digit.
	if len(fracPart) > 0 && fracPart[0] >= '5' {
		won++
	}
	return won, nil
}

// FormatWon formats whole won as a currency string with thousands grouping,
// e.g. "₩9,000". Matches the ko-KR display format of the UI.
func FormatWon(won int64) string {
	neg := won < 0
	if neg {
		won = -won
	}
	digits := strconv.FormatInt(won, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₩")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Format returns the display form of the amount.
func (m Money) Format() string {
	return FormatWon(m.Won)
}
