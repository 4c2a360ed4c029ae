// Package core provides money parsing and handling utilities.
//
// Amounts entered by the user are never rejected: anything that does not
// read as a finite, non-negative number becomes zero.
package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value in the user's currency.
type Amount float64

// ParseAmount converts user text to an Amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Empty, non-numeric, negative, NaN or infinite input yields 0.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34
//	ParseAmount("12,34") -> 12.34
//	ParseAmount("abc")   -> 0
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return NewAmount(f)
}

// NewAmount coerces f into a valid Amount.
func NewAmount(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return Amount(f)
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// Decimal returns the amount as an exact decimal for summing.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(NewAmount(float64(a))))
}

// String formats the amount with two decimals.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// UnmarshalJSON accepts a JSON number or string. Anything else, including
// null and malformed numbers, decodes to 0 instead of failing the document.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = NewAmount(f)
	return nil
}
