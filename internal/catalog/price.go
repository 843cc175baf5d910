package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("empty amount")

var hundred = decimal.NewFromInt(100)

// ParseAmount converts a human-typed major-unit amount ("800", "800.00",
// "800,50", "1.234,56", "1,234.56") into minor units. The right-most of '.'
// and ',' is taken as the decimal separator; the other is a thousands
// separator. A lone ',' is always decimal.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return 0, errEmptyAmount
	}

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")

	switch {
	case comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case dot > comma:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Mul(hundred).Round(0).IntPart(), nil
}

// FormatAmount renders minor units as a major-unit string with two decimals.
func FormatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
