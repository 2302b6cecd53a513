package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fractionTolerance is the absolute tolerance used when snapping a decimal
// amount to a cooking fraction.
const fractionTolerance = 0.01

// fractionEntry pairs a decimal value with its display label.
type fractionEntry struct {
	value float64
	label string
}

// commonFractions lists the cooking fractions recognized by formatAmount.
// Order matters: the first entry within tolerance wins, so this must stay an
// ordered slice rather than a map.
var commonFractions = []fractionEntry{
	{0.0625, "1/16"},
	{0.083, "1/12"},
	{0.1, "1/10"},
	{0.111, "1/9"},
	{0.125, "1/8"},
	{0.143, "1/7"},
	{0.167, "1/6"},
	{0.1875, "3/16"},
	{0.2, "1/5"},
	{0.222, "2/9"},
	{0.25, "1/4"},
	{0.286, "2/7"},
	{0.3, "3/10"},
	{0.3125, "5/16"},
	{0.333, "1/3"},
	{0.375, "3/8"},
	{0.4, "2/5"},
	{0.4167, "5/12"},
	{0.429, "3/7"},
	{0.4375, "7/16"},
	{0.444, "4/9"},
	{0.5, "1/2"},
	{0.5625, "9/16"},
	{0.556, "5/9"},
	{0.571, "4/7"},
	{0.5833, "7/12"},
	{0.6, "3/5"},
	{0.625, "5/8"},
	{0.6667, "2/3"},
	{0.6875, "11/16"},
	{0.7, "7/10"},
	{0.714, "5/7"},
	{0.75, "3/4"},
	{0.778, "7/9"},
	{0.8, "4/5"},
	{0.8125, "13/16"},
	{0.833, "5/6"},
	{0.857, "6/7"},
	{0.875, "7/8"},
	{0.889, "8/9"},
	{0.9, "9/10"},
	{0.9167, "11/12"},
	{0.9375, "15/16"},
}

// parseAmount converts a quantity string into a number. It accepts plain
// decimals and simple "a/b" fractions; anything unparseable yields 0.
// Mixed numbers like "1 1/2" are not a valid input format.
func parseAmount(amount string) float64 {
	if strings.Contains(amount, "/") {
		parts := strings.Split(amount, "/")
		if len(parts) < 2 {
			return 0
		}
		numerator, errN := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		denominator, errD := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errN != nil || errD != nil || denominator == 0 {
			return 0
		}
		return numerator / denominator
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return 0
	}
	return value
}

// formatAmount renders a decimal amount back into a human-friendly string:
// a bare fraction when the whole value snaps to one, a mixed number when the
// remainder past the integer part does, otherwise a 2-decimal value with
// trailing zeros stripped.
func formatAmount(amount float64) string {
	for _, f := range commonFractions {
		if math.Abs(amount-f.value) < fractionTolerance {
			return f.label
		}
	}

	if amount >= 1 {
		whole := int(math.Floor(amount))
		remainder := amount - float64(whole)
		for _, f := range commonFractions {
			if math.Abs(remainder-f.value) < fractionTolerance {
				if whole > 0 {
					return fmt.Sprintf("%d %s", whole, f.label)
				}
				return f.label
			}
		}
	}

	rounded := math.Round(amount*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
