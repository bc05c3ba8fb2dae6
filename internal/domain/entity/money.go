package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// DefaultMaxAmountCents is the sanity ceiling for a single ledger amount
const DefaultMaxAmountCents int64 = 100_000_000_000

// centsPattern accepts positive integers without sign, exponent or leading zeros
var centsPattern = regexp.MustCompile(`^[1-9]\d*$`)

// ParseAmountCents parses a wire amount expressed as a count of cents.
// Only positive integer strings are accepted, e.g. "5000".
func ParseAmountCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if !centsPattern.MatchString(amount) {
		return 0, fmt.Errorf("%w: %q is not a positive integer count of cents", errs.ErrInvalidAmount, amount)
	}

	value, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidateAmountCents checks that an amount is positive and within the ceiling.
// A ceiling <= 0 disables the upper bound.
func ValidateAmountCents(amountCents, ceiling int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", errs.ErrInvalidAmount, amountCents)
	}
	if ceiling > 0 && amountCents > ceiling {
		return fmt.Errorf("%w: amount %d exceeds the maximum of %d", errs.ErrInvalidAmount, amountCents, ceiling)
	}
	return nil
}

// CentsToDecimal converts minor units to a decimal amount in major units
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders cents as a major-unit string with two decimal places.
// For example 101500 becomes "1015.00".
func FormatCents(cents int64) string {
	return CentsToDecimal(cents).StringFixed(2)
}

// FormatCentsString renders cents as the exact integer string used on the wire
func FormatCentsString(cents int64) string {
	return strconv.FormatInt(cents, 10)
}
