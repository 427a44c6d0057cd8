package escrow

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DenominationDecimals is the number of decimals of the native currency
const DenominationDecimals = 18

var denominationFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(DenominationDecimals), nil)

// ParseGigID parses a textual gig ID as an unsigned 64-bit integer
func ParseGigID(value string) (uint64, error) {
	gigID, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w, value %q", ErrInvalidGigID, value)
	}

	return gigID, nil
}

// ParseDeadline parses a textual deadline (unix timestamp) as an unsigned 64-bit integer
func ParseDeadline(value string) (uint64, error) {
	deadline, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w, value %q", ErrInvalidDeadline, value)
	}

	return deadline, nil
}

// DenominateAmount converts a decimal amount expressed in EGLD into its integer denomination
// (amount * 10^18), rounding half up when the amount has more than 18 decimals.
// The conversion is exact for any decimal input.
func DenominateAmount(amount string) (*big.Int, error) {
	trimmed := strings.TrimSpace(amount)
	if len(trimmed) == 0 || strings.IndexFunc(trimmed, isNotDecimalRune) >= 0 {
		return nil, fmt.Errorf("%w, value %q", ErrInvalidAmount, amount)
	}

	rat, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return nil, fmt.Errorf("%w, value %q", ErrInvalidAmount, amount)
	}

	scaled := new(big.Int).Mul(rat.Num(), denominationFactor)
	quotient, remainder := new(big.Int).QuoRem(scaled, rat.Denom(), new(big.Int))

	doubledRemainder := remainder.Lsh(remainder, 1)
	if doubledRemainder.Cmp(rat.Denom()) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	return quotient, nil
}

// isNotDecimalRune restricts big.Rat input to plain decimals: no sign, fraction, exponent or base prefix
func isNotDecimalRune(r rune) bool {
	return (r < '0' || r > '9') && r != '.'
}
