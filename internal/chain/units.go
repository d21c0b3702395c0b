package chain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// USDCDecimals is the fixed-point scale of USDC amounts on chain.
const USDCDecimals = 6

// ParseUnits converts a decimal amount string into its smallest-unit integer
// representation. Fractional digits beyond the scale are truncated, never
// rounded up, so a conversion can never authorize more than the caller asked
// to spend.
func ParseUnits(amount string, decimals int) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" || strings.HasPrefix(amount, "-") {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}

	intPart := amount
	fracPart := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		intPart, fracPart = amount[:i], amount[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	if len(fracPart) > decimals {
		fracPart = fracPart[:decimals]
	}
	fracPart += strings.Repeat("0", decimals-len(fracPart))

	combined := intPart + fracPart
	result, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	return result, nil
}

// ParseAmount converts a display-unit amount into smallest units at the USDC
// scale.
func ParseAmount(amount float64) (*big.Int, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %v", amount)
	}
	return ParseUnits(strconv.FormatFloat(amount, 'f', -1, 64), USDCDecimals)
}

// FormatUnits converts a smallest-unit integer amount back into a decimal
// display string, trimming trailing zeros from the fractional part.
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}

	s := amount.String()
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	intPart := s[:len(s)-decimals]
	fracPart := strings.TrimRight(s[len(s)-decimals:], "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}
