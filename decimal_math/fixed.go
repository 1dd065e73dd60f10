package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FixedDecimals is the number of fractional digits of an 18-decimal fixed-point value.
const FixedDecimals = 18

// FromFixed converts a fixed-point integer into an exact decimal.
func FromFixed(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -FixedDecimals)
}

// ToFixed converts a decimal into fixed point, dropping digits past the 18th (floor).
func ToFixed(d decimal.Decimal) *big.Int {
	return d.Shift(FixedDecimals).Floor().BigInt()
}
