package math

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/concentrated-amm-go/decimal_math"
	"github.com/krazyTry/concentrated-amm-go/shared"
)

// PriceFromBinX18 returns (1 ± binStep/10000)^|binID| in fixed point.
// The base sits above 1 for positive bins and below 1 for negative ones.
func PriceFromBinX18(binStep uint32, binID int32, roundUp bool) (*big.Int, error) {
	step := new(big.Int).Mul(big.NewInt(int64(binStep)), scale)
	step.Quo(step, basisPointMax)

	base := new(big.Int).Set(scale)
	switch {
	case binID > 0:
		base.Add(base, step)
	case binID < 0:
		base.Sub(base, step)
	}

	n := int64(binID)
	if n < 0 {
		n = -n
	}
	exponent := new(big.Int).Mul(big.NewInt(n), scale)

	price, err := Pow(base, exponent, roundUp)
	if err != nil {
		return nil, fmt.Errorf("price from bin %d (bin step %d): %w", binID, binStep, err)
	}
	return price, nil
}

// PriceFromBin is PriceFromBinX18 as a float64 for display and quoting.
func PriceFromBin(binStep uint32, binID int32, roundUp bool) (float64, error) {
	price, err := PriceFromBinX18(binStep, binID, roundUp)
	if err != nil {
		return 0, err
	}
	return FixedToFloat(price), nil
}

func PriceFromBinDecimal(binStep uint32, binID int32, roundUp bool) (decimal.Decimal, error) {
	price, err := PriceFromBinX18(binStep, binID, roundUp)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal_math.FromFixed(price), nil
}

// PriceForToken orients the bin price for one side of the pair. TokenY gets the
// floored y-per-x price, TokenX the floored inverse of the ceiled price.
func PriceForToken(binStep uint32, binID int32, side shared.TokenSide) (*big.Int, error) {
	switch side {
	case shared.TokenY:
		return PriceFromBinX18(binStep, binID, false)
	case shared.TokenX:
		price, err := PriceFromBinX18(binStep, binID, true)
		if err != nil {
			return nil, err
		}
		return mulQuo(scale, scale, price)
	default:
		return nil, fmt.Errorf("unknown token side %d", side)
	}
}

// PowDecimal is Pow on decimals. Inputs are floored to 18 decimals.
func PowDecimal(base, exponent decimal.Decimal, roundUp bool) (decimal.Decimal, error) {
	r, err := Pow(decimal_math.ToFixed(base), decimal_math.ToFixed(exponent), roundUp)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal_math.FromFixed(r), nil
}
