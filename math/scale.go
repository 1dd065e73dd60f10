package math

import (
	"fmt"
	"math/big"
)

// Upscale converts a token amount into 18-decimal pool units.
// The product has to fit an int128 like the amount itself.
func Upscale(amount, scalar *big.Int) (*big.Int, error) {
	out, err := checkI128(new(big.Int).Mul(amount, scalar), "upscale")
	if err != nil {
		return nil, fmt.Errorf("upscale %s by %s: %w", amount, scalar, ErrArithmeticOverflow)
	}
	return out, nil
}

// DownscaleFloor converts pool units back to a token amount, rounding down.
func DownscaleFloor(amount, scalar *big.Int) (*big.Int, error) {
	if scalar.Sign() <= 0 {
		return nil, ErrNegativeOrZero
	}
	// big.Int.Div is Euclidean, which is floor for a positive divisor.
	return checkI128(new(big.Int).Div(amount, scalar), "downscale floor")
}

// DownscaleCeil converts pool units back to a token amount, rounding up.
func DownscaleCeil(amount, scalar *big.Int) (*big.Int, error) {
	if scalar.Sign() <= 0 {
		return nil, ErrNegativeOrZero
	}
	q, m := new(big.Int).DivMod(amount, scalar, new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, one)
	}
	return checkI128(q, "downscale ceil")
}
