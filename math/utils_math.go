package math

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/krazyTry/concentrated-amm-go/shared"
)

var (
	scaleU   = uint256.NewInt(Scale)
	maxI256U = mustU256(maxI256)
)

func mustU256(v *big.Int) *uint256.Int {
	out, overflow := uint256.FromBig(v)
	if overflow {
		panic("value overflows uint256")
	}
	return out
}

func toU256(v *big.Int, op string) (*uint256.Int, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNegative)
	}
	out, overflow := uint256.FromBig(v)
	if overflow || out.Cmp(maxI256U) > 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrArithmeticOverflow)
	}
	return out, nil
}

// mulDivU256 computes x*y/d with a 512-bit intermediate product.
func mulDivU256(x, y, d *uint256.Int, rounding shared.Rounding) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow || z.Cmp(maxI256U) > 0 {
		return nil, fmt.Errorf("mul div: %w", ErrArithmeticOverflow)
	}
	if rounding == shared.RoundingUp && !new(uint256.Int).MulMod(x, y, d).IsZero() {
		z.AddUint64(z, 1)
		if z.Cmp(maxI256U) > 0 {
			return nil, fmt.Errorf("mul div: %w", ErrArithmeticOverflow)
		}
	}
	return z, nil
}

// MulDiv computes x*y/denominator for non-negative operands.
func MulDiv(x, y, denominator *big.Int, rounding shared.Rounding) (*big.Int, error) {
	ux, err := toU256(x, "mul div")
	if err != nil {
		return nil, err
	}
	uy, err := toU256(y, "mul div")
	if err != nil {
		return nil, err
	}
	ud, err := toU256(denominator, "mul div")
	if err != nil {
		return nil, err
	}
	z, err := mulDivU256(ux, uy, ud, rounding)
	if err != nil {
		return nil, err
	}
	return z.ToBig(), nil
}

// CeilDiv divides with a truncated quotient and bumps it by one on a non-zero remainder.
func CeilDiv(numerator, denominator *big.Int) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, one)
	}
	return q, nil
}

// FixedToFloat converts a fixed-point value to the nearest float64 and rescales it.
func FixedToFloat(v *big.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f / Scale
}
