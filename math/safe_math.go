package math

import (
	"fmt"
	"math/big"
)

// checkI256 rejects values outside the signed 256-bit range the pool math is defined on.
func checkI256(v *big.Int, op string) (*big.Int, error) {
	if v.Cmp(maxI256) > 0 || v.Cmp(minI256) < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrArithmeticOverflow)
	}
	return v, nil
}

func checkI128(v *big.Int, op string) (*big.Int, error) {
	if v.Cmp(maxI128) > 0 || v.Cmp(minI128) < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrMathApprox)
	}
	return v, nil
}

func Add(a, b *big.Int) (*big.Int, error) {
	return checkI256(new(big.Int).Add(a, b), "add")
}

func Sub(a, b *big.Int) (*big.Int, error) {
	return checkI256(new(big.Int).Sub(a, b), "sub")
}

func Mul(a, b *big.Int) (*big.Int, error) {
	return checkI256(new(big.Int).Mul(a, b), "mul")
}

// SubNoNegative returns a - b, failing when b > a.
func SubNoNegative(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, ErrSubUnderflow
	}
	return Sub(a, b)
}

// mulQuo returns a*b/d truncated toward zero. The product is kept at full width,
// only the quotient has to fit.
func mulQuo(a, b, d *big.Int) (*big.Int, error) {
	if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	prod := new(big.Int).Mul(a, b)
	return checkI256(prod.Quo(prod, d), "mul div")
}
