package math

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/krazyTry/concentrated-amm-go/shared"
)

// PowInteger computes base^exponent for a whole exponent by square-and-multiply,
// truncating after every multiplication.
func PowInteger(base *big.Int, exponent int64) (*big.Int, error) {
	if exponent < 0 {
		return nil, fmt.Errorf("pow integer exponent %d: %w", exponent, ErrInvalidExponent)
	}
	a, err := toU256(base, "pow integer base")
	if err != nil {
		return nil, err
	}

	z := new(uint256.Int).Set(scaleU)
	if exponent%2 != 0 {
		z.Set(a)
	}

	for n := exponent / 2; n != 0; n /= 2 {
		if a, err = mulDivU256(a, a, scaleU, shared.RoundingDown); err != nil {
			return nil, err
		}
		if n%2 != 0 {
			if z, err = mulDivU256(z, a, scaleU, shared.RoundingDown); err != nil {
				return nil, err
			}
		}
	}
	return z.ToBig(), nil
}

// Approximation is the outcome of the fractional power series.
type Approximation struct {
	Value *big.Int
	// Terms is the number of series terms that were added.
	Terms int
	// Converged is false when MaxSeriesTerms terms did not get under PowPrecision.
	// Value then holds the partial sum.
	Converged bool
}

type residualAction int8

const (
	keepSum residualAction = iota
	subtractTerm
	addTerm
)

// residualRule matches on the sign of x = base - 1, the sign of the last series
// term (0 matches any) and the rounding direction.
type residualRule struct {
	xPositive bool
	termSign  int
	roundUp   bool
	action    residualAction
}

// Above 1 the series alternates, so the last term tells which side of the true
// value the sum is on. At or below 1 every term is negative and the sum overshoots.
var residualRules = [...]residualRule{
	{xPositive: true, termSign: 1, roundUp: false, action: subtractTerm},
	{xPositive: true, termSign: -1, roundUp: true, action: subtractTerm},
	{xPositive: false, termSign: 0, roundUp: false, action: addTerm},
}

func residualAdjustment(xSign, termSign int, roundUp bool) residualAction {
	for _, r := range residualRules {
		if r.xPositive != (xSign > 0) || r.roundUp != roundUp {
			continue
		}
		if r.termSign != 0 && r.termSign != termSign {
			continue
		}
		return r.action
	}
	return keepSum
}

// PowApprox approximates base^exponent for a fractional exponent in [0, Scale)
// with the binomial series of (1+x)^y around x = base - Scale.
// It is only accurate for bases close to Scale.
func PowApprox(base, exponent *big.Int, roundUp bool) (*Approximation, error) {
	if exponent.Sign() < 0 || exponent.Cmp(scale) >= 0 {
		return nil, fmt.Errorf("pow approx exponent %s: %w", exponent, ErrInvalidExponent)
	}
	x, err := Sub(base, scale)
	if err != nil {
		return nil, err
	}

	term := new(big.Int).Set(scale)
	sum := new(big.Int).Set(term)
	out := &Approximation{}

	for i := int64(1); i <= MaxSeriesTerms; i++ {
		bigK := new(big.Int).Mul(big.NewInt(i), scale)
		c := new(big.Int).Sub(exponent, new(big.Int).Sub(bigK, scale))

		xc, err := mulQuo(x, c, scale)
		if err != nil {
			return nil, err
		}
		if term, err = mulQuo(term, xc, scale); err != nil {
			return nil, err
		}
		if term, err = mulQuo(term, scale, bigK); err != nil {
			return nil, err
		}
		if sum, err = Add(sum, term); err != nil {
			return nil, err
		}

		out.Terms = int(i)
		if new(big.Int).Abs(term).Cmp(powPrecision) <= 0 {
			out.Converged = true
			break
		}
	}

	if !out.Converged {
		zlog().Warn("pow series did not converge",
			zap.String("base", base.String()),
			zap.String("exponent", exponent.String()),
			zap.String("lastTerm", term.String()),
			zap.Int("terms", out.Terms),
		)
	}

	switch residualAdjustment(x.Sign(), term.Sign(), roundUp) {
	case subtractTerm:
		sum, err = Sub(sum, term)
	case addTerm:
		sum, err = Add(sum, term)
	}
	if err != nil {
		return nil, err
	}
	out.Value = sum
	return out, nil
}

// Pow computes base^exponent where both are fixed-point values. The whole part of
// the exponent is exact, the fractional part comes from PowApprox.
// Negative exponents are not supported; pick a base below Scale instead.
func Pow(base, exponent *big.Int, roundUp bool) (*big.Int, error) {
	if base.Cmp(minPowBase) < 0 {
		return nil, fmt.Errorf("pow base %s: %w", base, ErrBaseTooLow)
	}
	if base.Cmp(maxPowBase) > 0 {
		return nil, fmt.Errorf("pow base %s: %w", base, ErrBaseTooHigh)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("pow exponent %s: %w", exponent, ErrInvalidExponent)
	}

	whole, remain := new(big.Int).QuoRem(exponent, scale, new(big.Int))
	if !whole.IsUint64() || whole.Uint64() > MaxUint32 {
		return nil, fmt.Errorf("pow exponent %s: %w", exponent, ErrInvalidExponent)
	}

	wholePow, err := PowInteger(base, whole.Int64())
	if err != nil {
		return nil, err
	}
	if remain.Sign() == 0 {
		return wholePow, nil
	}

	partial, err := PowApprox(base, remain, roundUp)
	if err != nil {
		return nil, err
	}

	prod := new(big.Int).Mul(wholePow, partial.Value)
	result, rem := new(big.Int).QuoRem(prod, scale, new(big.Int))
	if roundUp && rem.Sign() > 0 {
		result.Add(result, one)
	}
	return checkI256(result, "pow")
}
