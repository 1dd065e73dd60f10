package math

import "math/big"

const (
	// Scale is the fixed-point unit (1.0), often called BONE.
	Scale = 1_000_000_000_000_000_000

	// PowPrecision stops the fractional power series once a term is this small.
	PowPrecision = 100_000_000

	// MaxSeriesTerms caps the fractional power series.
	MaxSeriesTerms = 50

	BasisPointMax = 10_000

	MinPowBase = 1
	MaxPowBase = 2*Scale - 1

	MaxUint32 = 1<<32 - 1
)

var (
	scale         = big.NewInt(Scale)
	powPrecision  = big.NewInt(PowPrecision)
	basisPointMax = big.NewInt(BasisPointMax)
	minPowBase    = big.NewInt(MinPowBase)
	maxPowBase    = big.NewInt(MaxPowBase)
	one           = big.NewInt(1)

	maxI256 = new(big.Int).Sub(new(big.Int).Lsh(one, 255), one)
	minI256 = new(big.Int).Neg(new(big.Int).Lsh(one, 255))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(one, 127))
)

// ScaleInt returns a fresh copy of Scale.
func ScaleInt() *big.Int {
	return new(big.Int).Set(scale)
}
