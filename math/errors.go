package math

import "errors"

var (
	ErrArithmeticOverflow = errors.New("math: arithmetic overflow")
	ErrDivisionByZero     = errors.New("math: division by zero")
	ErrInvalidExponent    = errors.New("math: exponent out of domain")
	ErrNegative           = errors.New("math: negative value")
	ErrNegativeOrZero     = errors.New("math: value must be positive")
	ErrBaseTooLow         = errors.New("math: pow base too low")
	ErrBaseTooHigh        = errors.New("math: pow base too high")
	ErrSubUnderflow       = errors.New("math: subtraction underflow")
	ErrMathApprox         = errors.New("math: result does not fit int128")
)
