package amm

import (
	ammmath "github.com/krazyTry/concentrated-amm-go/math"
	"github.com/krazyTry/concentrated-amm-go/pool"
)

// PriceFromBin converts a bin id into its y-per-x price.
//
// Example:
//
// price, _ := PriceFromBin(10, -1300, false) // 0.27235458681947705
var PriceFromBin = ammmath.PriceFromBin

// PriceFromBinX18 is PriceFromBin in 18-decimal fixed point.
var PriceFromBinX18 = ammmath.PriceFromBinX18

// Pow computes a fixed-point power with a fixed-point exponent.
//
// Example:
//
// r, _ := Pow(base, exponent, true)
var Pow = ammmath.Pow

// PowDecimal is Pow on shopspring decimals.
var PowDecimal = ammmath.PowDecimal

// ParsePoolConfig decodes a get_config result.
//
// Example:
//
// cfg, _ := ParsePoolConfig(raw)
//
// quotes, _ := cfg.QuoteRange(cfg.ActiveBin-50, cfg.ActiveBin+50, false)
var ParsePoolConfig = pool.ParseConfig
