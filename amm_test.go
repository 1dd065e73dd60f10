package amm

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFromBin(t *testing.T) {
	price, err := PriceFromBin(10, -1300, false)
	require.NoError(t, err)
	assert.Equal(t, 0.27235458681947705, price)

	raw, err := PriceFromBinX18(10, -1300, false)
	require.NoError(t, err)

	one, err := Pow(raw, big.NewInt(0), true)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", one.String())

	sq, err := PowDecimal(decimal.RequireFromString("0.999"), decimal.RequireFromString("0.5"), false)
	require.NoError(t, err)
	assert.Equal(t, "0.999499874875", sq.String())
}

func TestParsePoolConfig(t *testing.T) {
	cfg, err := ParsePoolConfig([]byte(`{"active_bin": 3, "bin_step": 10, "fee": 10, "token_x": "a", "token_y": "b"}`))
	require.NoError(t, err)

	quotes, err := cfg.QuoteRange(cfg.ActiveBin-1, cfg.ActiveBin+1, false)
	require.NoError(t, err)
	assert.Len(t, quotes, 3)
}
