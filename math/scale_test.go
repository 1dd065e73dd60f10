package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stellar assets carry 7 decimals, so pool units are amount * 1e11.
var stellarScalar = big.NewInt(100_000_000_000)

func TestUpscale(t *testing.T) {
	got, err := Upscale(big.NewInt(10_000_000), stellarScalar)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", got.String())

	_, err = Upscale(maxI128, big.NewInt(2))
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		amount string
		floor  string
		ceil   string
	}{
		{"1000000000000000000", "10000000", "10000000"},
		{"1000000000000000001", "10000000", "10000001"},
		{"99999999999", "0", "1"},
		{"0", "0", "0"},
		{"-1", "-1", "0"},
	}
	for _, tt := range tests {
		floor, err := DownscaleFloor(bigInt(tt.amount), stellarScalar)
		require.NoError(t, err)
		assert.Equal(t, tt.floor, floor.String(), "floor %s", tt.amount)

		ceil, err := DownscaleCeil(bigInt(tt.amount), stellarScalar)
		require.NoError(t, err)
		assert.Equal(t, tt.ceil, ceil.String(), "ceil %s", tt.amount)
	}
}

func TestDownscaleErrors(t *testing.T) {
	_, err := DownscaleFloor(big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrNegativeOrZero)

	_, err = DownscaleCeil(big.NewInt(1), big.NewInt(-5))
	assert.ErrorIs(t, err, ErrNegativeOrZero)

	_, err = DownscaleFloor(maxI256, big.NewInt(1))
	assert.ErrorIs(t, err, ErrMathApprox)

	_, err = DownscaleCeil(maxI256, big.NewInt(2))
	assert.ErrorIs(t, err, ErrMathApprox)
}
