package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/concentrated-amm-go/shared"
)

func samplePool() *Config {
	return &Config{BinStep: 10, ActiveBin: -1300, Fee: 10}
}

func TestActiveQuote(t *testing.T) {
	q, err := samplePool().ActiveQuote(false)
	require.NoError(t, err)

	assert.Equal(t, int32(-1300), q.BinID)
	assert.Equal(t, int64(0), q.Offset)
	assert.Equal(t, shared.RoundingDown, q.Rounding())
	assert.Equal(t, "272354586819477045", q.PriceX18.BigInt().String())
	assert.Equal(t, "0.272354586819477045", q.Price().String())
	assert.Equal(t, 0.27235458681947705, q.Float())

	x, err := q.PriceFor(shared.TokenX)
	require.NoError(t, err)
	assert.Equal(t, "3.671684078017100771", x.String())
}

func TestQuoteRange(t *testing.T) {
	quotes, err := samplePool().QuoteRange(-1302, -1298, false)
	require.NoError(t, err)
	require.Len(t, quotes, 5)

	want := []string{
		"271810150000424910",
		"272082232232657568",
		"272354586819477045",
		"272627214033510556",
		"272900114147658214",
	}
	for i, q := range quotes {
		assert.Equal(t, int32(-1302+i), q.BinID)
		assert.Equal(t, int64(i-2), q.Offset)
		assert.Equal(t, want[i], q.PriceX18.BigInt().String())
	}
}

func TestQuoteRounding(t *testing.T) {
	up, err := samplePool().ActiveQuote(true)
	require.NoError(t, err)
	assert.Equal(t, shared.RoundingUp, up.Rounding())
	assert.Equal(t, "up", up.Rounding().String())

	down, err := samplePool().ActiveQuote(false)
	require.NoError(t, err)
	assert.Equal(t, "down", down.Rounding().String())
}

func TestQuoteRangeErrors(t *testing.T) {
	_, err := samplePool().QuoteRange(5, 4, false)
	assert.Error(t, err)

	_, err = samplePool().QuoteRange(0, MaxQuoteRange, false)
	assert.Error(t, err)

	_, err = (&Config{BinStep: 10_000}).Quote(-1, false)
	assert.Error(t, err)
}

func TestPoolPriceForToken(t *testing.T) {
	y, err := samplePool().PriceForToken(shared.TokenY)
	require.NoError(t, err)
	assert.Equal(t, "272354586819477045", y.String())
}

func TestQuoteBorsh(t *testing.T) {
	quotes, err := samplePool().QuoteRange(-1301, -1299, true)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, EncodeQuotes(buf, quotes))
	// bin id, offset, bin step, round up, price
	assert.Equal(t, 3*(4+8+4+1+16), buf.Len())

	decoded, err := DecodeQuotes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded, len(quotes))
	for i := range quotes {
		assert.Equal(t, quotes[i].BinID, decoded[i].BinID)
		assert.Equal(t, quotes[i].Offset, decoded[i].Offset)
		assert.Equal(t, quotes[i].BinStep, decoded[i].BinStep)
		assert.True(t, decoded[i].RoundUp)
		assert.Equal(t, quotes[i].PriceX18.BigInt().String(), decoded[i].PriceX18.BigInt().String())
	}

	single, err := DecodeQuote(buf.Bytes()[:33])
	require.NoError(t, err)
	assert.Equal(t, int32(-1301), single.BinID)

	_, err = DecodeQuote(buf.Bytes()[:20])
	assert.Error(t, err)
}
