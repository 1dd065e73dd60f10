package pool

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/concentrated-amm-go/decimal_math"
	ammmath "github.com/krazyTry/concentrated-amm-go/math"
	"github.com/krazyTry/concentrated-amm-go/shared"
	"github.com/krazyTry/concentrated-amm-go/u128"
)

// MaxQuoteRange bounds QuoteRange to 1000 bins either side of a center bin.
const MaxQuoteRange = 2001

// Quote is the price of one bin.
type Quote struct {
	BinID    int32
	Offset   int64 // BinID - active bin
	BinStep  uint32
	RoundUp  bool
	PriceX18 bin.Uint128
}

func (q *Quote) Rounding() shared.Rounding {
	return shared.RoundingFrom(q.RoundUp)
}

func (q *Quote) Price() decimal.Decimal {
	return decimal_math.FromFixed(q.PriceX18.BigInt())
}

func (q *Quote) Float() float64 {
	return ammmath.FixedToFloat(q.PriceX18.BigInt())
}

// PriceFor returns the price oriented for one token of the pair.
func (q *Quote) PriceFor(side shared.TokenSide) (decimal.Decimal, error) {
	price, err := ammmath.PriceForToken(q.BinStep, q.BinID, side)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal_math.FromFixed(price), nil
}

func (c *Config) Quote(binID int32, roundUp bool) (*Quote, error) {
	price, err := ammmath.PriceFromBinX18(c.BinStep, binID, roundUp)
	if err != nil {
		return nil, err
	}
	raw, err := u128.FromBig(price)
	if err != nil {
		return nil, fmt.Errorf("bin %d price: %w", binID, err)
	}
	return &Quote{
		BinID:    binID,
		Offset:   int64(binID) - int64(c.ActiveBin),
		BinStep:  c.BinStep,
		RoundUp:  roundUp,
		PriceX18: raw,
	}, nil
}

func (c *Config) ActiveQuote(roundUp bool) (*Quote, error) {
	return c.Quote(c.ActiveBin, roundUp)
}

// QuoteRange quotes every bin in [minBin, maxBin].
func (c *Config) QuoteRange(minBin, maxBin int32, roundUp bool) ([]*Quote, error) {
	if minBin > maxBin {
		return nil, fmt.Errorf("bin range [%d, %d] is empty", minBin, maxBin)
	}
	if n := int64(maxBin) - int64(minBin) + 1; n > MaxQuoteRange {
		return nil, fmt.Errorf("bin range of %d bins exceeds %d", n, MaxQuoteRange)
	}
	quotes := make([]*Quote, 0, int(maxBin-minBin)+1)
	for id := int64(minBin); id <= int64(maxBin); id++ {
		q, err := c.Quote(int32(id), roundUp)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// PriceForToken is the active-bin price oriented for one token of the pair.
func (c *Config) PriceForToken(side shared.TokenSide) (*big.Int, error) {
	return ammmath.PriceForToken(c.BinStep, c.ActiveBin, side)
}

func (q *Quote) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteInt32(q.BinID, binary.LittleEndian); err != nil {
		return err
	}
	if err := enc.WriteInt64(q.Offset, binary.LittleEndian); err != nil {
		return err
	}
	if err := enc.WriteUint32(q.BinStep, binary.LittleEndian); err != nil {
		return err
	}
	if err := enc.WriteBool(q.RoundUp); err != nil {
		return err
	}
	return enc.WriteUint128(q.PriceX18, binary.LittleEndian)
}

func (q *Quote) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if q.BinID, err = dec.ReadInt32(binary.LittleEndian); err != nil {
		return err
	}
	if q.Offset, err = dec.ReadInt64(binary.LittleEndian); err != nil {
		return err
	}
	if q.BinStep, err = dec.ReadUint32(binary.LittleEndian); err != nil {
		return err
	}
	if q.RoundUp, err = dec.ReadBool(); err != nil {
		return err
	}
	q.PriceX18, err = dec.ReadUint128(binary.LittleEndian)
	return err
}

// EncodeQuotes writes quotes back to back in Borsh layout.
func EncodeQuotes(w io.Writer, quotes []*Quote) error {
	enc := bin.NewBorshEncoder(w)
	for _, q := range quotes {
		if err := q.MarshalWithEncoder(enc); err != nil {
			return fmt.Errorf("encode quote for bin %d: %w", q.BinID, err)
		}
	}
	return nil
}

func DecodeQuote(data []byte) (*Quote, error) {
	q := new(Quote)
	if err := q.UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		return nil, err
	}
	return q, nil
}

// DecodeQuotes reads quotes written by EncodeQuotes.
func DecodeQuotes(data []byte) ([]*Quote, error) {
	dec := bin.NewBorshDecoder(data)
	var quotes []*Quote
	for dec.HasRemaining() {
		q := new(Quote)
		if err := q.UnmarshalWithDecoder(dec); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
