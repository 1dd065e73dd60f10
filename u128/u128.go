package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
)

var mask64 = new(big.Int).SetUint64(^uint64(0))

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	out, err := FromBig(i)
	if err != nil {
		return err
	}
	u.Lo, u.Hi = out.Lo, out.Hi
	return nil
}

// FromBig packs a non-negative fixed-point value into a little-endian Uint128.
func FromBig(v *big.Int) (binary.Uint128, error) {
	switch {
	case v == nil:
		return binary.Uint128{}, errors.New("value is nil")
	case v.Sign() < 0:
		return binary.Uint128{}, errors.New("value cannot be negative")
	case v.BitLen() > 128:
		return binary.Uint128{}, errors.New("value overflows Uint128")
	}
	u := binary.NewUint128LittleEndian()
	u.Lo = new(big.Int).And(v, mask64).Uint64()
	u.Hi = new(big.Int).Rsh(v, 64).Uint64()
	return *u, nil
}

func GenUint128FromString(num string) binary.Uint128 {
	u128 := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u128)); err != nil {
		panic(err)
	}
	return *u128
}
