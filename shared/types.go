package shared

// Enums shared by math and pool.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

// RoundingFrom maps the roundUp flag used by the price functions onto Rounding.
func RoundingFrom(roundUp bool) Rounding {
	if roundUp {
		return RoundingUp
	}
	return RoundingDown
}

func (r Rounding) String() string {
	switch r {
	case RoundingUp:
		return "up"
	case RoundingDown:
		return "down"
	default:
		return "unknown"
	}
}

// TokenSide selects which token of the pair a price is quoted in.
// Prices are y per x; TokenX inverts them.
type TokenSide uint8

const (
	TokenX TokenSide = 0
	TokenY TokenSide = 1
)

func (s TokenSide) String() string {
	switch s {
	case TokenX:
		return "x"
	case TokenY:
		return "y"
	default:
		return "unknown"
	}
}
