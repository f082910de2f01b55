package bridge

import "fmt"

// Direction is the side of a bridge tile: the upper or the lower plank.
type Direction uint8

const (
	Up Direction = iota
	Down
)

// External symbols accepted from players and used in stored layouts.
const (
	SymbolUp   = "U"
	SymbolDown = "D"
)

// Numbers produced by a NumberGenerator.
const (
	NumberDown = 0
	NumberUp   = 1
)

// DirectionOf parses an external symbol. Matching is exact and case-sensitive.
func DirectionOf(symbol string) (Direction, error) {
	switch symbol {
	case SymbolUp:
		return Up, nil
	case SymbolDown:
		return Down, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirectionSymbol, symbol)
	}
}

// DirectionFromNumber maps a generated number (1 = up, 0 = down) to a direction.
func DirectionFromNumber(n int) (Direction, error) {
	switch n {
	case NumberUp:
		return Up, nil
	case NumberDown:
		return Down, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBridgeNumber, n)
	}
}

// Symbol returns the canonical external symbol for the direction.
func (d Direction) Symbol() string {
	if d == Up {
		return SymbolUp
	}
	return SymbolDown
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}
