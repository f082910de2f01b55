package bridge

import (
	"fmt"
	"strings"
)

// Bridge is an immutable bridge layout: the safe side of every tile.
type Bridge struct {
	layout []Direction
}

// NewBridge creates a bridge from a layout. The layout is copied.
func NewBridge(layout []Direction) (*Bridge, error) {
	if err := ValidateSize(len(layout)); err != nil {
		return nil, err
	}
	for i, d := range layout {
		if d != Up && d != Down {
			return nil, fmt.Errorf("%w: tile %d has value %d", ErrInvalidDirectionSymbol, i, d)
		}
	}
	return newBridge(layout), nil
}

// NewBridgeFromSymbols creates a bridge from external symbols such as
// []string{"U", "D", "U"}.
func NewBridgeFromSymbols(symbols []string) (*Bridge, error) {
	layout := make([]Direction, 0, len(symbols))
	for _, s := range symbols {
		d, err := DirectionOf(s)
		if err != nil {
			return nil, err
		}
		layout = append(layout, d)
	}
	return NewBridge(layout)
}

// ParseBridge creates a bridge from a compact symbol string such as "UDU".
func ParseBridge(compact string) (*Bridge, error) {
	return NewBridgeFromSymbols(strings.Split(compact, ""))
}

func newBridge(layout []Direction) *Bridge {
	cp := make([]Direction, len(layout))
	copy(cp, layout)
	return &Bridge{layout: cp}
}

// Len returns the number of tiles.
func (b *Bridge) Len() int {
	return len(b.layout)
}

// At returns the safe side of the tile at position.
// Panics if position is out of range.
func (b *Bridge) At(position int) Direction {
	if position < 0 || position >= len(b.layout) {
		panic(fmt.Sprintf("bridge: position %d out of range [0, %d)", position, len(b.layout)))
	}
	return b.layout[position]
}

// IsCorrect reports whether guess is the safe side at position.
// Panics if position is out of range.
func (b *Bridge) IsCorrect(position int, guess Direction) bool {
	return b.At(position) == guess
}

// Layout returns a copy of the layout.
func (b *Bridge) Layout() []Direction {
	cp := make([]Direction, len(b.layout))
	copy(cp, b.layout)
	return cp
}

// Symbols returns the layout as a compact symbol string, e.g. "UDU".
func (b *Bridge) Symbols() string {
	var sb strings.Builder
	sb.Grow(len(b.layout))
	for _, d := range b.layout {
		sb.WriteString(d.Symbol())
	}
	return sb.String()
}
