package bridge

import "fmt"

// Bridge length bounds, inclusive.
const (
	MinSize = 3
	MaxSize = 20
)

// NumberGenerator is the random source for bridge layouts.
// Generate returns NumberUp or NumberDown.
type NumberGenerator interface {
	Generate() int
}

// ValidateSize checks that size is within [MinSize, MaxSize].
// It is the only place the bounds are enforced.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: got %d", ErrInvalidBridgeSize, size)
	}
	return nil
}

// Maker generates bridge layouts from a NumberGenerator.
type Maker struct {
	gen NumberGenerator
}

// NewMaker creates a maker drawing one number per tile from gen.
func NewMaker(gen NumberGenerator) *Maker {
	return &Maker{gen: gen}
}

// Make returns a layout of exactly size tiles.
func (m *Maker) Make(size int) ([]Direction, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	layout := make([]Direction, 0, size)
	for n := 0; n < size; n++ {
		d, err := DirectionFromNumber(m.gen.Generate())
		if err != nil {
			return nil, err
		}
		layout = append(layout, d)
	}
	return layout, nil
}

// MakeBridge is a convenience wrapper returning a ready Bridge.
func (m *Maker) MakeBridge(size int) (*Bridge, error) {
	layout, err := m.Make(size)
	if err != nil {
		return nil, err
	}
	return newBridge(layout), nil
}
