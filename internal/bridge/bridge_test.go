package bridge_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

func mustParse(t *testing.T, compact string) *bridge.Bridge {
	t.Helper()
	b, err := bridge.ParseBridge(compact)
	if err != nil {
		t.Fatalf("ParseBridge(%q) failed: %v", compact, err)
	}
	return b
}

func TestBridgeIsCorrect(t *testing.T) {
	b := mustParse(t, "UDU")

	tests := []struct {
		position int
		guess    bridge.Direction
		want     bool
	}{
		{0, bridge.Up, true},
		{0, bridge.Down, false},
		{1, bridge.Down, true},
		{1, bridge.Up, false},
		{2, bridge.Up, true},
		{2, bridge.Down, false},
	}

	for _, tt := range tests {
		if got := b.IsCorrect(tt.position, tt.guess); got != tt.want {
			t.Errorf("IsCorrect(%d, %v) = %v, want %v", tt.position, tt.guess, got, tt.want)
		}
	}
}

func TestBridgeIsCorrectOutOfRangePanics(t *testing.T) {
	b := mustParse(t, "UDU")

	for _, position := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IsCorrect(%d) did not panic", position)
				}
			}()
			b.IsCorrect(position, bridge.Up)
		}()
	}
}

func TestNewBridgeFromSymbols(t *testing.T) {
	b, err := bridge.NewBridgeFromSymbols([]string{"D", "D", "U", "D"})
	if err != nil {
		t.Fatalf("NewBridgeFromSymbols failed: %v", err)
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	if got := b.Symbols(); got != "DDUD" {
		t.Errorf("Symbols() = %q, want %q", got, "DDUD")
	}
}

func TestNewBridgeFromSymbolsRejectsUnknown(t *testing.T) {
	_, err := bridge.NewBridgeFromSymbols([]string{"U", "X", "D"})
	if !errors.Is(err, bridge.ErrInvalidDirectionSymbol) {
		t.Errorf("error = %v, want ErrInvalidDirectionSymbol", err)
	}
}

func TestNewBridgeRejectsBadSize(t *testing.T) {
	if _, err := bridge.NewBridge([]bridge.Direction{bridge.Up, bridge.Down}); !errors.Is(err, bridge.ErrInvalidBridgeSize) {
		t.Errorf("2 tiles: error = %v, want ErrInvalidBridgeSize", err)
	}

	layout := make([]bridge.Direction, bridge.MaxSize+1)
	if _, err := bridge.NewBridge(layout); !errors.Is(err, bridge.ErrInvalidBridgeSize) {
		t.Errorf("%d tiles: error = %v, want ErrInvalidBridgeSize", len(layout), err)
	}
}

func TestBridgeIsImmutable(t *testing.T) {
	layout := []bridge.Direction{bridge.Up, bridge.Up, bridge.Up}
	b, err := bridge.NewBridge(layout)
	if err != nil {
		t.Fatalf("NewBridge failed: %v", err)
	}

	layout[0] = bridge.Down
	if b.At(0) != bridge.Up {
		t.Error("bridge changed after mutating the source layout")
	}

	out := b.Layout()
	out[1] = bridge.Down
	if b.At(1) != bridge.Up {
		t.Error("bridge changed after mutating Layout() result")
	}
}
