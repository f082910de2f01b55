package random

import (
	"testing"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

func TestGeneratorRange(t *testing.T) {
	g := NewGenerator(42)
	seen := map[int]bool{}

	for n := 0; n < 1000; n++ {
		n := g.Generate()
		if n != bridge.NumberUp && n != bridge.NumberDown {
			t.Fatalf("Generate() = %d, want 0 or 1", n)
		}
		seen[n] = true
	}

	if !seen[bridge.NumberUp] || !seen[bridge.NumberDown] {
		t.Errorf("expected both values in 1000 draws, saw %v", seen)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(1234)
	b := NewGenerator(1234)

	for i := 0; i < 100; i++ {
		if a.Generate() != b.Generate() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestNewGeneratorFromConfig(t *testing.T) {
	g, err := NewGeneratorFromConfig(99)
	if err != nil {
		t.Fatalf("NewGeneratorFromConfig(99) failed: %v", err)
	}
	if g.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", g.Seed())
	}

	g, err = NewGeneratorFromConfig(0)
	if err != nil {
		t.Fatalf("NewGeneratorFromConfig(0) failed: %v", err)
	}
	if g.Seed() == 0 {
		t.Error("expected a generated seed for 0")
	}
}

func TestGeneratorDrivesMaker(t *testing.T) {
	maker := bridge.NewMaker(NewGenerator(5))

	layout, err := maker.Make(bridge.MaxSize)
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	if len(layout) != bridge.MaxSize {
		t.Errorf("len = %d, want %d", len(layout), bridge.MaxSize)
	}
}
