// Package random provides the random source for bridge layouts.
//
// Seeds come from crypto/rand when none is given, so every game differs;
// a fixed seed reproduces the same sequence of bridges.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Generator produces bridge.NumberUp or bridge.NumberDown with equal odds.
// It implements bridge.NumberGenerator.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewGeneratorFromConfig creates a generator for the configured seed.
// A zero seed means a fresh seed from crypto/rand.
func NewGeneratorFromConfig(seed int64) (*Generator, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return NewGenerator(seed), nil
}

// Generate returns the next number.
func (g *Generator) Generate() int {
	return g.rng.Intn(bridge.NumberUp + 1)
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

var _ bridge.NumberGenerator = (*Generator)(nil)
