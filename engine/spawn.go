package engine

import "fmt"

// Rand is the randomness a Spawner draws from. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// DefaultFourChance is the probability that a spawned cell holds a 4
// instead of a 2.
const DefaultFourChance = 0.1

// Spawner creates pieces for a board of fixed dimensions.
type Spawner struct {
	dims       Dims
	rng        Rand
	fourChance float64
}

// NewSpawner returns a Spawner placing pieces on a board of dims d.
func NewSpawner(d Dims, rng Rand, fourChance float64) *Spawner {
	if fourChance < 0 || fourChance > 1 {
		panic(fmt.Sprintf("four chance %v outside [0, 1]", fourChance))
	}
	return &Spawner{dims: d, rng: rng, fourChance: fourChance}
}

// Spawn creates a piece of the given shape, top-aligned at row Height-1
// and at a random column where its box fits. Each cell is a 2, or a 4 with
// the spawner's four chance. Spawn panics on an unknown shape.
func (s *Spawner) Spawn(shape Shape) *Piece {
	size := shape.Size()
	if size > s.dims.Width {
		panic(fmt.Sprintf("shape %s does not fit a board %d wide", shape, s.dims.Width))
	}

	var values [4]Tile
	for i := range values {
		values[i] = 2
		if s.rng.Float64() < s.fourChance {
			values[i] = 4
		}
	}

	anchor := Point{
		X: s.rng.IntN(s.dims.Width - size + 1),
		Y: s.dims.Height - 1,
	}
	return NewPiece(shape, values, anchor)
}

// Spawn creates a piece using DefaultFourChance.
func Spawn(shape Shape, d Dims, rng Rand) *Piece {
	return NewSpawner(d, rng, DefaultFourChance).Spawn(shape)
}
