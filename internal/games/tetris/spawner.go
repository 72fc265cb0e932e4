package tetris

import "math/rand"

// RandSource is the random source the spawner draws from.
// *rand.Rand satisfies it; tests can supply a scripted source.
type RandSource interface {
	Intn(n int) int
}

// Spawner creates new pieces at the fixed spawn point: horizontally
// centered (width/2 - 1) on the top row.
type Spawner struct {
	rng    RandSource
	spawnX int
}

// NewSpawner creates a spawner for a grid of the given width.
func NewSpawner(rng RandSource, gridWidth int) *Spawner {
	return &Spawner{rng: rng, spawnX: gridWidth/2 - 1}
}

// NewSeededSpawner creates a spawner backed by math/rand with the given seed.
func NewSeededSpawner(seed int64, gridWidth int) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), gridWidth)
}

// SpawnPoint returns the grid coordinates new pieces start at.
func (s *Spawner) SpawnPoint() (int, int) {
	return s.spawnX, 0
}

// Next returns a new piece of a uniformly random kind in spawn orientation.
func (s *Spawner) Next() Piece {
	k := Kind(s.rng.Intn(KindCount))
	x, y := s.SpawnPoint()
	return NewPiece(k, x, y)
}
