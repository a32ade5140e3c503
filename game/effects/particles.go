// Package effects holds cosmetic effects that never touch gameplay state.
package effects

import (
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

const (
	BurstSize    = 15
	ParticleSize = 6
	LifeDecay    = 0.03
	// MaxSpeed bounds each velocity component to [-MaxSpeed/2, MaxSpeed/2).
	MaxSpeed = 4.0
)

// RGB is an opaque color.
type RGB struct {
	R, G, B uint8
}

// Particle is a fading fragment in pixel space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 when spawned, removed at <= 0
	Color  RGB
}

// System is a small ensemble of independently updated particles.
type System struct {
	rng       *rand.Rand
	particles []Particle
}

func NewSystem(rng *rand.Rand) *System {
	return &System{
		rng:       rng,
		particles: make([]Particle, 0, BurstSize*2),
	}
}

// Burst spawns BurstSize particles at the pixel center of tile.
func (s *System) Burst(tile types.Point, color RGB) {
	cx := float64(tile.X*types.TileSize) + types.TileSize/2
	cy := float64(tile.Y*types.TileSize) + types.TileSize/2
	for i := 0; i < BurstSize; i++ {
		s.particles = append(s.particles, Particle{
			X:     cx,
			Y:     cy,
			VX:    (s.rng.Float64() - 0.5) * MaxSpeed,
			VY:    (s.rng.Float64() - 0.5) * MaxSpeed,
			Life:  1.0,
			Color: color,
		})
	}
}

// Update advances every particle one step and drops the dead ones.
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= LifeDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Particles returns the live particles. Callers must not modify them.
func (s *System) Particles() []Particle {
	return s.particles
}

func (s *System) Len() int {
	return len(s.particles)
}

func (s *System) Reset() {
	s.particles = s.particles[:0]
}
