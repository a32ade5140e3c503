package effects

import (
	"testing"

	"golang.org/x/exp/rand"

	"neon-snake/game/types"
)

func TestBurstSpawnsAtTileCenter(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(1)))
	color := RGB{R: 255, B: 222}
	s.Burst(types.Point{X: 2, Y: 3}, color)

	if s.Len() != BurstSize {
		t.Fatalf("expected %d particles, got %d", BurstSize, s.Len())
	}
	for i, p := range s.Particles() {
		if p.X != 50 || p.Y != 70 {
			t.Fatalf("particle %d: expected (50,70), got (%v,%v)", i, p.X, p.Y)
		}
		if p.Life != 1 || p.Color != color {
			t.Fatalf("particle %d: unexpected life or color %+v", i, p)
		}
		if p.VX < -2 || p.VX >= 2 || p.VY < -2 || p.VY >= 2 {
			t.Fatalf("particle %d: velocity out of range %+v", i, p)
		}
	}
}

func TestUpdateMovesAndExpires(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(2)))
	s.Burst(types.Point{}, RGB{})
	first := s.Particles()[0]

	s.Update()
	moved := s.Particles()[0]
	if moved.X != first.X+first.VX || moved.Y != first.Y+first.VY {
		t.Fatalf("particle did not move by its velocity")
	}
	if moved.Life >= first.Life {
		t.Fatalf("life did not decay")
	}

	// 1.0 decays to about 0.01 after 33 steps and below zero after 34.
	for i := 1; i < 33; i++ {
		s.Update()
	}
	if s.Len() != BurstSize {
		t.Fatalf("particles expired early: %d left", s.Len())
	}
	s.Update()
	if s.Len() != 0 {
		t.Fatalf("expected all particles gone, got %d", s.Len())
	}
}

func TestReset(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(3)))
	s.Burst(types.Point{}, RGB{})
	s.Burst(types.Point{X: 1}, RGB{})
	if s.Len() != 2*BurstSize {
		t.Fatalf("bursts should accumulate, got %d", s.Len())
	}
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("reset left %d particles", s.Len())
	}
}
