package entity

import (
	"neon-snake/game/types"
)

// Snake is the player entity. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	// turnLocked is set once a direction change was accepted and cleared
	// by the engine after the next step.
	turnLocked bool
}

// NewSnake builds a straight snake of the given length with its head at
// head, trailing behind the heading.
func NewSnake(head types.Point, length int, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: head.X + back.X*i, Y: head.Y + back.Y*i}
	}
	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

// Move prepends newHead.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// NextHead is where the head lands on the next step.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

// SetDirection changes the heading unless it reverses the current one, it
// repeats the current one, or a turn was already taken this step.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if s.turnLocked || dir == types.None {
		return false
	}
	if dir == s.Direction || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	s.turnLocked = true
	return true
}

// UnlockTurn allows one more direction change.
func (s *Snake) UnlockTurn() {
	s.turnLocked = false
}

func (s *Snake) TurnLocked() bool {
	return s.turnLocked
}

// Segments returns a copy of the body.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
