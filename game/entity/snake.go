package entity

import (
	"gridsnake/game/types"
)

// Snake is the single moving body on the grid. Body is ordered head-first;
// while the game is active no two segments occupy the same cell.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

// Grow prepends newHead without removing the tail, lengthening the body
// by one segment.
func (s *Snake) Grow(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// Shift moves the body one cell: the tail is vacated, newHead is gained,
// length stays constant.
func (s *Snake) Shift(newHead types.Point) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// SetDirection applies a direction-change request.
// Prevent 180-degree turns: a request for the exact opposite of the
// current direction is silently ignored.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}
