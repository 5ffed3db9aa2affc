package types

import "testing"

func TestDirectionToPoint(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{UP, Point{X: 0, Y: -1}},
		{RIGHT, Point{X: 1, Y: 0}},
		{DOWN, Point{X: 0, Y: 1}},
		{LEFT, Point{X: -1, Y: 0}},
		{NONE, Point{}},
	}
	for _, tt := range tests {
		if got := tt.dir.ToPoint(); got != tt.want {
			t.Errorf("%v.ToPoint() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		UP:    DOWN,
		DOWN:  UP,
		LEFT:  RIGHT,
		RIGHT: LEFT,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 20, Height: 20}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 19, Y: 19}, true},
		{Point{X: 20, Y: 0}, false},
		{Point{X: 0, Y: 20}, false},
		{Point{X: -1, Y: 0}, false},
		{Point{X: 0, Y: -1}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestStartingLayoutIsConsistent(t *testing.T) {
	if StartPosition == StartFood {
		t.Error("starting food must not coincide with the starting body")
	}
	g := Grid{Width: DefaultGridSize, Height: DefaultGridSize}
	if !g.Contains(StartPosition) || !g.Contains(StartFood) {
		t.Error("starting layout must fit the default grid")
	}
}
