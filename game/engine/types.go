package engine

import (
	"fmt"
	"math"
)

const (
	// Board dimensions used when the application does not pick a profile.
	DefaultBoardWidth  = 7
	DefaultBoardHeight = 7

	// DefaultSteps is the distance covered by a move without an explicit count.
	DefaultSteps = 1
)

// Position represents x,y coordinates on the board
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns the position displaced by (dx*steps, dy*steps). Each
// coordinate saturates at math.MaxInt / math.MinInt instead of wrapping.
func (p Position) Add(dx, dy, steps int) Position {
	return Position{X: offset(p.X, dx, steps), Y: offset(p.Y, dy, steps)}
}

func offset(v, d, steps int) int {
	if d == 0 || steps == 0 {
		return v
	}

	positive := (d > 0) == (steps > 0)
	delta := d * steps
	if delta/d != steps || (d == -1 && steps == math.MinInt) {
		if positive {
			return math.MaxInt
		}
		return math.MinInt
	}

	sum := v + delta
	switch {
	case delta > 0 && sum < v:
		return math.MaxInt
	case delta < 0 && sum > v:
		return math.MinInt
	}
	return sum
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
