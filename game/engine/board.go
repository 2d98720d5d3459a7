package engine

import "fmt"

// Board is the immutable set of valid coordinates a bike may occupy.
// Valid cells are 0..width-1 on x and 0..height-1 on y; a board with a
// zero dimension has no valid cells.
type Board struct {
	minX, minY int
	maxX, maxY int
}

// NewBoard creates a board of the given size. Negative dimensions fail
// with ErrInvalidDimensions.
func NewBoard(width, height int) (*Board, error) {
	if width < 0 || height < 0 {
		return nil, &BoardError{
			Kind:   ErrInvalidDimensions,
			Detail: fmt.Sprintf("Invalid board dimension (%d, %d)", width, height),
		}
	}

	return &Board{
		minX: 0,
		minY: 0,
		maxX: width - 1,
		maxY: height - 1,
	}, nil
}

// ValidatePosition reports whether (x, y) lies on the board
func (b *Board) ValidatePosition(x, y int) bool {
	return x >= b.minX && x <= b.maxX &&
		y >= b.minY && y <= b.maxY
}

// Contains is ValidatePosition for a Position value
func (b *Board) Contains(p Position) bool {
	return b.ValidatePosition(p.X, p.Y)
}

func (b *Board) Width() int  { return b.maxX - b.minX + 1 }
func (b *Board) Height() int { return b.maxY - b.minY + 1 }

func (b *Board) MinX() int { return b.minX }
func (b *Board) MinY() int { return b.minY }
func (b *Board) MaxX() int { return b.maxX }
func (b *Board) MaxY() int { return b.maxY }
