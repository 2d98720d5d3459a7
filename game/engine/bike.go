package engine

import (
	"fmt"
	"strings"
)

// Bike is a directional vehicle bound to a Board.
//
// Position and heading are both absent until the first successful Place.
// SetPosition and SetDirection can fill them independently, which is how
// Place ends up with a new position but the old heading when the
// direction name is rejected.
type Bike struct {
	board    *Board
	position *Position
	heading  *Heading
}

// NewBike creates an unplaced bike on the given board
func NewBike(board *Board) *Bike {
	return &Bike{board: board}
}

// Board returns the board the bike validates against
func (b *Bike) Board() *Board {
	return b.board
}

// Position returns the current position and whether one is set
func (b *Bike) Position() (Position, bool) {
	if b.position == nil {
		return Position{}, false
	}
	return *b.position, true
}

// Heading returns the current heading and whether one is set
func (b *Bike) Heading() (Heading, bool) {
	if b.heading == nil {
		return 0, false
	}
	return *b.heading, true
}

// IsPlaced returns true once both position and heading are known
func (b *Bike) IsPlaced() bool {
	return b.position != nil && b.heading != nil
}

// SetPosition moves the bike to (x, y) without touching its heading
func (b *Bike) SetPosition(x, y int) error {
	if !b.board.ValidatePosition(x, y) {
		return bikeErrorf(ErrInvalidPosition, "Invalid position (%d, %d)", x, y)
	}

	b.position = &Position{X: x, Y: y}
	return nil
}

// SetDirection points the bike at the named compass direction
func (b *Bike) SetDirection(name string) error {
	h, ok := ParseHeading(name)
	if !ok {
		return bikeErrorf(ErrInvalidDirection, "Invalid direction %s", strings.ToLower(name))
	}

	b.heading = &h
	return nil
}

// Place sets the position and then the direction.
//
// It is not transactional: a rejected direction leaves the new position
// in place and the previous heading (if any) unchanged.
func (b *Bike) Place(x, y int, direction string) error {
	if err := b.SetPosition(x, y); err != nil {
		return err
	}
	return b.SetDirection(direction)
}

// Move advances the bike steps cells along its heading. Zero steps is a
// no-op and negative steps move backwards. The target must be on the
// board; nothing is clamped.
func (b *Bike) Move(steps int) error {
	if b.heading == nil || b.position == nil {
		return bikeErrorf(ErrUnplaced, "Bike cannot move if unplaced.")
	}

	dx, dy := b.heading.Delta()
	target := b.position.Add(dx, dy, steps)

	if !b.board.Contains(target) {
		return bikeErrorf(ErrInvalidPosition, "Bike cannot move to invalid position (%d, %d)", target.X, target.Y)
	}

	return b.SetPosition(target.X, target.Y)
}

// RotateLeft turns the bike a quarter turn anti-clockwise
func (b *Bike) RotateLeft() error {
	if b.heading == nil {
		return bikeErrorf(ErrUnplaced, "Bike cannot rotate left if unplaced.")
	}

	h := b.heading.Left()
	b.heading = &h
	return nil
}

// RotateRight turns the bike a quarter turn clockwise
func (b *Bike) RotateRight() error {
	if b.heading == nil {
		return bikeErrorf(ErrUnplaced, "Bike cannot rotate right if unplaced.")
	}

	h := b.heading.Right()
	b.heading = &h
	return nil
}

// Report returns the bike state as "x,y,HEADING"
func (b *Bike) Report() (string, error) {
	if b.position == nil || b.heading == nil {
		return "", bikeErrorf(ErrUnplaced, "Bike cannot report if unplaced.")
	}

	return formatReport(*b.position, *b.heading), nil
}

func formatReport(p Position, h Heading) string {
	return fmt.Sprintf("%d,%d,%s", p.X, p.Y, h.Upper())
}
