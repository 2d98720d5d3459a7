package engine

import (
	"errors"
	"testing"
)

func createTestBike(t *testing.T) *Bike {
	t.Helper()
	board, err := NewBoard(DefaultBoardWidth, DefaultBoardHeight)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return NewBike(board)
}

func assertBikeError(t *testing.T, err error, kind error, detail string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error %q, got nil", detail)
	}
	if !errors.Is(err, kind) {
		t.Errorf("Expected error kind %v, got %v", kind, err)
	}
	if !IsBikeError(err) {
		t.Errorf("Expected *BikeError, got %T", err)
	}
	if err.Error() != detail {
		t.Errorf("Expected detail %q, got %q", detail, err.Error())
	}
}

func TestNewBike_Unplaced(t *testing.T) {
	bike := createTestBike(t)

	if _, ok := bike.Position(); ok {
		t.Error("Expected no position on a new bike")
	}
	if _, ok := bike.Heading(); ok {
		t.Error("Expected no heading on a new bike")
	}
	if bike.IsPlaced() {
		t.Error("Expected new bike to be unplaced")
	}
	if bike.Board() == nil {
		t.Error("Expected bike to keep its board")
	}

	_, err := bike.Report()
	assertBikeError(t, err, ErrUnplaced, "Bike cannot report if unplaced.")
	assertBikeError(t, bike.Move(1), ErrUnplaced, "Bike cannot move if unplaced.")
	assertBikeError(t, bike.RotateLeft(), ErrUnplaced, "Bike cannot rotate left if unplaced.")
	assertBikeError(t, bike.RotateRight(), ErrUnplaced, "Bike cannot rotate right if unplaced.")
}

func TestPlaceAndReport(t *testing.T) {
	tests := []struct {
		x, y      int
		direction string
		expected  string
	}{
		{1, 1, "WEST", "1,1,WEST"},
		{0, 0, "north", "0,0,NORTH"},
		{6, 6, "East", "6,6,EAST"},
		{3, 5, "sOuTh", "3,5,SOUTH"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			bike := createTestBike(t)
			if err := bike.Place(test.x, test.y, test.direction); err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			if !bike.IsPlaced() {
				t.Error("Expected bike to be placed")
			}
			report, err := bike.Report()
			if err != nil {
				t.Fatalf("Report failed: %v", err)
			}
			if report != test.expected {
				t.Errorf("Expected %s, got %s", test.expected, report)
			}
		})
	}
}

func TestPlace_InvalidPositionKeepsPreviousState(t *testing.T) {
	bike := createTestBike(t)
	if err := bike.Place(2, 2, "north"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	err := bike.Place(7, 0, "south")
	assertBikeError(t, err, ErrInvalidPosition, "Invalid position (7, 0)")

	report, _ := bike.Report()
	if report != "2,2,NORTH" {
		t.Errorf("Expected state unchanged at 2,2,NORTH, got %s", report)
	}
}

func TestPlace_InvalidDirectionUpdatesPositionOnly(t *testing.T) {
	bike := createTestBike(t)
	if err := bike.Place(2, 2, "north"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	err := bike.Place(4, 4, "UP")
	assertBikeError(t, err, ErrInvalidDirection, "Invalid direction up")

	report, _ := bike.Report()
	if report != "4,4,NORTH" {
		t.Errorf("Expected position moved with old heading (4,4,NORTH), got %s", report)
	}
}

func TestPlace_InvalidDirectionOnFreshBike(t *testing.T) {
	bike := createTestBike(t)

	err := bike.Place(1, 1, "sideways")
	assertBikeError(t, err, ErrInvalidDirection, "Invalid direction sideways")

	if pos, ok := bike.Position(); !ok || pos != (Position{1, 1}) {
		t.Errorf("Expected position (1,1) to be set, got %v (set=%v)", pos, ok)
	}
	if _, ok := bike.Heading(); ok {
		t.Error("Expected heading to remain unset")
	}
	if bike.IsPlaced() {
		t.Error("Expected bike to remain unplaced without a heading")
	}
	if _, err := bike.Report(); !errors.Is(err, ErrUnplaced) {
		t.Errorf("Expected ErrUnplaced from report, got %v", err)
	}
}

func TestSetPositionBeforePlacement(t *testing.T) {
	bike := createTestBike(t)

	if err := bike.SetPosition(3, 3); err != nil {
		t.Fatalf("SetPosition failed: %v", err)
	}
	if err := bike.Move(1); !errors.Is(err, ErrUnplaced) {
		t.Errorf("Expected move without heading to be unplaced, got %v", err)
	}

	assertBikeError(t, bike.SetPosition(-1, 3), ErrInvalidPosition, "Invalid position (-1, 3)")
	if pos, _ := bike.Position(); pos != (Position{3, 3}) {
		t.Errorf("Expected position unchanged, got %v", pos)
	}
}

func TestSetDirectionOnlyAllowsRotation(t *testing.T) {
	bike := createTestBike(t)

	if err := bike.SetDirection("north"); err != nil {
		t.Fatalf("SetDirection failed: %v", err)
	}
	if err := bike.RotateRight(); err != nil {
		t.Errorf("Expected rotation with heading only to succeed, got %v", err)
	}
	if h, _ := bike.Heading(); h != East {
		t.Errorf("Expected East, got %v", h)
	}
	if err := bike.Move(1); !errors.Is(err, ErrUnplaced) {
		t.Errorf("Expected move without position to be unplaced, got %v", err)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		direction string
		steps     int
		expected  string
	}{
		{"north one", 3, 3, "north", 1, "3,4,NORTH"},
		{"east two", 3, 3, "east", 2, "5,3,EAST"},
		{"south to edge", 3, 3, "south", 3, "3,0,SOUTH"},
		{"west to edge", 3, 3, "west", 3, "0,3,WEST"},
		{"zero steps", 0, 0, "south", 0, "0,0,SOUTH"},
		{"backwards", 3, 3, "north", -2, "3,1,NORTH"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bike := createTestBike(t)
			if err := bike.Place(test.x, test.y, test.direction); err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			if err := bike.Move(test.steps); err != nil {
				t.Fatalf("Move(%d) failed: %v", test.steps, err)
			}
			report, _ := bike.Report()
			if report != test.expected {
				t.Errorf("Expected %s, got %s", test.expected, report)
			}
		})
	}
}

func TestMove_OffBoardFailsWithoutClamping(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		direction string
		steps     int
		detail    string
	}{
		{"south from origin", 0, 0, "SOUTH", 1, "Bike cannot move to invalid position (0, -1)"},
		{"north past edge", 3, 5, "north", 2, "Bike cannot move to invalid position (3, 7)"},
		{"east far", 0, 0, "east", 10, "Bike cannot move to invalid position (10, 0)"},
		{"backwards off board", 0, 2, "east", -1, "Bike cannot move to invalid position (-1, 2)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bike := createTestBike(t)
			if err := bike.Place(test.x, test.y, test.direction); err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			before, _ := bike.Report()

			assertBikeError(t, bike.Move(test.steps), ErrInvalidPosition, test.detail)

			after, _ := bike.Report()
			if before != after {
				t.Errorf("Expected state unchanged after failed move: before %s, after %s", before, after)
			}
		})
	}
}

func TestRotateLeftSequence(t *testing.T) {
	bike := createTestBike(t)
	if err := bike.Place(1, 1, "SOUTH"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	expected := []string{"EAST", "NORTH", "WEST", "SOUTH"}
	for i, want := range expected {
		if err := bike.RotateLeft(); err != nil {
			t.Fatalf("RotateLeft #%d failed: %v", i+1, err)
		}
		h, _ := bike.Heading()
		if h.Upper() != want {
			t.Errorf("After %d left turns: expected %s, got %s", i+1, want, h.Upper())
		}
	}

	if pos, _ := bike.Position(); pos != (Position{1, 1}) {
		t.Errorf("Rotation should not move the bike, got %v", pos)
	}
}

func TestRotateRightSequence(t *testing.T) {
	bike := createTestBike(t)
	if err := bike.Place(1, 1, "north"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	expected := []Heading{East, South, West, North}
	for i, want := range expected {
		if err := bike.RotateRight(); err != nil {
			t.Fatalf("RotateRight #%d failed: %v", i+1, err)
		}
		if h, _ := bike.Heading(); h != want {
			t.Errorf("After %d right turns: expected %v, got %v", i+1, want, h)
		}
	}
}

func TestDrivingScenario(t *testing.T) {
	bike := createTestBike(t)

	steps := []func() error{
		func() error { return bike.Place(1, 1, "SOUTH") },
		func() error { return bike.Move(1) },
		func() error { return bike.Move(1) },
		bike.RotateLeft,
		func() error { return bike.Move(1) },
	}

	var failures int
	for _, step := range steps {
		if err := step(); err != nil {
			failures++
		}
	}

	// The second move runs off the southern edge and is ignored.
	if failures != 1 {
		t.Errorf("Expected exactly one failed step, got %d", failures)
	}

	report, err := bike.Report()
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if report != "2,0,EAST" {
		t.Errorf("Expected 2,0,EAST, got %s", report)
	}
}

func TestPlacedBikeNeverReturnsToUnplaced(t *testing.T) {
	bike := createTestBike(t)
	if err := bike.Place(0, 0, "west"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	_ = bike.Move(5)
	_ = bike.Place(-1, -1, "north")
	_ = bike.Place(0, 0, "nowhere")
	_ = bike.RotateLeft()

	if !bike.IsPlaced() {
		t.Error("Expected bike to stay placed after failed operations")
	}
}
