// Package engine provides the core simulation logic for the bike driving game.
//
// The engine package implements:
//   - A bounded rectangular Board answering position validity queries
//   - Compass headings with unit displacement vectors and cyclic rotation
//   - The Bike state machine (unplaced/placed) with placement, movement,
//     rotation and reporting
//   - The error taxonomy shared by the dispatcher and the CLI
//
// Core Types:
//
// Board is immutable once created and is only borrowed by a Bike. A Bike
// starts unplaced; Place is the only transition to the placed state and
// no operation ever reverts it. Every failure is returned as a *BikeError
// or *BoardError whose message is the user-facing detail text and which
// unwraps to one of the sentinel errors (ErrInvalidPosition,
// ErrInvalidDirection, ErrUnplaced, ErrInvalidDimensions).
//
// Usage:
//
//	board, err := engine.NewBoard(7, 7)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bike := engine.NewBike(board)
//	if err := bike.Place(1, 1, "south"); err != nil {
//		log.Println(err)
//	}
//	_ = bike.RotateLeft()
//	_ = bike.Move(1)
//	report, _ := bike.Report() // "2,1,EAST"
//
// Coordinates:
//
// (0, 0) is the south-west corner. NORTH increases y, EAST increases x.
// Movement never clamps: a move whose target is off the board fails and
// leaves the bike where it was.
package engine
