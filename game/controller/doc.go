// Package controller maps tokenized commands onto bike operations.
//
// A Dispatcher owns one Bike and processes commands strictly in order.
// Argument shape is checked before the bike is touched: a PLACE without
// three arguments or with non-numeric coordinates is skipped silently,
// and a FORWARD with a missing or non-numeric count moves one step.
//
// Failures raised by the bike never escape the dispatcher. Each one is
// written to the Output as
//
//	Ignored "<command>": <detail>
//
// and processing continues with the next command. Unknown command names
// are a pure no-op with no diagnostic.
//
// Usage:
//
//	board, _ := engine.NewBoard(7, 7)
//	d := controller.NewDispatcher(engine.NewBike(board), controller.NewWriterOutput(os.Stdout, os.Stdout))
//	d.Run([]controller.Command{
//		{Name: "PLACE", Args: []string{"1", "1", "SOUTH"}},
//		{Name: "TURN_LEFT"},
//		{Name: "GPS_REPORT"},
//	})
package controller
