package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/wricardo/bikedriving/game/controller"
	"github.com/wricardo/bikedriving/game/engine"
	"github.com/wricardo/bikedriving/game/script"
)

// Simulator runs command scripts on boards built from one profile
type Simulator struct {
	board   *engine.BoardConfig
	output  controller.Output
	logger  *log.Logger
	verbose bool
}

// NewSimulator creates a simulator. A nil board uses the built-in default
// and a nil output only records.
func NewSimulator(board *engine.BoardConfig, output controller.Output) *Simulator {
	if board == nil {
		board = engine.DefaultBoardConfig()
	}
	return &Simulator{
		board:  board,
		output: output,
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger sets where per-command trace lines go when verbose is on
func (s *Simulator) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s.logger = logger
}

// SetVerbose toggles per-command tracing. Diagnostics for ignored
// commands are emitted either way.
func (s *Simulator) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Board returns the profile boards are built from
func (s *Simulator) Board() *engine.BoardConfig {
	return s.board
}

// Run builds a fresh board and bike and dispatches commands in order.
// Board construction errors are returned; bike errors never are. When
// ctx is cancelled between commands the partial result is returned with
// ctx.Err().
func (s *Simulator) Run(ctx context.Context, commands []controller.Command) (*RunResult, error) {
	board, err := engine.NewBoardFromConfig(s.board)
	if err != nil {
		return nil, fmt.Errorf("failed to create board %q: %w", s.board.Name, err)
	}

	recorder := controller.NewRecordingOutput(s.output)
	bike := engine.NewBike(board)
	dispatcher := controller.NewDispatcher(bike, recorder)

	result := &RunResult{
		Board:    s.board,
		Commands: len(commands),
		Outcomes: make([]controller.Outcome, 0, len(commands)),
		Counts:   make(map[controller.Status]int),
	}

	var runErr error
	for _, cmd := range commands {
		if err := ctx.Err(); err != nil {
			result.Cancelled = true
			runErr = err
			break
		}

		outcome := dispatcher.Dispatch(cmd)
		result.Outcomes = append(result.Outcomes, outcome)
		result.Counts[outcome.Status]++

		if s.verbose {
			s.logger.Printf("line %d: %s %v -> %s", cmd.Line, cmd.Name, cmd.Args, outcome.Status)
		}
	}

	result.Reports = recorder.Reports
	result.Ignored = recorder.Diagnostics
	result.Final = snapshot(bike)

	return result, runErr
}

// RunScript tokenizes src and runs it
func (s *Simulator) RunScript(ctx context.Context, src string) (*RunResult, error) {
	commands, err := script.ParseString(src)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, commands)
}

// RunFile tokenizes the command file at path and runs it
func (s *Simulator) RunFile(ctx context.Context, path string) (*RunResult, error) {
	commands, err := script.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, commands)
}

func snapshot(bike *engine.Bike) StateSnapshot {
	var snap StateSnapshot
	if pos, ok := bike.Position(); ok {
		snap.Position = &pos
	}
	if h, ok := bike.Heading(); ok {
		snap.Heading = h.Upper()
	}
	snap.Placed = bike.IsPlaced()
	return snap
}
