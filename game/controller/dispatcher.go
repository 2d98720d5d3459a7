package controller

import (
	"github.com/wricardo/bikedriving/game/engine"
)

// Status classifies what happened to a dispatched command
type Status string

const (
	StatusApplied  Status = "applied"  // bike state changed (or no-op move of 0)
	StatusReported Status = "reported" // GPS_REPORT emitted a line
	StatusSkipped  Status = "skipped"  // malformed PLACE, bike not called
	StatusIgnored  Status = "ignored"  // bike rejected the command
	StatusUnknown  Status = "unknown"  // unrecognised command name
)

// Outcome is the result of dispatching one command
type Outcome struct {
	Command Command `json:"command"`
	Status  Status  `json:"status"`
	Report  string  `json:"report,omitempty"`
	Err     error   `json:"-"`
}

// Dispatcher runs commands against a single bike
type Dispatcher struct {
	bike   *engine.Bike
	output Output
}

// NewDispatcher creates a dispatcher driving bike. A nil output discards
// everything.
func NewDispatcher(bike *engine.Bike, output Output) *Dispatcher {
	if output == nil {
		output = discardOutput{}
	}
	return &Dispatcher{
		bike:   bike,
		output: output,
	}
}

// Bike returns the bike being driven
func (d *Dispatcher) Bike() *engine.Bike {
	return d.bike
}

// Run dispatches every command in order and returns their outcomes
func (d *Dispatcher) Run(commands []Command) []Outcome {
	outcomes := make([]Outcome, 0, len(commands))
	for _, cmd := range commands {
		outcomes = append(outcomes, d.Dispatch(cmd))
	}
	return outcomes
}

// Dispatch executes one command. Bike errors are converted into an
// Ignored diagnostic and an Outcome with StatusIgnored; they are never
// returned to the caller.
func (d *Dispatcher) Dispatch(cmd Command) Outcome {
	name := cmd.Normalized()
	outcome := Outcome{Command: cmd, Status: StatusApplied}

	var err error
	switch name {
	case CommandPlace:
		x, y, direction, ok := cmd.PlaceArgs()
		if !ok {
			outcome.Status = StatusSkipped
			return outcome
		}
		err = d.bike.Place(x, y, direction)

	case CommandForward:
		err = d.bike.Move(cmd.ForwardSteps(engine.DefaultSteps))

	case CommandTurnLeft:
		err = d.bike.RotateLeft()

	case CommandTurnRight:
		err = d.bike.RotateRight()

	case CommandGPSReport:
		var line string
		line, err = d.bike.Report()
		if err == nil {
			d.output.Report(line)
			outcome.Status = StatusReported
			outcome.Report = line
		}

	default:
		outcome.Status = StatusUnknown
		return outcome
	}

	if err != nil {
		d.output.Ignored(name, err)
		outcome.Status = StatusIgnored
		outcome.Err = err
	}

	return outcome
}

type discardOutput struct{}

func (discardOutput) Report(string)         {}
func (discardOutput) Ignored(string, error) {}
