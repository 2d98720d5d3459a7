package controller

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Command names understood by the dispatcher (lower-cased)
const (
	CommandPlace     = "place"
	CommandForward   = "forward"
	CommandTurnLeft  = "turn_left"
	CommandTurnRight = "turn_right"
	CommandGPSReport = "gps_report"
)

// KnownCommands lists every command the dispatcher acts on
var KnownCommands = []string{
	CommandPlace,
	CommandForward,
	CommandTurnLeft,
	CommandTurnRight,
	CommandGPSReport,
}

// Command is one tokenized input line. Args is nil when the line had no
// argument token.
type Command struct {
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
	Line int      `json:"line,omitempty"` // 1-based source line, 0 when unknown
}

// Normalized returns the lower-cased command name
func (c Command) Normalized() string {
	return strings.ToLower(c.Name)
}

// IsKnown reports whether the dispatcher has a handler for the command
func (c Command) IsKnown() bool {
	name := c.Normalized()
	for _, known := range KnownCommands {
		if name == known {
			return true
		}
	}
	return false
}

// Arg returns the i-th argument and whether it exists
func (c Command) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	return c.Args[i], true
}

// PlaceArgs extracts the coordinates and direction of a PLACE command.
// ok is false when there are fewer than three arguments or either
// coordinate is not numeric.
func (c Command) PlaceArgs() (x, y int, direction string, ok bool) {
	if len(c.Args) < 3 {
		return 0, 0, "", false
	}

	x, okX := ParseNumeric(c.Args[0])
	y, okY := ParseNumeric(c.Args[1])
	if !okX || !okY {
		return 0, 0, "", false
	}

	return x, y, c.Args[2], true
}

// ForwardSteps returns the step count of a FORWARD command, defaulting to
// one when the argument is missing or not numeric.
func (c Command) ForwardSteps(defaultSteps int) int {
	arg, ok := c.Arg(0)
	if !ok {
		return defaultSteps
	}
	if steps, ok := ParseNumeric(arg); ok {
		return steps
	}
	return defaultSteps
}

// ParseNumeric accepts finite decimal numbers ("3", "-2", "1.9", "1e1")
// surrounded by optional whitespace and truncates them toward zero.
// Values beyond the int range saturate to math.MaxInt or math.MinInt.
func ParseNumeric(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// "Inf" and "NaN" spelled out are not numbers; 1e400 overflowing is
	if math.IsNaN(f) || (err == nil && math.IsInf(f, 0)) {
		return 0, false
	}

	switch {
	case f >= float64(math.MaxInt):
		return math.MaxInt, true
	case f <= float64(math.MinInt):
		return math.MinInt, true
	}
	return int(f), true
}
