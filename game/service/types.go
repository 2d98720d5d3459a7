package service

import (
	"fmt"

	"github.com/wricardo/bikedriving/game/controller"
	"github.com/wricardo/bikedriving/game/engine"
)

// StateSnapshot is the bike state at the end of a run
type StateSnapshot struct {
	Placed   bool             `json:"placed"`
	Position *engine.Position `json:"position,omitempty"`
	Heading  string           `json:"heading,omitempty"`
}

func (s StateSnapshot) String() string {
	if s.Position == nil || s.Heading == "" {
		return "unplaced"
	}
	return fmt.Sprintf("%d,%d,%s", s.Position.X, s.Position.Y, s.Heading)
}

// RunResult contains everything produced by running a script
type RunResult struct {
	Board     *engine.BoardConfig       `json:"board"`
	Commands  int                       `json:"commands"`
	Reports   []string                  `json:"reports"`
	Ignored   []controller.Diagnostic   `json:"ignored"`
	Outcomes  []controller.Outcome      `json:"outcomes"`
	Final     StateSnapshot             `json:"final"`
	Counts    map[controller.Status]int `json:"counts"`
	Cancelled bool                      `json:"cancelled,omitempty"`
}

// ConfigInfo provides information about a board profile
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // identifier to pass as the board name
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}
