package engine

import "fmt"

// MaxBoardDimension bounds the width and height accepted from profile files
const MaxBoardDimension = 10000

// BoardConfig is a named board profile loaded from the configs directory
type BoardConfig struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
}

// DefaultBoardConfig returns the built-in 7x7 profile
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		Name:        "default",
		Description: "Default 7x7 board",
		Width:       DefaultBoardWidth,
		Height:      DefaultBoardHeight,
	}
}

// ValidateBoardConfig validates a board profile
func ValidateBoardConfig(config *BoardConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Width < 0 || config.Width > MaxBoardDimension {
		return fmt.Errorf("config validation: width must be between 0 and %d, got %d", MaxBoardDimension, config.Width)
	}
	if config.Height < 0 || config.Height > MaxBoardDimension {
		return fmt.Errorf("config validation: height must be between 0 and %d, got %d", MaxBoardDimension, config.Height)
	}
	return nil
}

// NewBoardFromConfig builds the board described by config
func NewBoardFromConfig(config *BoardConfig) (*Board, error) {
	if config == nil {
		config = DefaultBoardConfig()
	}
	return NewBoard(config.Width, config.Height)
}
