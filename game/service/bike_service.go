package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/wricardo/bikedriving/game/controller"
	"github.com/wricardo/bikedriving/game/engine"
)

var (
	// ErrBoardNotFound is returned when a named board profile does not exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrConfigNotFound is what a ConfigManager returns for a missing profile
	ErrConfigNotFound = errors.New("configuration not found")
)

// BikeService defines the operations exposed to the CLI
type BikeService interface {
	// Run executes already tokenized commands on the named board ("" = default)
	Run(ctx context.Context, boardName string, commands []controller.Command) (*RunResult, error)

	// RunFile tokenizes and executes a command file on the named board
	RunFile(ctx context.Context, boardName, path string) (*RunResult, error)

	// Boards
	ListBoards(ctx context.Context) ([]*ConfigInfo, error)
	LoadBoard(ctx context.Context, boardName string) (*engine.BoardConfig, error)
}

// ConfigManager handles board profile loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.BoardConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.BoardConfig
}

// bikeServiceImpl implements the BikeService interface
type bikeServiceImpl struct {
	configs ConfigManager
	output  controller.Output
	logger  *log.Logger
	verbose bool
}

// Option customises a BikeService
type Option func(*bikeServiceImpl)

// WithLogger routes service logging (profile selection, verbose traces)
func WithLogger(logger *log.Logger) Option {
	return func(s *bikeServiceImpl) { s.logger = logger }
}

// WithVerbose enables per-command trace logging
func WithVerbose(verbose bool) Option {
	return func(s *bikeServiceImpl) { s.verbose = verbose }
}

// NewBikeService creates a new bike service. configs may be nil, in which
// case only the built-in default board is available.
func NewBikeService(configs ConfigManager, output controller.Output, opts ...Option) BikeService {
	s := &bikeServiceImpl{
		configs: configs,
		output:  output,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadBoard resolves a board profile by name
func (s *bikeServiceImpl) LoadBoard(ctx context.Context, boardName string) (*engine.BoardConfig, error) {
	if s.configs == nil {
		if boardName == "" || boardName == engine.DefaultBoardConfig().Name {
			return engine.DefaultBoardConfig(), nil
		}
		return nil, fmt.Errorf("%w: %s (no config directory)", ErrBoardNotFound, boardName)
	}

	if boardName == "" {
		return s.configs.GetDefault(), nil
	}

	board, err := s.configs.LoadConfig(boardName)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			available, listErr := s.configs.ListConfigs()
			if listErr == nil && len(available) > 0 {
				var ids []string
				for _, cfg := range available {
					ids = append(ids, cfg.ConfigID)
				}
				return nil, fmt.Errorf("%w: '%s'. Available boards: %v", ErrBoardNotFound, boardName, ids)
			}
			return nil, fmt.Errorf("%w: '%s'", ErrBoardNotFound, boardName)
		}
		return nil, fmt.Errorf("failed to load board %s: %w", boardName, err)
	}
	return board, nil
}

// ListBoards returns every available board profile
func (s *bikeServiceImpl) ListBoards(ctx context.Context) ([]*ConfigInfo, error) {
	if s.configs == nil {
		def := engine.DefaultBoardConfig()
		return []*ConfigInfo{{
			ConfigID:    def.Name,
			Name:        def.Name,
			Description: def.Description,
			Width:       def.Width,
			Height:      def.Height,
		}}, nil
	}
	return s.configs.ListConfigs()
}

// Run executes commands on the named board
func (s *bikeServiceImpl) Run(ctx context.Context, boardName string, commands []controller.Command) (*RunResult, error) {
	sim, err := s.simulator(ctx, boardName)
	if err != nil {
		return nil, err
	}
	return sim.Run(ctx, commands)
}

// RunFile executes the command file at path on the named board
func (s *bikeServiceImpl) RunFile(ctx context.Context, boardName, path string) (*RunResult, error) {
	sim, err := s.simulator(ctx, boardName)
	if err != nil {
		return nil, err
	}
	return sim.RunFile(ctx, path)
}

func (s *bikeServiceImpl) simulator(ctx context.Context, boardName string) (*Simulator, error) {
	board, err := s.LoadBoard(ctx, boardName)
	if err != nil {
		return nil, err
	}

	if s.verbose {
		s.logger.Printf("Using board %q (%dx%d)", board.Name, board.Width, board.Height)
	}

	sim := NewSimulator(board, s.output)
	sim.SetLogger(s.logger)
	sim.SetVerbose(s.verbose)
	return sim, nil
}
