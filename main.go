// Command bikedriving drives a bike around a bounded grid from a command file.
//
// Each line of the input file holds one command:
//
//	PLACE X,Y,DIRECTION
//	FORWARD [STEPS]
//	TURN_LEFT
//	TURN_RIGHT
//	GPS_REPORT
//
// GPS_REPORT prints "x,y,DIRECTION". Commands the bike cannot perform are
// reported as `Ignored "<command>": <reason>` and the run continues.
//
// The board defaults to 7x7. Named board profiles can be loaded from the
// config directory with --board.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/bikedriving/game/config"
	"github.com/wricardo/bikedriving/game/controller"
	"github.com/wricardo/bikedriving/game/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Bike Driving Simulator"
)

// options collects everything the run action needs
type options struct {
	inputFile  string
	configDir  string
	board      string
	verbose    bool
	debug      bool
	listBoards bool
}

// getConfigDirDefault returns the default configuration directory.
// It first honors the CONFIG_DIR environment variable, then falls back to "configs".
func getConfigDirDefault() string {
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		return configDir
	}
	return "configs"
}

func init() {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the CLI. Reports and ignored-command diagnostics go to
// stdout; logging goes to stderr.
func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "bikedriving",
		Usage:           "drive a bike around a grid from a command file",
		UsageText:       "bikedriving [options] input_file",
		ArgsUsage:       "input_file",
		Version:         Version,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "trace every command to stderr",
			},
			&cli.StringFlag{
				Name:    "board",
				Aliases: []string{"b"},
				Usage:   "board profile name from the config directory",
				Sources: cli.EnvVars("BIKE_BOARD"),
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory containing board profiles",
				Value: getConfigDirDefault(),
			},
			&cli.BoolFlag{
				Name:  "list-boards",
				Usage: "list the board profiles in the config directory and exit",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("BIKE_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := options{
				inputFile:  cmd.Args().First(),
				configDir:  cmd.String("config-dir"),
				board:      cmd.String("board"),
				verbose:    cmd.Bool("verbose"),
				debug:      cmd.Bool("debug"),
				listBoards: cmd.Bool("list-boards"),
			}
			return run(ctx, opts, stdout, stderr)
		},
	}
}

// run validates the input file, resolves the board and drives the bike.
// Usage problems are printed to stdout and returned as cli exit errors
// with status 1.
func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "", log.LstdFlags)
	if opts.debug {
		logger.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	if opts.listBoards {
		return listBoards(ctx, opts, stdout, logger)
	}

	if opts.inputFile == "" {
		return abort(stdout, "You must specify an input file")
	}
	if info, err := os.Stat(opts.inputFile); err != nil || info.IsDir() {
		return abort(stdout, fmt.Sprintf("%s is not a valid input file", opts.inputFile))
	}

	if opts.verbose {
		fmt.Fprintln(stdout, "VERBOSE")
	}

	svc, err := initializeService(opts, stdout, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to initialize: %v", err), 1)
	}

	result, err := svc.RunFile(ctx, opts.board, opts.inputFile)
	if err != nil {
		if errors.Is(err, service.ErrBoardNotFound) {
			return cli.Exit(err.Error(), 1)
		}
		return cli.Exit(fmt.Sprintf("Run failed: %v", err), 1)
	}

	if opts.debug {
		logger.Printf("Processed %d commands on %q, %d reports, %d ignored, final %s",
			result.Commands, result.Board.Name, len(result.Reports), len(result.Ignored), result.Final)
	}
	return nil
}

// listBoards prints one line per available board profile
func listBoards(ctx context.Context, opts options, stdout io.Writer, logger *log.Logger) error {
	svc, err := initializeService(opts, stdout, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to initialize: %v", err), 1)
	}

	boards, err := svc.ListBoards(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to list boards: %v", err), 1)
	}

	for _, b := range boards {
		fmt.Fprintf(stdout, "%s\t%dx%d\t%s\n", b.ConfigID, b.Width, b.Height, b.Description)
	}
	return nil
}

// initializeService wires the config manager and bike service. A missing
// config directory is not fatal: only the built-in board is available.
func initializeService(opts options, stdout io.Writer, logger *log.Logger) (service.BikeService, error) {
	var configs service.ConfigManager

	manager, err := config.NewManager(opts.configDir)
	if err != nil {
		if opts.board != "" {
			return nil, fmt.Errorf("failed to create config manager: %w", err)
		}
		if opts.debug {
			logger.Printf("No board profiles loaded (%v), using built-in 7x7 board", err)
		}
	} else {
		configs = manager
	}

	output := controller.NewWriterOutput(stdout, stdout)
	return service.NewBikeService(configs, output,
		service.WithLogger(logger),
		service.WithVerbose(opts.verbose),
	), nil
}

// abort prints the reason and usage to stdout and exits with status 1
func abort(stdout io.Writer, reason string) error {
	fmt.Fprintln(stdout, abortMessage(reason))
	return cli.Exit("", 1)
}

func abortMessage(reason string) string {
	return fmt.Sprintf("ABORT: %s\n\nusage: bikedriving [options] input_file\n\n"+
		"  input_file\t\tThe filepath containing bike commands to be processed\n\n"+
		"Run with --help for all options.", reason)
}
