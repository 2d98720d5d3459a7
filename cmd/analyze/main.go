// Command analyze prints quick, human-readable heuristics about bike
// command files. It counts commands by name, lists unknown commands and
// malformed PLACE lines, and dry-runs the script on a board to highlight
// the commands the bike would ignore.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/bikedriving/game/config"
	"github.com/wricardo/bikedriving/game/controller"
	"github.com/wricardo/bikedriving/game/engine"
	"github.com/wricardo/bikedriving/game/script"
	"github.com/wricardo/bikedriving/game/service"
)

// maxListed caps how many lines each warning section prints
const maxListed = 5

// ScriptAnalysis is the static and dry-run summary of one command file
type ScriptAnalysis struct {
	File     string
	Total    int
	Counts   map[string]int
	Unknown  []controller.Command
	Skipped  []controller.Command
	Ignored  []controller.Diagnostic
	Reports  int
	Final    service.StateSnapshot
	Board    *engine.BoardConfig
	Warnings []string
}

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "summarize bike command files",
		ArgsUsage: "file [file...]",
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "board",
				Aliases: []string{"b"},
				Usage:   "board profile to dry-run against",
				Sources: cli.EnvVars("BIKE_BOARD"),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory containing board profiles",
				Value:   "configs",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.Exit("analyze: at least one command file is required", 1)
			}

			board, err := resolveBoard(cmd.String("config-dir"), cmd.String("board"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			for _, path := range cmd.Args().Slice() {
				fmt.Fprintf(stdout, "\n=== Analyzing %s ===\n", path)
				analysis, err := analyzeFile(ctx, path, board)
				if err != nil {
					fmt.Fprintf(stdout, "Error reading file: %v\n", err)
					continue
				}
				printAnalysis(stdout, analysis)
			}
			return nil
		},
	}
}

// resolveBoard loads the named profile, or the built-in board when no
// name is given
func resolveBoard(configDir, name string) (*engine.BoardConfig, error) {
	if name == "" {
		return engine.DefaultBoardConfig(), nil
	}
	manager, err := config.NewManager(configDir)
	if err != nil {
		return nil, err
	}
	return manager.LoadConfig(name)
}

func analyzeFile(ctx context.Context, path string, board *engine.BoardConfig) (*ScriptAnalysis, error) {
	commands, err := script.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return analyzeCommands(ctx, path, commands, board)
}

// analyzeCommands classifies commands statically and then dry-runs them
func analyzeCommands(ctx context.Context, name string, commands []controller.Command, board *engine.BoardConfig) (*ScriptAnalysis, error) {
	analysis := &ScriptAnalysis{
		File:   name,
		Total:  len(commands),
		Counts: make(map[string]int),
	}

	for _, cmd := range commands {
		analysis.Counts[cmd.Normalized()]++
		if !cmd.IsKnown() {
			analysis.Unknown = append(analysis.Unknown, cmd)
			continue
		}
		if cmd.Normalized() == controller.CommandPlace {
			if _, _, _, ok := cmd.PlaceArgs(); !ok {
				analysis.Skipped = append(analysis.Skipped, cmd)
			}
		}
	}

	sim := service.NewSimulator(board, nil)
	result, err := sim.Run(ctx, commands)
	if err != nil {
		return nil, err
	}
	analysis.Board = result.Board
	analysis.Ignored = result.Ignored
	analysis.Reports = len(result.Reports)
	analysis.Final = result.Final

	if analysis.Counts[controller.CommandPlace] == 0 {
		analysis.Warnings = append(analysis.Warnings, "no PLACE command, every other command will be ignored")
	}
	if analysis.Counts[controller.CommandGPSReport] == 0 {
		analysis.Warnings = append(analysis.Warnings, "no GPS_REPORT command, the run produces no output")
	}

	return analysis, nil
}

func printAnalysis(w io.Writer, a *ScriptAnalysis) {
	fmt.Fprintf(w, "Board: %s (%dx%d)\n", a.Board.Name, a.Board.Width, a.Board.Height)
	fmt.Fprintf(w, "Commands: %d\n", a.Total)

	names := make([]string, 0, len(a.Counts))
	for name := range a.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %d\n", name, a.Counts[name])
	}

	if len(a.Unknown) > 0 {
		fmt.Fprintf(w, "⚠️  %d unknown commands\n", len(a.Unknown))
		for i, cmd := range a.Unknown {
			if i == maxListed {
				fmt.Fprintf(w, "   ... and %d more\n", len(a.Unknown)-maxListed)
				break
			}
			fmt.Fprintf(w, "   line %d: %s\n", cmd.Line, cmd.Name)
		}
	}

	if len(a.Skipped) > 0 {
		fmt.Fprintf(w, "⚠️  %d malformed PLACE commands will be skipped\n", len(a.Skipped))
		for i, cmd := range a.Skipped {
			if i == maxListed {
				fmt.Fprintf(w, "   ... and %d more\n", len(a.Skipped)-maxListed)
				break
			}
			fmt.Fprintf(w, "   line %d: %s %v\n", cmd.Line, cmd.Name, cmd.Args)
		}
	}

	if len(a.Ignored) > 0 {
		fmt.Fprintf(w, "⚠️  %d commands ignored by the bike\n", len(a.Ignored))
		for i, d := range a.Ignored {
			if i == maxListed {
				fmt.Fprintf(w, "   ... and %d more\n", len(a.Ignored)-maxListed)
				break
			}
			fmt.Fprintf(w, "   %s\n", d)
		}
	} else {
		fmt.Fprintf(w, "✅ No command was ignored\n")
	}

	for _, warning := range a.Warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warning)
	}

	fmt.Fprintf(w, "Reports: %d\n", a.Reports)
	fmt.Fprintf(w, "Final state: %s\n", a.Final)
}
