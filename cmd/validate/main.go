// Command validate checks the board profiles in a config directory
// (default ./configs). For every .json, .yaml and .yml file it reports
// parse errors and profile validation failures, and prints a short
// summary of the valid ones. It exits with status 1 when any profile is
// invalid.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/bikedriving/game/config"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages contains informational lines; otherwise it
// accumulates the errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

// validateFile loads and validates one profile file
func validateFile(path string) ValidationResult {
	result := ValidationResult{
		File:     filepath.Base(path),
		Valid:    true,
		Messages: []string{},
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	result.Messages = append(result.Messages,
		fmt.Sprintf("✓ Name: %s", cfg.Name),
		fmt.Sprintf("✓ Board: %dx%d", cfg.Width, cfg.Height),
	)
	if cfg.Width == 0 || cfg.Height == 0 {
		result.Messages = append(result.Messages, "⚠ Board has no valid cells, every PLACE will be ignored")
	}
	return result
}

// validateDir validates every profile file in dir, in name order
func validateDir(dir string) ([]ValidationResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var results []ValidationResult
	for _, entry := range entries {
		if entry.IsDir() || !config.IsConfigFile(entry.Name()) {
			continue
		}
		results = append(results, validateFile(filepath.Join(dir, entry.Name())))
	}
	return results, nil
}

// printResults writes a per-file report and returns the invalid count
func printResults(w io.Writer, results []ValidationResult) int {
	invalid := 0
	for _, r := range results {
		status := "VALID"
		if !r.Valid {
			status = "INVALID"
			invalid++
		}
		fmt.Fprintf(w, "%s: %s\n", r.File, status)
		for _, msg := range r.Messages {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}
	fmt.Fprintf(w, "\n%d file(s) checked, %d invalid\n", len(results), invalid)
	return invalid
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "validate board profiles",
		ArgsUsage: "[config_dir]",
		Writer:    stdout,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "configs"
			}

			results, err := validateDir(dir)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if invalid := printResults(stdout, results); invalid > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
