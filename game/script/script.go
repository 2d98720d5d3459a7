// Package script turns a command file into tokenized commands.
//
// Each line contributes at most one command: the first whitespace
// delimited token is the name and the second token, split on commas, is
// the argument list. Anything after the second token is ignored and blank
// lines are skipped.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wricardo/bikedriving/game/controller"
)

// MaxLineSize bounds a single input line
const MaxLineSize = 1024 * 1024

// ParseLine tokenizes one line. ok is false for blank lines.
func ParseLine(line string) (cmd controller.Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return controller.Command{}, false
	}

	cmd.Name = fields[0]
	if len(fields) > 1 {
		cmd.Args = strings.Split(fields[1], ",")
	}
	return cmd, true
}

// Parse reads commands from r, one per non-blank line
func Parse(r io.Reader) ([]controller.Command, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var commands []controller.Command
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		cmd.Line = lineNo
		commands = append(commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read commands at line %d: %w", lineNo+1, err)
	}

	return commands, nil
}

// ParseString is Parse over an in-memory script
func ParseString(s string) ([]controller.Command, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile reads and tokenizes the command file at path
func ParseFile(path string) ([]controller.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open command file: %w", err)
	}
	defer f.Close()

	commands, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return commands, nil
}
