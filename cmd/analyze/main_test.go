package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/bikedriving/game/engine"
	"github.com/wricardo/bikedriving/game/script"
)

const sampleScript = `PLACE 1,2,NORTH
FORWARD
JUMP
PLACE 1,x,EAST
TURN_LEFT
FORWARD 5
GPS_REPORT
`

func TestAnalyzeCommands(t *testing.T) {
	commands, err := script.ParseString(sampleScript)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	a, err := analyzeCommands(context.Background(), "sample", commands, nil)
	if err != nil {
		t.Fatalf("analyzeCommands failed: %v", err)
	}

	if a.Total != 7 {
		t.Errorf("Expected 7 commands, got %d", a.Total)
	}
	if a.Counts["place"] != 2 || a.Counts["forward"] != 2 || a.Counts["jump"] != 1 {
		t.Errorf("Unexpected counts: %v", a.Counts)
	}
	if len(a.Unknown) != 1 || a.Unknown[0].Line != 3 {
		t.Errorf("Expected JUMP on line 3 as unknown, got %v", a.Unknown)
	}
	if len(a.Skipped) != 1 || a.Skipped[0].Line != 4 {
		t.Errorf("Expected malformed PLACE on line 4, got %v", a.Skipped)
	}
	if len(a.Ignored) != 1 || a.Ignored[0].Command != "forward" {
		t.Fatalf("Expected one ignored forward, got %v", a.Ignored)
	}
	if a.Ignored[0].Detail != "Bike cannot move to invalid position (-4, 3)" {
		t.Errorf("Unexpected detail: %s", a.Ignored[0].Detail)
	}
	if a.Reports != 1 {
		t.Errorf("Expected 1 report, got %d", a.Reports)
	}
	if got := a.Final.String(); got != "1,3,WEST" {
		t.Errorf("Expected final state 1,3,WEST, got %s", got)
	}
	if len(a.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", a.Warnings)
	}
}

func TestAnalyzeCommands_Warnings(t *testing.T) {
	commands, _ := script.ParseString("FORWARD\nTURN_RIGHT\n")

	a, err := analyzeCommands(context.Background(), "unplaced", commands, nil)
	if err != nil {
		t.Fatalf("analyzeCommands failed: %v", err)
	}
	if len(a.Ignored) != 2 {
		t.Errorf("Expected both commands ignored, got %v", a.Ignored)
	}
	if len(a.Warnings) != 2 {
		t.Errorf("Expected PLACE and GPS_REPORT warnings, got %v", a.Warnings)
	}
}

func TestAnalyzeCommands_SmallBoard(t *testing.T) {
	commands, _ := script.ParseString("PLACE 3,3,NORTH\nGPS_REPORT\n")
	board := &engine.BoardConfig{Name: "tiny", Width: 2, Height: 2}

	a, err := analyzeCommands(context.Background(), "tiny", commands, board)
	if err != nil {
		t.Fatalf("analyzeCommands failed: %v", err)
	}
	if len(a.Ignored) != 2 {
		t.Fatalf("Expected PLACE and GPS_REPORT ignored, got %v", a.Ignored)
	}
	if a.Ignored[0].Detail != "Invalid position (3, 3)" {
		t.Errorf("Unexpected detail: %s", a.Ignored[0].Detail)
	}
}

func TestPrintAnalysis(t *testing.T) {
	commands, _ := script.ParseString(sampleScript)
	a, err := analyzeCommands(context.Background(), "sample", commands, nil)
	if err != nil {
		t.Fatalf("analyzeCommands failed: %v", err)
	}

	var buf bytes.Buffer
	printAnalysis(&buf, a)
	out := buf.String()

	for _, want := range []string{
		"Board: default (7x7)",
		"Commands: 7",
		"1 unknown commands",
		"line 3: JUMP",
		"1 malformed PLACE commands",
		"1 commands ignored by the bike",
		`Ignored "forward": Bike cannot move to invalid position (-4, 3)`,
		"Final state: 1,3,WEST",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	if err := os.WriteFile(path, []byte("PLACE 0,0,EAST\nGPS_REPORT\n"), 0644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	a, err := analyzeFile(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("analyzeFile failed: %v", err)
	}
	if a.Final.String() != "0,0,EAST" {
		t.Errorf("Expected 0,0,EAST, got %s", a.Final)
	}

	if _, err := analyzeFile(context.Background(), filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestResolveBoard(t *testing.T) {
	board, err := resolveBoard("does-not-matter", "")
	if err != nil || board.Name != "default" {
		t.Fatalf("Expected built-in board, got %v, %v", board, err)
	}

	dir := t.TempDir()
	profile := "name: small\nwidth: 3\nheight: 2\n"
	if err := os.WriteFile(filepath.Join(dir, "small.yaml"), []byte(profile), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	board, err = resolveBoard(dir, "small")
	if err != nil {
		t.Fatalf("resolveBoard failed: %v", err)
	}
	if board.Width != 3 || board.Height != 2 {
		t.Errorf("Expected 3x2, got %dx%d", board.Width, board.Height)
	}

	if _, err := resolveBoard(dir, "missing"); err == nil {
		t.Error("Expected error for unknown profile")
	}
}

func TestNewApp_ConfigDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "small.yaml"), []byte("name: small\nwidth: 3\nheight: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}
	path := filepath.Join(t.TempDir(), "commands.txt")
	if err := os.WriteFile(path, []byte("PLACE 2,1,NORTH\nGPS_REPORT\n"), 0644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("BIKE_BOARD", "")

	var out bytes.Buffer
	if err := newApp(&out).Run(context.Background(), []string{"analyze", "--board", "small", path}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Board: small (3x2)") {
		t.Errorf("Expected profile from CONFIG_DIR, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Final state: 2,1,NORTH") {
		t.Errorf("Unexpected final state:\n%s", out.String())
	}
}
