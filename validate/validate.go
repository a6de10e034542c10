// Command validate checks Latrones rules presets. It checks:
//   - JSON structure, with unknown fields rejected
//   - Field constraints (name, description, pieces_per_player, 8x8 layout)
//   - Layout characters ('.', 'L', 'D') and pieces for both sides
//   - Playability: Light, who moves first after setup, has a legal move
//     (enforced by engine.ValidateRules)
//
// Usage:
//
//	validate check [--dir configs] [files...]
//	validate show <file>
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/latrones/game/engine"
)

var errInvalidConfigs = errors.New("some configurations have errors")

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages holds informational lines; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

func readRules(filePath string) (*engine.Rules, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rules engine.Rules
	if err := dec.Decode(&rules); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &rules, nil
}

// validateConfig loads and validates a single rules file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:     filepath.Base(filePath),
		Valid:    true,
		Messages: []string{},
	}

	rules, err := readRules(filePath)
	if err != nil {
		result.fail("%v", err)
		return result
	}

	if err := engine.ValidateRules(rules); err != nil {
		result.fail("%s", strings.TrimPrefix(err.Error(), "rules validation: "))
		return result
	}

	board, _ := engine.ParseLayout(rules.StartingLayout)
	counts := engine.CountPieces(board)

	movable := board.MovablePieces(engine.Light)

	result.Messages = append(result.Messages,
		fmt.Sprintf("✓ Name: %s", rules.Name),
		fmt.Sprintf("✓ Pieces per player: %d", rules.PiecesPerPlayer),
		fmt.Sprintf("✓ Starting layout: light %d, dark %d", counts.Light, counts.Dark),
		fmt.Sprintf("✓ Light opens with %d movable pieces", len(movable)),
		fmt.Sprintf("✓ Edge captures: %v, placement captures: %v", rules.EdgeCaptures, rules.PlacementCaptures),
	)
	if counts.Light != rules.PiecesPerPlayer || counts.Dark != rules.PiecesPerPlayer {
		result.Messages = append(result.Messages,
			fmt.Sprintf("• Note: starting layout differs from pieces_per_player (%d)", rules.PiecesPerPlayer))
	}

	return result
}

// collectFiles returns the explicit files, or every *.json file in dir.
func collectFiles(dir string, files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("error finding config files: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no config files found in %s", dir)
	}
	return matches, nil
}

func runCheck(out io.Writer, files []string) error {
	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Fprintf(out, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(out, "✅ VALID")
			for _, info := range result.Messages {
				fmt.Fprintln(out, "  "+info)
			}
		} else {
			fmt.Fprintln(out, "❌ INVALID")
			allValid = false
			for _, msg := range result.Messages {
				fmt.Fprintln(out, "  ❌ "+msg)
			}
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
	if !allValid {
		fmt.Fprintln(out, "❌ Some configurations have errors")
		return errInvalidConfigs
	}
	fmt.Fprintln(out, "✅ All configurations are valid!")
	return nil
}

func runShow(out io.Writer, file string) error {
	rules, err := readRules(file)
	if err != nil {
		return err
	}
	if err := engine.ValidateRules(rules); err != nil {
		return err
	}

	board, _ := engine.ParseLayout(rules.StartingLayout)
	counts := engine.CountPieces(board)

	fmt.Fprintf(out, "%s - %s\n\n", rules.Name, rules.Description)
	fmt.Fprintln(out, board.ASCII())
	fmt.Fprintf(out, "\nPieces per player: %d\n", rules.PiecesPerPlayer)
	fmt.Fprintf(out, "Starting layout: light %d, dark %d\n", counts.Light, counts.Dark)
	fmt.Fprintf(out, "Edge captures: %v\n", rules.EdgeCaptures)
	fmt.Fprintf(out, "Placement captures: %v\n", rules.PlacementCaptures)
	return nil
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "validate",
		Usage:  "check Latrones rules presets",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "validate rules files (default: every *.json in --dir)",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Value:   "configs",
						Usage:   "directory scanned when no files are given",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					files, err := collectFiles(cmd.String("dir"), cmd.Args().Slice())
					if err != nil {
						return err
					}
					return runCheck(out, files)
				},
			},
			{
				Name:      "show",
				Usage:     "print a preset's starting layout",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("show expects exactly one file")
					}
					return runShow(out, cmd.Args().First())
				},
			},
		},
	}
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errInvalidConfigs) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
