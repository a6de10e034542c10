// Command analyze prints quick, human-readable heuristics about the rules
// presets in the project's configs directory. It summarizes piece counts,
// how many pieces each side can move from the starting layout, and which of
// Light's opening moves would capture immediately.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/wricardo/latrones/game/engine"
)

// OpeningCapture is a first move for Light that removes Dark pieces.
type OpeningCapture struct {
	From, To int
	Captured []int
}

// Analysis is the summary of one preset's starting layout.
type Analysis struct {
	Rules        *engine.Rules
	Counts       engine.PlayerCounts
	Movable      map[engine.Player]int
	Mobility     map[engine.Player]int
	Captures     []OpeningCapture
	BlockedLight []int
}

func main() {
	dir := flag.String("dir", "configs", "directory containing rules presets")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*dir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No presets found in %s\n", *dir)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		rules, err := engine.LoadRules(file)
		if err != nil {
			fmt.Printf("Error loading preset: %v\n", err)
			continue
		}
		analysis, err := analyze(rules)
		if err != nil {
			fmt.Printf("Error reading layout: %v\n", err)
			continue
		}
		report(os.Stdout, analysis)
	}
}

func analyze(rules *engine.Rules) (*Analysis, error) {
	board, err := engine.ParseLayout(rules.StartingLayout)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Rules:    rules,
		Counts:   engine.CountPieces(board),
		Movable:  map[engine.Player]int{},
		Mobility: map[engine.Player]int{},
	}

	for _, p := range []engine.Player{engine.Light, engine.Dark} {
		pieces := board.MovablePieces(p)
		a.Movable[p] = len(pieces)
		for _, from := range pieces {
			a.Mobility[p] += len(board.Destinations(from))
		}
	}

	for i := 0; i < engine.SquareCount; i++ {
		if board[i] == engine.LightPiece && !board.CanMove(i) {
			a.BlockedLight = append(a.BlockedLight, i)
		}
	}

	// Light moves first after setup; try every opening move on a scratch board
	for _, from := range board.MovablePieces(engine.Light) {
		for _, to := range board.Destinations(from) {
			scratch := *board
			scratch[to] = scratch[from]
			scratch[from] = engine.Empty
			if captured := scratch.ResolveCaptures(to, engine.Light, rules.EdgeCaptures); len(captured) > 0 {
				a.Captures = append(a.Captures, OpeningCapture{From: from, To: to, Captured: captured})
			}
		}
	}

	return a, nil
}

func report(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Rules.Name)
	fmt.Fprintf(w, "Pieces Per Player: %d\n", a.Rules.PiecesPerPlayer)
	fmt.Fprintf(w, "Starting Layout: light %d, dark %d\n", a.Counts.Light, a.Counts.Dark)
	fmt.Fprintf(w, "Edge Captures: %v\n", a.Rules.EdgeCaptures)
	fmt.Fprintf(w, "Movable Pieces: light %d, dark %d\n", a.Movable[engine.Light], a.Movable[engine.Dark])
	fmt.Fprintf(w, "Total Destinations: light %d, dark %d\n", a.Mobility[engine.Light], a.Mobility[engine.Dark])

	if len(a.BlockedLight) > 0 {
		fmt.Fprintf(w, "⚠️  %d Light pieces start with no move:", len(a.BlockedLight))
		for _, sq := range a.BlockedLight {
			fmt.Fprintf(w, " %s", engine.SquareName(sq))
		}
		fmt.Fprintln(w)
	}

	if len(a.Captures) == 0 {
		fmt.Fprintf(w, "✅ No opening move captures\n")
		return
	}

	fmt.Fprintf(w, "⚠️  WARNING: Light has %d capturing opening moves!\n", len(a.Captures))
	for i, c := range a.Captures {
		if i < 5 { // Show first 5 capturing moves
			fmt.Fprintf(w, "   %s-%s takes", engine.SquareName(c.From), engine.SquareName(c.To))
			for _, sq := range c.Captured {
				fmt.Fprintf(w, " %s", engine.SquareName(sq))
			}
			fmt.Fprintln(w)
		}
	}
	if len(a.Captures) > 5 {
		fmt.Fprintf(w, "   ... and %d more\n", len(a.Captures)-5)
	}
}
