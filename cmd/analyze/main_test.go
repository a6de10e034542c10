package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/latrones/game/engine"
)

func TestAnalyze_Classic(t *testing.T) {
	a, err := analyze(engine.DefaultRules())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if a.Counts.Light != 8 || a.Counts.Dark != 8 {
		t.Errorf("Expected 8 pieces a side, got %+v", a.Counts)
	}
	if a.Movable[engine.Light] != 8 || a.Movable[engine.Dark] != 8 {
		t.Errorf("Expected every piece movable, got %v", a.Movable)
	}
	// Each file-edge piece slides six squares towards the other side
	if a.Mobility[engine.Light] != 48 {
		t.Errorf("Expected 48 light destinations, got %d", a.Mobility[engine.Light])
	}
	if len(a.Captures) != 0 {
		t.Errorf("Expected no capturing opening, got %v", a.Captures)
	}
	if len(a.BlockedLight) != 0 {
		t.Errorf("Expected no blocked light pieces, got %v", a.BlockedLight)
	}
}

func TestAnalyze_OpeningCapture(t *testing.T) {
	rules := &engine.Rules{
		Name:            "trap",
		Description:     "Light can take on the first move",
		PiecesPerPlayer: 2,
		StartingLayout: []string{
			"D.......",
			"........",
			"........",
			"........",
			"........",
			"..L.....",
			"........",
			"LD......",
		},
	}

	a, err := analyze(rules)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(a.Captures) != 1 {
		t.Fatalf("Expected 1 capturing opening, got %d: %v", len(a.Captures), a.Captures)
	}
	c := a.Captures[0]
	if engine.SquareName(c.From) != "C3" || engine.SquareName(c.To) != "C1" {
		t.Errorf("Expected C3-C1, got %s-%s", engine.SquareName(c.From), engine.SquareName(c.To))
	}
	if len(c.Captured) != 1 || engine.SquareName(c.Captured[0]) != "B1" {
		t.Errorf("Expected B1 captured, got %v", c.Captured)
	}

	var buf bytes.Buffer
	report(&buf, a)
	if !strings.Contains(buf.String(), "C3-C1 takes B1") {
		t.Errorf("Expected capture in report, got:\n%s", buf.String())
	}
}

func TestAnalyze_BlockedLight(t *testing.T) {
	rules := &engine.Rules{
		Name:            "cornered",
		Description:     "A1 is boxed in",
		PiecesPerPlayer: 3,
		StartingLayout: []string{
			"........",
			"........",
			"........",
			"........",
			"........",
			".......L",
			"D.......",
			"LD......",
		},
	}

	a, err := analyze(rules)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if len(a.BlockedLight) != 1 || engine.SquareName(a.BlockedLight[0]) != "A1" {
		t.Errorf("Expected A1 blocked, got %v", a.BlockedLight)
	}

	var buf bytes.Buffer
	report(&buf, a)
	if !strings.Contains(buf.String(), "1 Light pieces start with no move: A1") {
		t.Errorf("Expected blocked warning, got:\n%s", buf.String())
	}
}

func TestReport_NoCaptures(t *testing.T) {
	a, err := analyze(engine.DefaultRules())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	var buf bytes.Buffer
	report(&buf, a)

	for _, want := range []string{"Name: classic", "Movable Pieces: light 8, dark 8", "✅ No opening move captures"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Expected %q in report:\n%s", want, buf.String())
		}
	}
}
