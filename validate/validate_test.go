package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `{
	"name": "test",
	"description": "Test configuration",
	"pieces_per_player": 8,
	"edge_captures": false,
	"placement_captures": false,
	"starting_layout": [
		"D......L",
		"D......L",
		"D......L",
		"D......L",
		"D......L",
		"D......L",
		"D......L",
		"D......L"
	]
}`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "test.json", validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Messages)
	}
	if result.File != "test.json" {
		t.Errorf("Expected file name test.json, got %s", result.File)
	}

	joined := strings.Join(result.Messages, "\n")
	for _, want := range []string{"✓ Name: test", "✓ Starting layout: light 8, dark 8", "✓ Light opens with 8 movable pieces"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected %q in messages: %v", want, result.Messages)
		}
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Invalid JSON",
			content:  `{"name": "test", invalid json}`,
			expected: "invalid JSON",
		},
		{
			name:     "Unknown field",
			content:  strings.Replace(validConfig, `"name": "test",`, `"name": "test", "grid_size": 8,`, 1),
			expected: `unknown field "grid_size"`,
		},
		{
			name:     "Zero pieces",
			content:  strings.Replace(validConfig, `"pieces_per_player": 8`, `"pieces_per_player": 0`, 1),
			expected: "PiecesPerPlayer must be at least 1",
		},
		{
			name:     "Missing description",
			content:  strings.Replace(validConfig, `"description": "Test configuration",`, "", 1),
			expected: "Description is required",
		},
		{
			name:     "Bad layout character",
			content:  strings.Replace(validConfig, `"D......L",`, `"D..X...L",`, 1),
			expected: "invalid character 'X'",
		},
		{
			name: "One side missing",
			content: `{"name": "x", "description": "x", "pieces_per_player": 8, "starting_layout": [
				"L.......", "........", "........", "........",
				"........", "........", "........", "........"]}`,
			expected: "must contain pieces for both players",
		},
		{
			name: "Light cannot move",
			content: `{"name": "x", "description": "x", "pieces_per_player": 8, "starting_layout": [
				"........", "........", "........", "........",
				"........", "........", "D.......", "LD......"]}`,
			expected: "starting_layout gives Light no legal move",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "bad.json", tt.content)

			result := validateConfig(path)
			if result.Valid {
				t.Fatal("Expected invalid config")
			}
			if !strings.Contains(strings.Join(result.Messages, "\n"), tt.expected) {
				t.Errorf("Expected error containing %q, got %v", tt.expected, result.Messages)
			}
		})
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "nope.json"))

	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if len(result.Messages) == 0 || !strings.Contains(result.Messages[0], "failed to read file") {
		t.Errorf("Expected read error, got %v", result.Messages)
	}
}

func TestValidateConfig_LayoutDiffersFromQuota(t *testing.T) {
	content := strings.Replace(validConfig, `"pieces_per_player": 8`, `"pieces_per_player": 4`, 1)
	result := validateConfig(writeConfig(t, t.TempDir(), "quota.json", content))

	if !result.Valid {
		t.Fatalf("Expected valid config, got %v", result.Messages)
	}
	if !strings.Contains(strings.Join(result.Messages, "\n"), "starting layout differs from pieces_per_player (4)") {
		t.Errorf("Expected quota note, got %v", result.Messages)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.json", validConfig)

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"validate", "check", "--dir", dir})
	if err != nil {
		t.Fatalf("Expected success, got %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "✅ All configurations are valid!") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}

	bad := writeConfig(t, dir, "b.json", `{}`)
	out.Reset()
	err = newCommand(&out).Run(context.Background(), []string{"validate", "check", "--dir", dir})
	if !errors.Is(err, errInvalidConfigs) {
		t.Errorf("Expected errInvalidConfigs, got %v", err)
	}
	if !strings.Contains(out.String(), "❌ INVALID") {
		t.Errorf("Expected invalid report:\n%s", out.String())
	}

	// Explicit files override the directory scan
	out.Reset()
	err = newCommand(&out).Run(context.Background(), []string{"validate", "check", filepath.Join(dir, "a.json")})
	if err != nil {
		t.Errorf("Expected a.json alone to pass, got %v", err)
	}
	if strings.Contains(out.String(), filepath.Base(bad)) {
		t.Error("b.json should not be checked when files are given")
	}
}

func TestCheckCommand_EmptyDir(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"validate", "check", "--dir", t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "no config files found") {
		t.Errorf("Expected no config files error, got %v", err)
	}
}

func TestCheckCommand_ShippedPresets(t *testing.T) {
	var out bytes.Buffer
	if err := newCommand(&out).Run(context.Background(), []string{"validate", "check", "--dir", "../configs"}); err != nil {
		t.Fatalf("Shipped presets should be valid: %v\n%s", err, out.String())
	}
}

func TestShowCommand(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "test.json", validConfig)

	var out bytes.Buffer
	if err := newCommand(&out).Run(context.Background(), []string{"validate", "show", path}); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"test - Test configuration", "8 D . . . . . . L 8", "Starting layout: light 8, dark 8"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}

	if err := newCommand(&out).Run(context.Background(), []string{"validate", "show"}); err == nil {
		t.Error("Expected error when no file is given")
	}
}
