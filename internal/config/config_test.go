package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.UI.TPS != 30 {
		t.Errorf("Expected 30 TPS, got %d", cfg.UI.TPS)
	}
	if cfg.UI.StartIndex != -1 {
		t.Errorf("Expected resume start index, got %d", cfg.UI.StartIndex)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "chesstalk.yaml", `
api:
  timeout: 3s
ui:
  square_size: 80
  start_index: 2
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.API.BaseURL != "https://lichess.org" {
		t.Errorf("base URL lost its default: %q", cfg.API.BaseURL)
	}
	if cfg.UI.SquareSize != 80 || cfg.UI.PanelWidth != 600 {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.UI.StartIndex != 2 || cfg.Log.Level != "debug" {
		t.Errorf("unexpected values: %+v %+v", cfg.UI, cfg.Log)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad url", "api:\n  base_url: not a url\n", "must be a URL"},
		{"square too small", "ui:\n  square_size: 10\n", "SquareSize"},
		{"bad level", "log:\n  level: loud\n", "must be one of"},
		{"zero tps", "ui:\n  tps: 0\n", "TPS"},
		{"piece scale too small", "ui:\n  piece_scale: 0.4\n", "PieceScale failed gte=0.5"},
		{"piece scale too large", "ui:\n  piece_scale: 1.2\n", "PieceScale failed lte=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
	edge := writeFile(t, dir, "edge.yaml", "ui:\n  piece_scale: 0.5\n")
	if _, err := Load(edge); err != nil {
		t.Errorf("piece_scale 0.5 should be accepted: %v", err)
	}

	bad := writeFile(t, dir, "bad.yaml", "ui: [1, 2")
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestToken(t *testing.T) {
	t.Setenv(TokenEnv, "")
	dir := t.TempDir()
	cfg := Default()

	cfg.API.TokenFile = filepath.Join(dir, "missing.json")
	if _, err := cfg.Token(); !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken for missing file, got %v", err)
	}

	cfg.API.TokenFile = writeFile(t, dir, "empty.json", `{"lichess_token": ""}`)
	if _, err := cfg.Token(); !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken for empty token, got %v", err)
	}

	cfg.API.TokenFile = writeFile(t, dir, "token.json", `{"lichess_token": " lip_abc "}`)
	tok, err := cfg.Token()
	if err != nil || tok != "lip_abc" {
		t.Errorf("Token() = %q, %v", tok, err)
	}

	t.Setenv(TokenEnv, "lip_env")
	if tok, _ := cfg.Token(); tok != "lip_env" {
		t.Errorf("Expected env token, got %q", tok)
	}
}

func TestSaveToken(t *testing.T) {
	t.Setenv(TokenEnv, "")
	cfg := Default()
	cfg.API.TokenFile = filepath.Join(t.TempDir(), "token.json")

	if err := cfg.SaveToken("lip_saved\n"); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}
	tok, err := cfg.Token()
	if err != nil || tok != "lip_saved" {
		t.Errorf("Token() = %q, %v", tok, err)
	}
}
