package app

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp 切换到临时目录，避免读到工作目录中的 juice.app.yaml
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromWorkingDirectory(t *testing.T) {
	dir := chdirTemp(t)

	content := "windowWidth: 1024\nseed: 7\nclock: frame\n"
	if err := os.WriteFile(filepath.Join(dir, "juice.app.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WindowWidth != 1024 {
		t.Errorf("WindowWidth: got %d, want 1024", cfg.WindowWidth)
	}
	if cfg.WindowHeight != DefaultWindowHeight {
		t.Errorf("WindowHeight: got %d, want default %d", cfg.WindowHeight, DefaultWindowHeight)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed: got %d, want 7", cfg.Seed)
	}
	if cfg.Clock != ClockFrame {
		t.Errorf("Clock: got %q, want %q", cfg.Clock, ClockFrame)
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JUICE_TPS", "30")
	t.Setenv("JUICE_VERBOSE", "true")
	t.Setenv("JUICE_WINDOW_HEIGHT", "480")
	t.Setenv("JUICE_TUNING_PATH", "custom.yaml")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TPS != 30 {
		t.Errorf("TPS: got %d, want 30", cfg.TPS)
	}
	if !cfg.Verbose {
		t.Error("Verbose: got false, want true")
	}
	if cfg.WindowHeight != 480 {
		t.Errorf("WindowHeight: got %d, want 480", cfg.WindowHeight)
	}
	if cfg.TuningPath != "custom.yaml" {
		t.Errorf("TuningPath: got %q, want custom.yaml", cfg.TuningPath)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := chdirTemp(t)

	tests := []struct {
		name    string
		content string
	}{
		{"bad clock", "clock: sundial\n"},
		{"bad size", "windowWidth: 0\n"},
		{"bad tps", "tps: -1\n"},
		{"broken yaml", "windowWidth: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})
}
