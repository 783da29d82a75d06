package embedded

import (
	"testing"
	"testing/fstest"
)

// withFS 用内存文件系统初始化，测试结束后恢复未初始化状态
func withFS(t *testing.T, files fstest.MapFS) {
	t.Helper()
	Init(files)
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestNotInitialized(t *testing.T) {
	dataFS = nil
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	if _, err := ReadFile(JuiceConfigPath); err != errNotInitialized {
		t.Errorf("ReadFile: got %v, want errNotInitialized", err)
	}
	if Exists(JuiceConfigPath) {
		t.Error("Exists should be false before Init()")
	}
	if _, err := LoadJuiceConfig(); err == nil {
		t.Error("LoadJuiceConfig should fail before Init()")
	}
}

func TestPathNormalization(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/juice.yaml": {Data: []byte("trail:\n  maxPoints: 5\n")},
	})

	tests := []struct {
		name   string
		path   string
		exists bool
	}{
		{"plain", "data/juice.yaml", true},
		{"dot prefix", "./data/juice.yaml", true},
		{"missing", "data/other.yaml", false},
		{"wrong prefix", "assets/juice.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exists(tt.path); got != tt.exists {
				t.Errorf("Exists(%q): got %v, want %v", tt.path, got, tt.exists)
			}
		})
	}

	if _, err := ReadFile("assets/juice.yaml"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestLoadJuiceConfig(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/juice.yaml": {Data: []byte("trail:\n  maxPoints: 5\n")},
	})

	cfg, err := LoadJuiceConfig()
	if err != nil {
		t.Fatalf("LoadJuiceConfig: %v", err)
	}
	if cfg.Trail.MaxPoints != 5 {
		t.Errorf("Trail.MaxPoints: got %d, want 5", cfg.Trail.MaxPoints)
	}
	// 未写出的字段保持默认
	if cfg.Sparkles.Count != 12 {
		t.Errorf("Sparkles.Count: got %d, want default 12", cfg.Sparkles.Count)
	}
}

func TestLoadJuiceConfigInvalid(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/juice.yaml": {Data: []byte("trail: [\n")},
	})

	if _, err := LoadJuiceConfig(); err == nil {
		t.Error("expected parse error")
	}
}
