package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore 在临时 HOME 下打开 gdata 存储
func openTestStore(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.ReducedMotion {
		t.Error("ReducedMotion: got true, want false")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	sm := NewSettingsManager(openTestStore(t, "test_juice_settings"))

	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("Initial SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	store := openTestStore(t, "test_juice_settings_load_save")

	sm1 := NewSettingsManager(store)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetReducedMotion(true)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(store)
	settings := sm2.GetSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.ReducedMotion {
		t.Error("Loaded ReducedMotion: got false, want true")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadPartialFile 旧文件缺少的字段保持默认值
func TestSettingsLoadPartialFile(t *testing.T) {
	store := openTestStore(t, "test_juice_settings_partial")

	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("reducedMotion: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	settings := NewSettingsManager(store).GetSettings()
	if !settings.ReducedMotion {
		t.Error("ReducedMotion: got false, want true")
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled should keep its default, got false")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume should keep its default, got %v", settings.SoundVolume)
	}
}

// TestSettingsLoadCorruptFile 损坏的文件回退到默认设置并返回错误
func TestSettingsLoadCorruptFile(t *testing.T) {
	store := openTestStore(t, "test_juice_settings_corrupt")

	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(store)
	if err := sm.Load(); err == nil {
		t.Error("Load() should fail for corrupt data")
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume after corrupt load: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
		{-100, 0.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestSettingsToggles 测试各开关的设置
func TestSettingsToggles(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		name string
		set  func(bool)
		get  func() bool
	}{
		{"SoundEnabled", sm.SetSoundEnabled, func() bool { return sm.GetSettings().SoundEnabled }},
		{"ReducedMotion", sm.SetReducedMotion, func() bool { return sm.GetSettings().ReducedMotion }},
		{"Fullscreen", sm.SetFullscreen, func() bool { return sm.GetSettings().Fullscreen }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set(true)
			if !tt.get() {
				t.Errorf("After Set%s(true): got false, want true", tt.name)
			}
			tt.set(false)
			if tt.get() {
				t.Errorf("After Set%s(false): got true, want false", tt.name)
			}
		})
	}
}

// TestSaveNilGdataManager 测试降级模式下 Save() 不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm := NewSettingsManager(nil)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(0.3)

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("After Load() in degraded mode, SoundVolume: got %v, want 0.8",
			sm.GetSettings().SoundVolume)
	}
}

// TestClampVolume 测试 clampVolume 辅助函数
func TestClampVolume(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-1.0, 0.0},
		{2.0, 1.0},
		{0.001, 0.001},
		{0.999, 0.999},
	}

	for _, tt := range tests {
		result := clampVolume(tt.input)
		if result != tt.expected {
			t.Errorf("clampVolume(%v): got %v, want %v", tt.input, result, tt.expected)
		}
	}
}
