package ebitenaudio

import (
	"testing"

	"github.com/gonewx/juice/pkg/game"
	"github.com/gonewx/juice/pkg/sound"
)

// TestAudioManagerWithoutContext 无音频上下文时播放是空操作
func TestAudioManagerWithoutContext(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("AudioManager panicked without audio context: %v", r)
		}
	}()

	am := NewAudioManager(nil, game.NewSettingsManager(nil))
	am.Preload()
	am.PlaySound(sound.KindSuccess)
	am.PlaySound("whistle")
}

func TestAudioManagerSettings(t *testing.T) {
	sm := game.NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	sm.SetSoundVolume(0.3)
	if got := am.getSoundVolume(); got != 0.3 {
		t.Errorf("volume: got %v, want 0.3", got)
	}
	sm.SetSoundEnabled(false)
	if am.soundEnabled() {
		t.Error("sound should follow the disabled setting")
	}

	bare := NewAudioManager(nil, nil)
	if !bare.soundEnabled() || bare.getSoundVolume() != 0.8 {
		t.Errorf("defaults without settings: enabled=%v volume=%v", bare.soundEnabled(), bare.getSoundVolume())
	}
}
