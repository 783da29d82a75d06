package speakerplayer

import (
	"testing"

	"github.com/gonewx/juice/pkg/sound"
)

// TestSpeakerPlayerGracefulDegradation 未初始化时所有操作都不应 panic
func TestSpeakerPlayerGracefulDegradation(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("speaker player panicked without initialization: %v", r)
		}
	}()

	p := NewSpeakerPlayer()
	p.SetVolume(0.5)
	p.SetEnabled(false)
	p.PlaySound(sound.KindClick)
	p.PlaySound("whistle")
	p.Cleanup()
}

// TestSpeakerPlayerImplementsPlayer 可以作为特效层的音效播放器
func TestSpeakerPlayerImplementsPlayer(t *testing.T) {
	var _ sound.Player = NewSpeakerPlayer()
}
