// Package speakerplayer 通过 beep/speaker 把合成音效直接送到系统音频设备
//
// 供不使用 Ebitengine 的终端前端使用；打开设备需要 ALSA 等系统音频库，
// 因此与 sound 包分开，核心包不会因此依赖音频设备。
package speakerplayer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/juice/pkg/sound"
)

// SpeakerPlayer 直接输出到系统音频设备，实现 sound.Player
// 未初始化或初始化失败时所有播放调用都是空操作
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sampleRate  beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
}

// NewSpeakerPlayer 创建播放器（尚未打开音频设备）
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{
		mixer:      &beep.Mixer{},
		sampleRate: sound.DefaultSampleRate,
		volume:     1,
		enabled:    true,
	}
}

// Initialize 打开音频设备，重复调用无副作用
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup 停止所有声音
func (p *SpeakerPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetVolume 设置主音量（0-1）
func (p *SpeakerPlayer) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

// SetEnabled 开关音效
func (p *SpeakerPlayer) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// PlaySound 把音效加入混音器，立即返回
func (p *SpeakerPlayer) PlaySound(kind sound.Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}

	cue, ok := sound.NewCue(kind, p.sampleRate)
	if !ok {
		log.Printf("[SpeakerPlayer] Warning: unknown sound %q ignored", kind)
		return
	}

	speaker.Lock()
	p.mixer.Add(sound.WithVolume(cue, p.volume))
	speaker.Unlock()
}
