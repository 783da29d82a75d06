// Package ebitenaudio 通过 Ebitengine 音频上下文播放合成音效
//
// 与 game 包分开，使只需要设置持久化的前端不必链接音频后端。
package ebitenaudio

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/juice/pkg/game"
	"github.com/gonewx/juice/pkg/sound"
)

// AudioManager 实现 sound.Player：
//   - 首次播放某种音效时渲染 PCM 并缓存
//   - 每次播放创建新的播放器，允许同一音效重叠
//   - 音量与开关从 SettingsManager 读取
//
// 音频上下文为 nil 时（无音频设备、测试环境）所有播放都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager
	pcm             map[sound.Kind][]byte
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		pcm:             make(map[sound.Kind][]byte),
	}
}

// PlaySound 播放音效（实现 sound.Player）
func (am *AudioManager) PlaySound(kind sound.Kind) {
	if !am.soundEnabled() || am.context == nil {
		return
	}

	data := am.getPCM(kind)
	if data == nil {
		return
	}

	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.getSoundVolume())
	player.Play()
}

// Preload 预渲染全部音效，避免首次播放时的卡顿
func (am *AudioManager) Preload() {
	if am.context == nil {
		return
	}
	for _, kind := range sound.Kinds() {
		am.getPCM(kind)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.pcm))
}

// getPCM 获取或渲染音效 PCM
func (am *AudioManager) getPCM(kind sound.Kind) []byte {
	if data, ok := am.pcm[kind]; ok {
		return data
	}

	data := sound.Render(kind, am.context.SampleRate(), 1)
	if data == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", kind)
		return nil
	}
	am.pcm[kind] = data
	return data
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
