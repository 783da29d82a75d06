// Package juice 是特效层的入口
//
// 一个 Juice 值就是一个独立的特效上下文：拥有自己的实体存储、延迟事件队列、
// 随机数源和各个特效系统。宿主在游戏事件发生时调用触发方法，
// 每帧调用一次 Update；过关动画期间额外调用 UpdateLevelComplete。
//
// 所有方法都在游戏循环所在的 goroutine 上调用，不需要加锁。
package juice

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/sound"
	"github.com/gonewx/juice/pkg/surface"
	"github.com/gonewx/juice/pkg/systems"
	"github.com/gonewx/juice/pkg/utils"
)

// ParticleConfig 粒子爆发参数，零值字段使用默认值
type ParticleConfig = systems.ParticleConfig

// DefaultParticleConfig 返回标准粒子爆发参数
func DefaultParticleConfig() ParticleConfig {
	return systems.DefaultParticleConfig()
}

// SquashStretch 按速度计算运动物体的挤压拉伸，maxStretch 为 0 时取 1.3
// 不依赖上下文状态
func SquashStretch(vx, vy, maxStretch float64) utils.SquashStretch {
	return utils.CalculateSquashStretch(vx, vy, maxStretch)
}

// Options 创建特效上下文的选项，零值即默认
type Options struct {
	// Seed 随机数种子，0 表示按当前时间取种子
	Seed int64
	// Clock 延迟事件的时间源，nil 表示真实时间
	Clock systems.Clock
	// Sound 音效播放器，nil 表示静音
	Sound sound.Player
	// Config 调参配置，nil 表示默认配置
	Config *config.JuiceConfig
}

// Juice 一个特效上下文
type Juice struct {
	id     uuid.UUID
	config *config.JuiceConfig
	player sound.Player

	entityManager *ecs.EntityManager
	clock         systems.Clock
	scheduler     *systems.EventScheduler

	particles     *systems.ParticleSystem
	trails        *systems.TrailSystem
	shake         *systems.ShakeSystem
	flash         *systems.FlashEffectSystem
	timeScale     *systems.TimeScaleSystem
	levelComplete *systems.LevelCompleteSystem
}

// New 创建特效上下文
func New(opts Options) *Juice {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = systems.NewWallClock()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	player := opts.Sound
	if player == nil {
		player = sound.NopPlayer{}
	}

	rng := rand.New(rand.NewSource(seed))
	em := ecs.NewEntityManager()
	scheduler := systems.NewEventScheduler(clock)

	j := &Juice{
		id:            uuid.New(),
		config:        cfg,
		player:        player,
		entityManager: em,
		clock:         clock,
		scheduler:     scheduler,
	}

	j.particles = systems.NewParticleSystem(em, rng, scheduler, cfg)
	j.trails = systems.NewTrailSystem(em, cfg)
	j.shake = systems.NewShakeSystem(em, rng, cfg)
	j.flash = systems.NewFlashEffectSystem(em, cfg)
	j.timeScale = systems.NewTimeScaleSystem(em, scheduler, cfg)
	j.levelComplete = systems.NewLevelCompleteSystem(em, cfg, j.shake, j.flash, j.particles, player)

	log.Printf("[Juice %s] Created (seed=%d)", j.shortID(), seed)
	return j
}

// ID 上下文的会话 ID
func (j *Juice) ID() uuid.UUID {
	return j.id
}

func (j *Juice) shortID() string {
	return j.id.String()[:8]
}

// Config 当前调参配置
func (j *Juice) Config() *config.JuiceConfig {
	return j.config
}

// === 粒子 ===

// SpawnParticles 在 (x, y) 生成一次粒子爆发
func (j *Juice) SpawnParticles(x, y float64, cfg ParticleConfig) {
	j.particles.Spawn(x, y, cfg)
}

// SpawnSparkles 小型闪光爆发，nil 颜色为奶油色
func (j *Juice) SpawnSparkles(x, y float64, clr color.Color) {
	j.particles.SpawnSparkles(x, y, clr)
}

// SpawnCelebration 四色庆祝爆发，间隔 50ms 依次出现
func (j *Juice) SpawnCelebration(x, y float64) {
	j.particles.SpawnCelebration(x, y)
}

// ParticleCount 存活粒子数量
func (j *Juice) ParticleCount() int {
	return j.particles.Count()
}

// === 拖尾 ===

// AddTrailPoint 添加拖尾点，nil 颜色为奶油色，size 为 0 时使用默认尺寸
func (j *Juice) AddTrailPoint(x, y float64, clr color.Color, size float64) {
	j.trails.AddPoint(x, y, clr, size)
}

// ClearTrails 清空拖尾
func (j *Juice) ClearTrails() {
	j.trails.Clear()
}

// TrailCount 拖尾点数量
func (j *Juice) TrailCount() int {
	return j.trails.Count()
}

// === 震动 ===

// Shake 开始屏幕震动（覆盖当前震动）
func (j *Juice) Shake(intensity, decay float64) {
	j.shake.Shake(intensity, decay)
}

// ShakeDefault 以默认强度 5、衰减 0.9 震动
func (j *Juice) ShakeDefault() {
	j.shake.ShakeDefault()
}

// UpdateShake 计算本帧震动偏移并衰减，调用方负责平移
func (j *Juice) UpdateShake() (float64, float64) {
	return j.shake.Update()
}

// ApplyShake 计算本帧偏移并直接平移表面
func (j *Juice) ApplyShake(surf surface.Surface) (float64, float64) {
	return j.shake.Apply(surf)
}

// ShakeIntensity 当前震动强度
func (j *Juice) ShakeIntensity() float64 {
	return j.shake.Intensity()
}

// === 闪光 ===

// Flash 触发全屏闪光，nil 颜色为白色
func (j *Juice) Flash(clr color.Color, intensity float64) {
	j.flash.Flash(clr, intensity)
}

// FlashDefault 白色 0.3 强度闪光
func (j *Juice) FlashDefault() {
	j.flash.FlashDefault()
}

// FlashAlpha 当前闪光不透明度
func (j *Juice) FlashAlpha() float64 {
	return j.flash.Alpha()
}

// === 时间缩放 ===

// SetTimeScale 立即设置时间缩放，durationTicks 帧对应的时钟时间后目标恢复为 1
// durationTicks 为 0 时使用默认帧数，负值在下一帧恢复
func (j *Juice) SetTimeScale(scale float64, durationTicks int) {
	j.timeScale.SetTimeScale(scale, durationTicks)
}

// GetTimeScale 平滑推进并返回当前时间缩放
func (j *Juice) GetTimeScale() float64 {
	return j.timeScale.GetTimeScale()
}

// === 帧更新 ===

// Update 每帧调用一次
//
// 顺序：推进时钟并执行到期的延迟事件，然后依次更新拖尾、粒子、闪光。
// 震动不在这里更新，由宿主在绘制前调用 UpdateShake 或 ApplyShake。
func (j *Juice) Update(surf surface.Surface) {
	j.clock.Tick()
	j.scheduler.Update()

	j.trails.Update(surf)
	j.particles.Update(surf)
	j.flash.Update(surf)
}

// Reset 清除所有特效状态
// 包括粒子、拖尾、闪光、震动、时间缩放以及尚未触发的延迟事件；
// 过关动画状态不受影响
func (j *Juice) Reset() {
	particles := j.particles.Clear()
	trails := j.trails.Clear()
	j.flash.Reset()
	j.shake.Reset()
	j.timeScale.Reset()
	j.scheduler.Reset()

	log.Printf("[Juice %s] Reset (particles=%d, trails=%d)", j.shortID(), particles, trails)
}

// === 过关动画 ===

// TriggerLevelComplete 开始过关动画，onFinish 在 FinishLevelComplete 时调用
func (j *Juice) TriggerLevelComplete(onFinish func()) {
	j.levelComplete.Trigger(onFinish)
}

// UpdateLevelComplete 推进并绘制过关动画，未激活时返回 false
func (j *Juice) UpdateLevelComplete(surf surface.Surface) bool {
	return j.levelComplete.Update(surf)
}

// LevelCompleteReady 是否已到可以接受"继续"输入的阶段
func (j *Juice) LevelCompleteReady() bool {
	return j.levelComplete.Ready()
}

// FinishLevelComplete 结束过关动画并调用回调
func (j *Juice) FinishLevelComplete() {
	j.levelComplete.Finish()
}

// LevelCompletePhase 当前过关动画阶段
func (j *Juice) LevelCompletePhase() components.LevelCompletePhase {
	return j.levelComplete.Phase()
}

// LevelCompleteActive 过关动画是否正在播放
func (j *Juice) LevelCompleteActive() bool {
	return j.levelComplete.Active()
}

// PlaySound 通过上下文的播放器触发音效
func (j *Juice) PlaySound(kind sound.Kind) {
	if !sound.Known(kind) {
		log.Printf("[Juice %s] Warning: unknown sound %q ignored", j.shortID(), kind)
		return
	}
	j.player.PlaySound(kind)
}
