package systems

import (
	"log"
	"math"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/sound"
	"github.com/gonewx/juice/pkg/surface"
)

// 装饰曲线参数（与菜单的蓝色弧线一致）
const (
	menuCurveOffset    = 60.0
	menuCurveOuter     = 200.0
	menuCurveInner     = 140.0
	menuCurveInnerA    = 0.7
	menuCurveLineWidth = 28.0
	menuCurveStart     = math.Pi * 0.5
	menuCurveEnd       = math.Pi * 0.95

	titleOffsetY  = -20.0
	promptOffsetY = 30.0
)

// LevelCompleteSystem 过关动画流程系统
//
// 管理三阶段状态机：
// - INIT: 震动、闪光与音效在触发时已施加，第 15 帧放庆祝粒子
// - FADE: 奶油色遮罩淡入，"COMPLETE" 标题带弹跳出现
// - PROMPT: 保持显示，闪烁的继续提示，等待 Finish
//
// 阶段切换发生的那一帧立即绘制新阶段，不会空出一帧。
type LevelCompleteSystem struct {
	entityManager *ecs.EntityManager
	stateEntity   ecs.EntityID
	tuning        config.LevelCompleteTuning

	shake     *ShakeSystem
	flash     *FlashEffectSystem
	particles *ParticleSystem
	player    sound.Player
}

// NewLevelCompleteSystem 创建过关动画系统
// player 可为 nil（静音）
func NewLevelCompleteSystem(
	em *ecs.EntityManager,
	cfg *config.JuiceConfig,
	shake *ShakeSystem,
	flash *FlashEffectSystem,
	particles *ParticleSystem,
	player sound.Player,
) *LevelCompleteSystem {
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	s := &LevelCompleteSystem{
		entityManager: em,
		tuning:        cfg.LevelComplete,
		shake:         shake,
		flash:         flash,
		particles:     particles,
		player:        player,
	}

	s.stateEntity = em.CreateEntity()
	ecs.AddComponent(em, s.stateEntity, &components.LevelCompleteComponent{})

	return s
}

func (s *LevelCompleteSystem) component() *components.LevelCompleteComponent {
	comp, _ := ecs.GetComponent[*components.LevelCompleteComponent](s.entityManager, s.stateEntity)
	return comp
}

// Trigger 开始过关动画
// 重复触发会从 INIT 重新开始，并替换回调
func (s *LevelCompleteSystem) Trigger(onFinish func()) {
	comp := s.component()
	comp.Active = true
	comp.Phase = components.LevelCompletePhaseInit
	comp.Timer = 0
	comp.OnFinish = onFinish

	s.shake.Shake(s.tuning.ShakeIntensity, s.tuning.ShakeDecay)
	s.flash.Flash(config.ColorCream, s.tuning.FlashIntensity)
	if s.player != nil {
		s.player.PlaySound(sound.KindSuccess)
	}

	log.Printf("[LevelCompleteSystem] Triggered")
}

// Update 推进一帧并绘制当前阶段
// 未激活时返回 false 且不做任何事；nil 表面按 0×0 处理，只推进不绘制
func (s *LevelCompleteSystem) Update(surf surface.Surface) bool {
	comp := s.component()
	if !comp.Active {
		return false
	}

	comp.Timer++

	var w, h float64
	if surf != nil {
		w, h = surf.Width(), surf.Height()
	}

	if comp.Phase == components.LevelCompletePhaseInit {
		if comp.Timer == s.tuning.CelebrateAt {
			s.particles.SpawnCelebration(w/2, h/2)
		}
		if comp.Timer >= s.tuning.InitDuration {
			s.enterPhase(comp, components.LevelCompletePhaseFade)
		}
	}

	if comp.Phase == components.LevelCompletePhaseFade {
		if surf != nil {
			s.drawFade(surf, comp.Timer, w, h)
		}
		if comp.Timer >= s.tuning.FadeDuration {
			s.enterPhase(comp, components.LevelCompletePhasePrompt)
		}
	}

	if comp.Phase == components.LevelCompletePhasePrompt && surf != nil {
		s.drawPrompt(surf, comp.Timer, w, h)
	}

	return true
}

func (s *LevelCompleteSystem) enterPhase(comp *components.LevelCompleteComponent, phase components.LevelCompletePhase) {
	log.Printf("[LevelCompleteSystem] %s -> %s", comp.Phase, phase)
	comp.Phase = phase
	comp.Timer = 0
}

// drawFade 遮罩淡入，进度超过阈值后标题淡入并带衰减的弹跳
func (s *LevelCompleteSystem) drawFade(surf surface.Surface, timer int, w, h float64) {
	progress := math.Min(float64(timer)/float64(s.tuning.FadeTicks), 1)

	surf.Save()
	surf.SetAlpha(progress * s.tuning.FadeMaxAlpha)
	surf.FillRect(0, 0, w, h, config.ColorCream)
	surf.Restore()

	reveal := s.tuning.TextRevealAt
	if progress > reveal {
		bounce := math.Sin(float64(timer)*s.tuning.BounceFrequency) * s.tuning.BounceAmplitude * (1 - progress)

		surf.Save()
		surf.SetAlpha((progress - reveal) / (1 - reveal))
		surf.FillText(s.tuning.Title, w/2, h/2+titleOffsetY+bounce, config.FontTitleLarge, config.ColorBlack)
		surf.Restore()
	}
}

// drawPrompt 完整遮罩、标题、闪烁提示与装饰曲线
func (s *LevelCompleteSystem) drawPrompt(surf surface.Surface, timer int, w, h float64) {
	surf.Save()
	surf.SetAlpha(s.tuning.PromptAlpha)
	surf.FillRect(0, 0, w, h, config.ColorCream)
	surf.Restore()

	surf.FillText(s.tuning.Title, w/2, h/2+titleOffsetY, config.FontTitleLarge, config.ColorBlack)

	if (timer/s.tuning.BlinkTicks)%2 == 0 {
		surf.FillText(s.tuning.Prompt, w/2, h/2+promptOffsetY, config.FontBody, config.ColorWood)
	}

	DrawMenuCurves(surf)
}

// DrawMenuCurves 在右上角外侧绘制两条蓝色弧线
func DrawMenuCurves(surf surface.Surface) {
	cx := surf.Width() + menuCurveOffset
	cy := -menuCurveOffset

	surf.Save()
	surf.StrokeArc(cx, cy, menuCurveOuter, menuCurveStart, menuCurveEnd, menuCurveLineWidth, config.ColorBlue)
	surf.SetAlpha(menuCurveInnerA)
	surf.StrokeArc(cx, cy, menuCurveInner, menuCurveStart, menuCurveEnd, menuCurveLineWidth, config.ColorBlue)
	surf.Restore()
}

// Ready 是否已进入可接受输入的 PROMPT 阶段
func (s *LevelCompleteSystem) Ready() bool {
	comp := s.component()
	return comp.Active && comp.Phase == components.LevelCompletePhasePrompt
}

// Finish 结束过关动画
// 回调最多调用一次；未激活时是安全的空操作
func (s *LevelCompleteSystem) Finish() {
	comp := s.component()

	callback := comp.OnFinish
	comp.OnFinish = nil
	comp.Active = false
	comp.Phase = components.LevelCompletePhaseInit
	comp.Timer = 0

	if callback != nil {
		log.Printf("[LevelCompleteSystem] Finished, invoking callback")
		callback()
	}
}

// Phase 当前阶段
func (s *LevelCompleteSystem) Phase() components.LevelCompletePhase {
	return s.component().Phase
}

// Active 是否正在播放
func (s *LevelCompleteSystem) Active() bool {
	return s.component().Active
}
