package systems

import (
	"math/rand"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/surface"
)

// ShakeSystem 屏幕震动控制器
//
// 只负责计算偏移量；由调用方（或 Apply）把偏移应用到绘制表面。
type ShakeSystem struct {
	entityManager *ecs.EntityManager
	shakeEntity   ecs.EntityID
	rng           *rand.Rand
	tuning        config.ShakeTuning
}

// NewShakeSystem 创建震动系统，并创建持有 ShakeComponent 的单例实体
func NewShakeSystem(em *ecs.EntityManager, rng *rand.Rand, cfg *config.JuiceConfig) *ShakeSystem {
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	s := &ShakeSystem{
		entityManager: em,
		rng:           rng,
		tuning:        cfg.Shake,
	}

	s.shakeEntity = em.CreateEntity()
	ecs.AddComponent(em, s.shakeEntity, &components.ShakeComponent{
		Decay: cfg.Shake.DefaultDecay,
	})

	return s
}

func (s *ShakeSystem) component() *components.ShakeComponent {
	comp, _ := ecs.GetComponent[*components.ShakeComponent](s.entityManager, s.shakeEntity)
	return comp
}

// Shake 开始震动，覆盖当前强度与衰减（后调用者生效）
func (s *ShakeSystem) Shake(intensity, decay float64) {
	comp := s.component()
	comp.Intensity = intensity
	comp.Decay = decay
}

// ShakeDefault 以默认参数 (5, 0.9) 震动
func (s *ShakeSystem) ShakeDefault() {
	s.Shake(s.tuning.DefaultIntensity, s.tuning.DefaultDecay)
}

// Update 计算本帧偏移并衰减强度
//
// 强度高于阈值时偏移在 [-强度, 强度] 内均匀取值，之后强度乘以衰减系数；
// 否则偏移与强度同时归零。
func (s *ShakeSystem) Update() (float64, float64) {
	comp := s.component()

	if comp.Intensity > s.tuning.Threshold {
		comp.OffsetX = (s.rng.Float64()*2 - 1) * comp.Intensity
		comp.OffsetY = (s.rng.Float64()*2 - 1) * comp.Intensity
		comp.Intensity *= comp.Decay
	} else {
		comp.OffsetX = 0
		comp.OffsetY = 0
		comp.Intensity = 0
	}

	return comp.OffsetX, comp.OffsetY
}

// Apply 计算本帧偏移并平移绘制表面
// 调用方负责在帧开始前 Save、帧结束后 Restore
func (s *ShakeSystem) Apply(surf surface.Surface) (float64, float64) {
	x, y := s.Update()
	if surf != nil {
		surf.Translate(x, y)
	}
	return x, y
}

// Intensity 当前震动强度
func (s *ShakeSystem) Intensity() float64 {
	return s.component().Intensity
}

// Reset 停止震动
func (s *ShakeSystem) Reset() {
	comp := s.component()
	comp.Intensity = 0
	comp.OffsetX = 0
	comp.OffsetY = 0
}
