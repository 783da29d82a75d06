package systems

import (
	"image/color"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/surface"
)

// FlashEffectSystem 全屏闪光系统
// 管理单例闪光的几何衰减与绘制
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
	flashEntity   ecs.EntityID
	tuning        config.FlashTuning
}

// NewFlashEffectSystem 创建闪光系统
func NewFlashEffectSystem(em *ecs.EntityManager, cfg *config.JuiceConfig) *FlashEffectSystem {
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	s := &FlashEffectSystem{
		entityManager: em,
		tuning:        cfg.Flash,
	}

	s.flashEntity = em.CreateEntity()
	ecs.AddComponent(em, s.flashEntity, &components.FlashEffectComponent{
		Color: cfg.Flash.DefaultColor.RGBA8(),
	})

	return s
}

func (s *FlashEffectSystem) component() *components.FlashEffectComponent {
	comp, _ := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, s.flashEntity)
	return comp
}

// Flash 触发闪光，覆盖当前颜色与强度
// 参数：
//   - clr: 闪光颜色，nil 时使用默认白色
//   - intensity: 初始不透明度
func (s *FlashEffectSystem) Flash(clr color.Color, intensity float64) {
	if clr == nil {
		clr = s.tuning.DefaultColor.RGBA8()
	}
	comp := s.component()
	comp.Color = clr
	comp.Alpha = intensity
}

// FlashDefault 白色、0.3 强度的闪光
func (s *FlashEffectSystem) FlashDefault() {
	s.Flash(nil, s.tuning.DefaultIntensity)
}

// Update 绘制并衰减闪光
// 不透明度低于阈值时无操作；nil 表面不绘制但仍然衰减
func (s *FlashEffectSystem) Update(surf surface.Surface) {
	comp := s.component()
	if comp.Alpha <= s.tuning.Epsilon {
		return
	}

	if surf != nil {
		surf.Save()
		surf.SetAlpha(comp.Alpha)
		surf.FillRect(0, 0, surf.Width(), surf.Height(), comp.Color)
		surf.Restore()
	}

	comp.Alpha *= s.tuning.Decay
}

// Alpha 当前闪光不透明度
func (s *FlashEffectSystem) Alpha() float64 {
	return s.component().Alpha
}

// Reset 清除闪光
func (s *FlashEffectSystem) Reset() {
	s.component().Alpha = 0
}
