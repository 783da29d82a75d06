package systems

import (
	"image/color"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/surface"
)

// TrailSystem 运动拖尾系统
// 维护一个有上限的拖尾点队列，超出上限时淘汰最早加入的点
type TrailSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.TrailTuning
}

// NewTrailSystem 创建拖尾系统
func NewTrailSystem(em *ecs.EntityManager, cfg *config.JuiceConfig) *TrailSystem {
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	return &TrailSystem{
		entityManager: em,
		tuning:        cfg.Trail,
	}
}

// AddPoint 添加一个拖尾点
// 参数：
//   - clr: 颜色，nil 时使用默认奶油色
//   - size: 半径，0 表示未指定，使用默认尺寸；负值原样保留（表面不绘制非正半径）
func (s *TrailSystem) AddPoint(x, y float64, clr color.Color, size float64) {
	if clr == nil {
		clr = s.tuning.Color.RGBA8()
	}
	if size == 0 {
		size = s.tuning.DefaultSize
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(s.entityManager, id, &components.TrailPointComponent{
		Color: clr,
		Size:  size,
		Alpha: s.tuning.StartAlpha,
		Life:  s.tuning.Life,
	})

	// 按 ID 升序即加入顺序，淘汰最前面的
	points := ecs.GetEntitiesWith1[*components.TrailPointComponent](s.entityManager)
	if excess := len(points) - s.tuning.MaxPoints; excess > 0 {
		for _, old := range points[:excess] {
			s.entityManager.DestroyEntity(old)
		}
		s.entityManager.RemoveMarkedEntities()
	}
}

// Update 衰减并绘制所有拖尾点，nil 表面只推进不绘制
func (s *TrailSystem) Update(surf surface.Surface) {
	points := ecs.GetEntitiesWith2[*components.PositionComponent, *components.TrailPointComponent](s.entityManager)

	for _, id := range points {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pt, _ := ecs.GetComponent[*components.TrailPointComponent](s.entityManager, id)

		pt.Life--
		pt.Alpha = float64(pt.Life) / float64(s.tuning.Life)
		pt.Size *= s.tuning.Shrink

		if pt.Life <= 0 {
			s.entityManager.DestroyEntity(id)
			continue
		}

		if surf == nil {
			continue
		}
		surf.Save()
		surf.SetAlpha(pt.Alpha * s.tuning.RenderAlpha)
		surf.FillCircle(pos.X, pos.Y, pt.Size, pt.Color)
		surf.Restore()
	}

	s.entityManager.RemoveMarkedEntities()
}

// Clear 清空所有拖尾点
func (s *TrailSystem) Clear() int {
	return ecs.DestroyAllWith[*components.TrailPointComponent](s.entityManager)
}

// Count 当前拖尾点数量
func (s *TrailSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.TrailPointComponent](s.entityManager))
}
