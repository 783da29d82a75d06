package systems

import (
	"log"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
)

// TimeScaleSystem 时间缩放（慢动作）控制器
//
// SetTimeScale 立即生效，并安排一个延迟事件在指定帧数对应的时钟时间后
// 把目标恢复为 1；GetTimeScale 每次调用都让当前值向目标平滑逼近。
type TimeScaleSystem struct {
	entityManager *ecs.EntityManager
	scaleEntity   ecs.EntityID
	scheduler     *EventScheduler
	tuning        config.TimeScaleTuning

	revert EventHandle
}

// NewTimeScaleSystem 创建时间缩放系统
func NewTimeScaleSystem(em *ecs.EntityManager, scheduler *EventScheduler, cfg *config.JuiceConfig) *TimeScaleSystem {
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	s := &TimeScaleSystem{
		entityManager: em,
		scheduler:     scheduler,
		tuning:        cfg.TimeScale,
	}

	s.scaleEntity = em.CreateEntity()
	ecs.AddComponent(em, s.scaleEntity, &components.TimeScaleComponent{Current: 1, Target: 1})

	return s
}

func (s *TimeScaleSystem) component() *components.TimeScaleComponent {
	comp, _ := ecs.GetComponent[*components.TimeScaleComponent](s.entityManager, s.scaleEntity)
	return comp
}

// SetTimeScale 立即把当前值和目标设为 scale
// durationTicks 为 0 时使用默认帧数；负值按零延迟处理，下一帧即恢复。
// 新的调用会取消尚未触发的恢复事件，旧计时器不再触发，
// 因此不会提前结束新的慢动作。
func (s *TimeScaleSystem) SetTimeScale(scale float64, durationTicks int) {
	if durationTicks == 0 {
		durationTicks = s.tuning.DefaultDurationTicks
	}

	comp := s.component()
	comp.Current = scale
	comp.Target = scale

	s.revert.Cancel()
	delay := TicksToDuration(durationTicks, s.tuning.FrameMs)
	s.revert = s.scheduler.Schedule("time-scale-revert", delay, func() {
		s.component().Target = 1
		log.Printf("[TimeScaleSystem] Target reverted to 1")
	})
}

// GetTimeScale 让当前值向目标逼近一步并返回
func (s *TimeScaleSystem) GetTimeScale() float64 {
	comp := s.component()
	comp.Current += (comp.Target - comp.Current) * s.tuning.Smoothing
	return comp.Current
}

// Target 当前目标值（不推进平滑）
func (s *TimeScaleSystem) Target() float64 {
	return s.component().Target
}

// Reset 恢复 1:1 时间并取消待恢复事件
func (s *TimeScaleSystem) Reset() {
	s.revert.Cancel()
	comp := s.component()
	comp.Current = 1
	comp.Target = 1
}
