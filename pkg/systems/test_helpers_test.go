package systems

import (
	"math/rand"

	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/sound"
)

// testWorld 测试共用的系统组合，时钟为帧驱动、随机数固定种子
type testWorld struct {
	em        *ecs.EntityManager
	clock     *FrameClock
	scheduler *EventScheduler
	cfg       *config.JuiceConfig
	rng       *rand.Rand
	player    *sound.RecordingPlayer

	particles *ParticleSystem
	trails    *TrailSystem
	shake     *ShakeSystem
	flash     *FlashEffectSystem
	timeScale *TimeScaleSystem
	complete  *LevelCompleteSystem
}

func newTestWorld() *testWorld {
	w := &testWorld{
		em:     ecs.NewEntityManager(),
		clock:  NewFrameClock(),
		cfg:    config.DefaultJuiceConfig(),
		rng:    rand.New(rand.NewSource(42)),
		player: &sound.RecordingPlayer{},
	}
	w.scheduler = NewEventScheduler(w.clock)
	w.particles = NewParticleSystem(w.em, w.rng, w.scheduler, w.cfg)
	w.trails = NewTrailSystem(w.em, w.cfg)
	w.shake = NewShakeSystem(w.em, w.rng, w.cfg)
	w.flash = NewFlashEffectSystem(w.em, w.cfg)
	w.timeScale = NewTimeScaleSystem(w.em, w.scheduler, w.cfg)
	w.complete = NewLevelCompleteSystem(w.em, w.cfg, w.shake, w.flash, w.particles, w.player)
	return w
}

// tick 模拟一帧：推进时钟并处理到期事件
func (w *testWorld) tick() {
	w.clock.Tick()
	w.scheduler.Update()
}
