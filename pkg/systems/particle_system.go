package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/surface"
)

// ParticleConfig describes one burst of particles.
//
// Zero-valued fields are replaced with the configured defaults when the
// burst is spawned, so an explicit 0 means "use the default". Negative
// values are not validated and propagate into the simulation.
type ParticleConfig struct {
	Count     int
	Color     color.Color
	Speed     float64
	Size      float64
	Life      int     // frames
	Spread    float64 // radians, centred on BaseAngle
	BaseAngle float64 // radians
	Gravity   float64 // added to VY every frame
}

// DefaultParticleConfig returns the standard burst:
// 8 cream particles, speed 3, size 4, 30 frames, full-circle spread.
func DefaultParticleConfig() ParticleConfig {
	return burstConfig(config.DefaultJuiceConfig().Particles.Defaults, config.ColorCream)
}

func burstConfig(t config.BurstTuning, clr color.Color) ParticleConfig {
	return ParticleConfig{
		Count:   t.Count,
		Color:   clr,
		Speed:   t.Speed,
		Size:    t.Size,
		Life:    t.Life,
		Spread:  t.Spread,
		Gravity: t.Gravity,
	}
}

// ParticleSystem spawns, simulates and draws short-lived circular particles.
//
// Particles are entities with Position, Velocity and Particle components.
// Entity IDs grow monotonically, so iteration follows spawn order and the
// draw order is stable from frame to frame.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager

	rng       *rand.Rand
	scheduler *EventScheduler
	tuning    *config.JuiceConfig
}

// NewParticleSystem creates a ParticleSystem. The scheduler is used for the
// staggered celebration bursts.
func NewParticleSystem(em *ecs.EntityManager, rng *rand.Rand, scheduler *EventScheduler, cfg *config.JuiceConfig) *ParticleSystem {
	if cfg == nil {
		cfg = config.DefaultJuiceConfig()
	}
	return &ParticleSystem{
		EntityManager: em,
		rng:           rng,
		scheduler:     scheduler,
		tuning:        cfg,
	}
}

// withDefaults fills zero-valued fields from the configured defaults.
func (ps *ParticleSystem) withDefaults(cfg ParticleConfig) ParticleConfig {
	d := ps.tuning.Particles.Defaults
	if cfg.Count == 0 {
		cfg.Count = d.Count
	}
	if cfg.Color == nil {
		cfg.Color = ps.tuning.Particles.Color.RGBA8()
	}
	if cfg.Speed == 0 {
		cfg.Speed = d.Speed
	}
	if cfg.Size == 0 {
		cfg.Size = d.Size
	}
	if cfg.Life == 0 {
		cfg.Life = d.Life
	}
	if cfg.Spread == 0 {
		cfg.Spread = d.Spread
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = d.Gravity
	}
	return cfg
}

// Spawn creates cfg.Count particles at (x, y).
//
// Each particle gets an angle uniformly drawn from
// [BaseAngle-Spread/2, BaseAngle+Spread/2], a speed from [Speed/2, Speed]
// and a size from [Size/2, Size].
func (ps *ParticleSystem) Spawn(x, y float64, cfg ParticleConfig) {
	cfg = ps.withDefaults(cfg)

	for i := 0; i < cfg.Count; i++ {
		angle := cfg.BaseAngle + (ps.rng.Float64()-0.5)*cfg.Spread
		speed := cfg.Speed * (0.5 + ps.rng.Float64()*0.5)
		size := cfg.Size * (0.5 + ps.rng.Float64()*0.5)

		id := ps.EntityManager.CreateEntity()
		ecs.AddComponent(ps.EntityManager, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(ps.EntityManager, id, &components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		})
		ecs.AddComponent(ps.EntityManager, id, &components.ParticleComponent{
			Size:    size,
			Color:   cfg.Color,
			Life:    cfg.Life,
			MaxLife: cfg.Life,
			Gravity: cfg.Gravity,
		})
	}
}

// SpawnSparkles emits the small full-circle sparkle burst. A nil colour
// means cream.
func (ps *ParticleSystem) SpawnSparkles(x, y float64, clr color.Color) {
	if clr == nil {
		clr = ps.tuning.Particles.Color.RGBA8()
	}
	ps.Spawn(x, y, burstConfig(ps.tuning.Sparkles, clr))
}

// SpawnCelebration schedules one burst per celebration colour, staggered by
// the configured interval. The first burst fires on the next scheduler drain.
func (ps *ParticleSystem) SpawnCelebration(x, y float64) {
	colors := ps.tuning.Celebration.Colors
	stagger := time.Duration(ps.tuning.Celebration.StaggerMs) * time.Millisecond

	log.Printf("[ParticleSystem] Celebration at (%.0f, %.0f): %d bursts", x, y, len(colors))

	for i, c := range colors {
		burst := burstConfig(ps.tuning.Celebration.Burst, c.RGBA8())
		ps.scheduler.Schedule("celebration-burst", time.Duration(i)*stagger, func() {
			ps.Spawn(x, y, burst)
		})
	}
}

// Update advances every particle by one frame and draws the survivors.
// A nil surface still advances the simulation.
func (ps *ParticleSystem) Update(surf surface.Surface) {
	drag := ps.tuning.Particles.Drag

	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.ParticleComponent,
	](ps.EntityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.EntityManager, id)
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		vel.VY += p.Gravity
		vel.VX *= drag
		vel.VY *= drag
		p.Life--

		if p.Life <= 0 {
			ps.EntityManager.DestroyEntity(id)
			continue
		}

		if surf == nil {
			continue
		}
		alpha := p.Alpha()
		surf.Save()
		surf.SetAlpha(alpha)
		surf.FillCircle(pos.X, pos.Y, p.Size*(0.5+0.5*alpha), p.Color)
		surf.Restore()
	}

	ps.EntityManager.RemoveMarkedEntities()
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager))
}

// Clear destroys every particle and returns how many were removed.
func (ps *ParticleSystem) Clear() int {
	return ecs.DestroyAllWith[*components.ParticleComponent](ps.EntityManager)
}
