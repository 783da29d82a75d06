package systems

import (
	"time"
)

// NominalFrame 标称帧时长（60 FPS 下的 16.67ms）
const NominalFrame = 16670 * time.Microsecond

// Clock 延迟事件使用的时间源
//
// Now 返回自时钟创建以来经过的时间；Tick 在每次 Juice.Update 开始时调用一次。
type Clock interface {
	Now() time.Duration
	Tick()
}

// WallClock 真实时间时钟（默认）
// 帧率偏离 60 FPS 时，按"帧数×16.67ms"换算的延迟会与实际帧数不一致。
type WallClock struct {
	start time.Time
}

// NewWallClock 创建从当前时刻开始计时的时钟
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration { return time.Since(c.start) }

// Tick 真实时钟不需要推进
func (c *WallClock) Tick() {}

// FrameClock 帧驱动时钟，每次 Tick 精确推进一帧
// 用于测试与回放，结果与实际帧率无关。
type FrameClock struct {
	now  time.Duration
	step time.Duration
}

// NewFrameClock 创建按 NominalFrame 推进的时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{step: NominalFrame}
}

func (c *FrameClock) Now() time.Duration { return c.now }

func (c *FrameClock) Tick() { c.now += c.step }

// Advance 手动推进指定时长
func (c *FrameClock) Advance(d time.Duration) { c.now += d }

// TicksToDuration 把帧数按标称帧长换算为时长
func TicksToDuration(ticks int, frameMs float64) time.Duration {
	return time.Duration(float64(ticks)*frameMs*float64(time.Millisecond) + 0.5)
}
