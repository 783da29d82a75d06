// Package demo 是与前端无关的特效演示场景
//
// 场景里有一个反弹的圆盘和若干键位触发的特效；ebiten 与终端前端
// 只负责把输入填进 Input 并提供绘制表面。
package demo

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/juice"
	"github.com/gonewx/juice/pkg/sound"
	"github.com/gonewx/juice/pkg/surface"
)

// 演示场景参数
const (
	puckRadius     = 14.0
	puckSpeedX     = 4.0
	puckSpeedY     = 3.0
	slowMotionTo   = 0.2
	slowMotionFor  = 60 // 帧
	flashIntensity = 0.6
	bounceShake    = 3.0
	bounceDecay    = 0.85
	hudMargin      = 16.0
)

// Input 一帧的宿主输入，由 ebiten 或终端前端填充
type Input struct {
	Pointer  PointerSample
	Flash    bool // 闪光
	Slow     bool // 慢动作
	Complete bool // 触发过关动画
	Continue bool // 过关提示阶段的"继续"
	Reset    bool // 清除全部特效
}

// puck 在场地里反弹的圆盘
type puck struct {
	X, Y   float64
	VX, VY float64
}

// Demo 演示场景
//
// Step 处理输入与物理，Render 绘制并推进特效层（Juice.Update 在这里调用，
// 因为粒子、拖尾与闪光在同一次遍历中更新并绘制）。
type Demo struct {
	juice         *juice.Juice
	width, height float64
	puck          puck
	pointer       PointerTracker
	reducedMotion bool
	completed     int
	timeScale     float64 // 最近一次移动使用的时间缩放
}

// NewDemo 创建演示场景
func NewDemo(j *juice.Juice, width, height float64) *Demo {
	d := &Demo{
		juice:  j,
		width:  width,
		height: height,
	}
	d.resetPuck()
	return d
}

func (d *Demo) resetPuck() {
	d.puck = puck{X: d.width / 3, Y: d.height / 3, VX: puckSpeedX, VY: puckSpeedY}
	d.timeScale = 1
}

// Juice 返回演示使用的特效上下文
func (d *Demo) Juice() *juice.Juice {
	return d.juice
}

// SetReducedMotion 减弱动效：不平移画面，不闪光（包括过关动画的闪光）
func (d *Demo) SetReducedMotion(reduced bool) {
	d.reducedMotion = reduced
}

// Resize 更新场地尺寸（终端窗口变化时）
func (d *Demo) Resize(width, height float64) {
	d.width, d.height = width, height
	d.puck.X = math.Min(math.Max(d.puck.X, puckRadius), width-puckRadius)
	d.puck.Y = math.Min(math.Max(d.puck.Y, puckRadius), height-puckRadius)
}

// Completed 过关动画完整结束的次数
func (d *Demo) Completed() int {
	return d.completed
}

// Step 处理一帧输入并推进圆盘
func (d *Demo) Step(in Input) {
	j := d.juice

	if in.Reset {
		j.Reset()
		d.pointer.Reset()
		d.resetPuck()
		log.Printf("[Demo] Reset")
		return
	}

	if j.LevelCompleteActive() {
		if in.Continue && j.LevelCompleteReady() {
			j.FinishLevelComplete()
		}
		// 过关动画期间场景暂停，只消费"继续"
		d.pointer.Feed(in.Pointer)
		return
	}

	ev := d.pointer.Feed(in.Pointer)
	switch ev.State {
	case PointerPressed:
		x, y := float64(ev.X), float64(ev.Y)
		j.SpawnSparkles(x, y, nil)
		if !d.reducedMotion {
			j.ShakeDefault()
		}
		j.PlaySound(sound.KindClick)
	case PointerDragging:
		if ev.DX != 0 || ev.DY != 0 {
			j.AddTrailPoint(float64(ev.X), float64(ev.Y), config.ColorBlue, 0)
		}
	}

	if in.Flash && !d.reducedMotion {
		j.Flash(config.ColorWhite, flashIntensity)
		j.PlaySound(sound.KindSoft)
	}
	if in.Slow {
		j.SetTimeScale(slowMotionTo, slowMotionFor)
		j.PlaySound(sound.KindBreathIn)
	}
	if in.Complete {
		j.TriggerLevelComplete(func() {
			d.completed++
			j.PlaySound(sound.KindCollect)
			log.Printf("[Demo] Level complete finished (%d)", d.completed)
		})
		if d.reducedMotion {
			// 过关动画自带的闪光同样撤掉，震动由 Render 只衰减不平移
			j.Flash(nil, 0)
		}
		return
	}

	d.movePuck()
}

// movePuck 按当前时间缩放移动圆盘，撞墙时反弹并触发特效
func (d *Demo) movePuck() {
	j := d.juice
	// GetTimeScale 每次调用都会向目标平滑一步，每帧只取一次
	scale := j.GetTimeScale()
	d.timeScale = scale
	p := &d.puck

	p.X += p.VX * scale
	p.Y += p.VY * scale

	bounced := false
	if p.X < puckRadius || p.X > d.width-puckRadius {
		p.VX = -p.VX
		p.X = math.Min(math.Max(p.X, puckRadius), d.width-puckRadius)
		bounced = true
	}
	if p.Y < puckRadius || p.Y > d.height-puckRadius {
		p.VY = -p.VY
		p.Y = math.Min(math.Max(p.Y, puckRadius), d.height-puckRadius)
		bounced = true
	}

	if bounced {
		j.SpawnParticles(p.X, p.Y, juice.ParticleConfig{
			Count: 6,
			Color: config.ColorRed,
			Speed: 3,
			Size:  3,
		})
		if !d.reducedMotion {
			j.Shake(bounceShake, bounceDecay)
		}
		j.PlaySound(sound.KindHit)
	}

	j.AddTrailPoint(p.X, p.Y, config.ColorRed, puckRadius*0.6)
}

// Render 绘制一帧
func (d *Demo) Render(surf surface.Surface) {
	j := d.juice

	surf.FillRect(0, 0, surf.Width(), surf.Height(), config.ColorFog)

	surf.Save()
	if d.reducedMotion {
		j.UpdateShake()
	} else {
		j.ApplyShake(surf)
	}

	j.Update(surf)
	d.drawPuck(surf)
	surf.Restore()

	d.drawHUD(surf)
	j.UpdateLevelComplete(surf)
}

// drawPuck 按速度挤压拉伸绘制圆盘
// 表面只支持正圆，拉伸用沿运动方向前后两个压扁的圆近似
func (d *Demo) drawPuck(surf surface.Surface) {
	scale := d.timeScale
	p := d.puck
	ss := juice.SquashStretch(p.VX*scale, p.VY*scale, 0)

	r := puckRadius * ss.ScaleY
	reach := puckRadius * (ss.ScaleX - 1)
	dx, dy := math.Cos(ss.Rotation)*reach, math.Sin(ss.Rotation)*reach

	surf.FillCircle(p.X-dx, p.Y-dy, r, config.ColorRed)
	surf.FillCircle(p.X+dx, p.Y+dy, r, config.ColorRed)
	surf.FillCircle(p.X, p.Y, r, config.ColorRed)
}

// HUDText 左上角状态文字
func (d *Demo) HUDText() string {
	j := d.juice
	return fmt.Sprintf("PARTICLES %d  TRAIL %d  TIME %.2f", j.ParticleCount(), j.TrailCount(), d.timeScale)
}

func (d *Demo) drawHUD(surf surface.Surface) {
	text := d.HUDText()
	w := surf.MeasureText(text, config.FontHUD)
	surf.FillText(text, hudMargin+w/2, hudMargin, config.FontHUD, config.ColorTextMuted)
}
