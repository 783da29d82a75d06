package components

import "image/color"

// ParticleComponent 单个粒子的渲染与生命周期状态
//
// 位置与速度分别存放在 PositionComponent 和 VelocityComponent 中。
// 粒子由 ParticleSystem 创建，Life 递减到 0 时在同一帧被销毁，
// 因此存活的粒子始终满足 0 < Life <= MaxLife。
type ParticleComponent struct {
	// Size 基础半径（像素），实际绘制半径为 Size*(0.5+0.5*alpha)
	Size float64

	// Color 填充颜色
	Color color.Color

	// Life 剩余寿命（帧）
	Life int

	// MaxLife 初始寿命（帧），alpha = Life/MaxLife
	MaxLife int

	// Gravity 每帧叠加到 VY 上的加速度
	Gravity float64
}

// Alpha 根据剩余寿命计算透明度
func (p *ParticleComponent) Alpha() float64 {
	if p.MaxLife == 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
