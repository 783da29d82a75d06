// Package utils 提供演示程序与特效层共用的小工具
package utils

import "math"

// DefaultMaxStretch 默认最大拉伸比例
const DefaultMaxStretch = 1.3

// SquashStretch 运动物体的挤压拉伸变换
type SquashStretch struct {
	ScaleX   float64 // 沿运动方向的拉伸
	ScaleY   float64 // 垂直方向的挤压（= 1/ScaleX，保持面积）
	Rotation float64 // 运动方向（弧度）
}

// CalculateSquashStretch 根据速度计算挤压拉伸
//
// 拉伸 = min(1 + 速度×0.05, maxStretch)，挤压为其倒数，旋转为速度方向。
// maxStretch 为 0 时使用 DefaultMaxStretch。
//
// 绘制时先旋转到 Rotation，再按 (ScaleX, ScaleY) 缩放。
func CalculateSquashStretch(vx, vy, maxStretch float64) SquashStretch {
	if maxStretch == 0 {
		maxStretch = DefaultMaxStretch
	}

	speed := math.Hypot(vx, vy)
	stretch := math.Min(1+speed*0.05, maxStretch)

	return SquashStretch{
		ScaleX:   stretch,
		ScaleY:   1 / stretch,
		Rotation: math.Atan2(vy, vx),
	}
}
