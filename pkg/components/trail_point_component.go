package components

import "image/color"

// TrailPointComponent 运动拖尾上的一个点
// 随寿命衰减：Alpha = Life/初始寿命，Size 每帧按比例收缩
type TrailPointComponent struct {
	Color color.Color
	Size  float64
	Alpha float64
	Life  int
}
