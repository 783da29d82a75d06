package components

import "image/color"

// FlashEffectComponent 全屏闪光状态（单例）
//
// Alpha 每帧按衰减系数几何递减，低于阈值后停止绘制，
// 但数值上不会精确归零（重置时才会清零）。
type FlashEffectComponent struct {
	// Color 闪光颜色
	Color color.Color

	// Alpha 当前不透明度（0.0 - 1.0）
	Alpha float64
}
