package components

// ShakeComponent 屏幕震动状态（单例，挂在 ShakeSystem 创建的实体上）
type ShakeComponent struct {
	// OffsetX, OffsetY 最近一次 UpdateShake 计算出的偏移
	OffsetX float64
	OffsetY float64

	// Intensity 当前强度，低于阈值时归零
	Intensity float64

	// Decay 每帧强度衰减系数
	Decay float64
}
