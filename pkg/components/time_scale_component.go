package components

// TimeScaleComponent 时间缩放状态（单例）
//
// Current 每次读取时向 Target 平滑逼近；Target 在设定的时长后被延迟事件恢复为 1。
type TimeScaleComponent struct {
	Current float64
	Target  float64
}
