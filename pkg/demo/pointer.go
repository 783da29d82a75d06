package demo

// PointerSample 单帧的原始指针采样（鼠标左键或第一个触摸点）
type PointerSample struct {
	Pressed bool
	X, Y    int
}

// PointerState 指针状态
type PointerState int

const (
	// PointerIdle 未按下
	PointerIdle PointerState = iota
	// PointerPressed 本帧刚按下
	PointerPressed
	// PointerDragging 按住（可能有移动）
	PointerDragging
	// PointerReleased 本帧刚释放
	PointerReleased
)

// PointerEvent 一帧的指针事件
type PointerEvent struct {
	State  PointerState
	X, Y   int
	DX, DY int // 相对上一帧的位移
}

// PointerTracker 把逐帧采样转换为按下/拖拽/释放事件
type PointerTracker struct {
	down         bool
	lastX, lastY int
}

// Feed 输入一帧采样，返回该帧的事件
// 释放时报告最后一次按下时的位置（触摸释放后无法再读取坐标）
func (p *PointerTracker) Feed(s PointerSample) PointerEvent {
	switch {
	case s.Pressed && !p.down:
		p.down = true
		p.lastX, p.lastY = s.X, s.Y
		return PointerEvent{State: PointerPressed, X: s.X, Y: s.Y}

	case s.Pressed:
		ev := PointerEvent{State: PointerDragging, X: s.X, Y: s.Y, DX: s.X - p.lastX, DY: s.Y - p.lastY}
		p.lastX, p.lastY = s.X, s.Y
		return ev

	case p.down:
		p.down = false
		return PointerEvent{State: PointerReleased, X: p.lastX, Y: p.lastY}
	}

	return PointerEvent{State: PointerIdle, X: s.X, Y: s.Y}
}

// Down 指针当前是否按下
func (p *PointerTracker) Down() bool {
	return p.down
}

// Reset 清除按下状态
func (p *PointerTracker) Reset() {
	*p = PointerTracker{}
}
