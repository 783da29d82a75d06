package components

// LevelCompletePhase 过关动画阶段
type LevelCompletePhase int

const (
	// LevelCompletePhaseInit 震动、闪光，第 15 帧放庆祝粒子
	LevelCompletePhaseInit LevelCompletePhase = iota
	// LevelCompletePhaseFade 奶油色遮罩淡入，标题弹跳出现
	LevelCompletePhaseFade
	// LevelCompletePhasePrompt 保持阶段，等待玩家按键继续
	LevelCompletePhasePrompt
)

// String 返回阶段名称（用于日志）
func (p LevelCompletePhase) String() string {
	switch p {
	case LevelCompletePhaseInit:
		return "INIT"
	case LevelCompletePhaseFade:
		return "FADE"
	case LevelCompletePhasePrompt:
		return "PROMPT"
	default:
		return "UNKNOWN"
	}
}

// LevelCompleteComponent 过关动画状态机（单例）
//
// 三阶段流程：
//
// INIT: 触发时已施加震动与闪光并播放 success 音效
//   - Timer == 15 时在屏幕中心生成庆祝粒子
//   - Timer >= 30 进入 FADE（同一帧内立即绘制 FADE）
//
// FADE: 遮罩按 Timer/40 淡入，进度超过 0.3 后显示标题
//   - Timer >= 60 进入 PROMPT（同一帧内立即绘制 PROMPT）
//
// PROMPT: 持续显示遮罩、标题、闪烁提示与装饰曲线，直到 Finish
type LevelCompleteComponent struct {
	Active bool
	Phase  LevelCompletePhase
	Timer  int // 当前阶段的帧计数，每次更新先自增

	// OnFinish 完成回调，Finish 时调用一次后清空
	OnFinish func()
}
