// Package surface 定义特效层消费的 2D 绘制能力
//
// 坐标原点在左上角，单位为表面像素。接口刻意贴近画布 API：
// 全局透明度与平移通过 Save/Restore 成对管理。
package surface

import (
	"image/color"

	"github.com/gonewx/juice/pkg/config"
)

// Surface 2D 绘制表面
type Surface interface {
	// Width 表面宽度（像素）
	Width() float64
	// Height 表面高度（像素）
	Height() float64

	// Save 保存当前的平移与透明度状态
	Save()
	// Restore 恢复最近一次 Save 的状态，栈为空时无操作
	Restore()
	// Translate 在当前平移上叠加偏移
	Translate(dx, dy float64)
	// SetAlpha 设置全局透明度（0-1），后续绘制都乘以该值
	SetAlpha(alpha float64)

	// FillRect 填充矩形
	FillRect(x, y, w, h float64, clr color.Color)
	// FillCircle 填充圆形
	FillCircle(cx, cy, r float64, clr color.Color)
	// StrokeArc 以圆头线描边圆弧，角度为弧度，顺时针（屏幕坐标系）
	StrokeArc(cx, cy, r, startAngle, endAngle, lineWidth float64, clr color.Color)
	// FillText 以 (x, y) 为中心绘制单行文本（水平居中、垂直居中）
	FillText(s string, x, y float64, font config.FontPreset, clr color.Color)
	// MeasureText 返回文本宽度（像素）
	MeasureText(s string, font config.FontPreset) float64
}

// State 各实现共用的绘制状态
type State struct {
	TX, TY float64
	Alpha  float64
}

// StateStack 管理 Save/Restore，供各 Surface 实现嵌入
type StateStack struct {
	Current State
	saved   []State
}

// NewStateStack 返回无平移、不透明的初始状态
func NewStateStack() StateStack {
	return StateStack{Current: State{Alpha: 1}}
}

func (s *StateStack) Save() {
	s.saved = append(s.saved, s.Current)
}

func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.Current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Reset 回到初始状态并丢弃已保存的状态
func (s *StateStack) Reset() {
	s.Current = State{Alpha: 1}
	s.saved = s.saved[:0]
}

// WithAlpha 把全局透明度乘到颜色上，返回非预乘的 NRGBA
func WithAlpha(clr color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	a := float64(n.A) * clamp01(alpha)
	n.A = uint8(a + 0.5)
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
