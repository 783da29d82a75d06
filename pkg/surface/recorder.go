package surface

import (
	"image/color"

	"github.com/gonewx/juice/pkg/config"
)

// OpKind 记录的绘制操作类型
type OpKind string

const (
	OpFillRect   OpKind = "fillRect"
	OpFillCircle OpKind = "fillCircle"
	OpStrokeArc  OpKind = "strokeArc"
	OpFillText   OpKind = "fillText"
)

// Op 一次绘制调用的快照
// 坐标已经叠加了当前平移，Alpha 为调用时的全局透明度
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	R     float64
	Start float64
	End   float64
	Line  float64
	Alpha float64
	Color color.Color
	Text  string
	Font  config.FontPreset
}

// Recorder 内存中的 Surface 实现，记录每一次绘制调用
// 用于测试与无头运行；字符宽度按 0.6×字号估算
type Recorder struct {
	width, height float64
	stack         StateStack
	Ops           []Op
}

// NewRecorder 创建指定尺寸的记录表面
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height, stack: NewStateStack()}
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) Save()    { r.stack.Save() }
func (r *Recorder) Restore() { r.stack.Restore() }

func (r *Recorder) Translate(dx, dy float64) {
	r.stack.Current.TX += dx
	r.stack.Current.TY += dy
}

func (r *Recorder) SetAlpha(alpha float64) {
	r.stack.Current.Alpha = alpha
}

// Offset 当前累计平移
func (r *Recorder) Offset() (float64, float64) {
	return r.stack.Current.TX, r.stack.Current.TY
}

// Alpha 当前全局透明度
func (r *Recorder) Alpha() float64 {
	return r.stack.Current.Alpha
}

func (r *Recorder) record(op Op) {
	op.X += r.stack.Current.TX
	op.Y += r.stack.Current.TY
	op.Alpha = r.stack.Current.Alpha
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.record(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.record(Op{Kind: OpFillCircle, X: cx, Y: cy, R: radius, Color: clr})
}

func (r *Recorder) StrokeArc(cx, cy, radius, startAngle, endAngle, lineWidth float64, clr color.Color) {
	r.record(Op{Kind: OpStrokeArc, X: cx, Y: cy, R: radius, Start: startAngle, End: endAngle, Line: lineWidth, Color: clr})
}

func (r *Recorder) FillText(s string, x, y float64, font config.FontPreset, clr color.Color) {
	r.record(Op{Kind: OpFillText, X: x, Y: y, Text: s, Font: font, Color: clr})
}

func (r *Recorder) MeasureText(s string, font config.FontPreset) float64 {
	return float64(len([]rune(s))) * font.Size * 0.6
}

// OpsOf 返回指定类型的全部操作
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var result []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			result = append(result, op)
		}
	}
	return result
}

// Count 返回指定类型操作的数量
func (r *Recorder) Count(kind OpKind) int {
	return len(r.OpsOf(kind))
}

// Texts 返回按顺序绘制的全部文本
func (r *Recorder) Texts() []string {
	var result []string
	for _, op := range r.OpsOf(OpFillText) {
		result = append(result, op.Text)
	}
	return result
}

// Reset 清空记录并恢复初始绘制状态（模拟新的一帧）
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stack.Reset()
}
