package surface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gonewx/juice/pkg/config"
)

// glyph 单元格上的文字
type glyph struct {
	r  rune
	fg colorful.Color
}

// TerminalSurface 把 Surface 调用光栅化到终端单元格
//
// 一个单元格对应 cellW×cellH 个表面像素，判断覆盖时取单元格中心点。
// 透明度在内部背景缓冲区上混合，Flush 时一次性写入 tcell.Screen。
type TerminalSurface struct {
	cols, rows   int
	cellW, cellH float64
	background   colorful.Color
	bg           []colorful.Color
	glyphs       []*glyph
	stack        StateStack
}

// NewTerminalSurface 创建终端绘制表面
func NewTerminalSurface(cols, rows int, cellW, cellH float64, background color.Color) *TerminalSurface {
	t := &TerminalSurface{
		cellW:      cellW,
		cellH:      cellH,
		background: toColorful(background),
		stack:      NewStateStack(),
	}
	t.Resize(cols, rows)
	return t
}

// Resize 调整单元格网格尺寸并清屏
func (t *TerminalSurface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	t.cols, t.rows = cols, rows
	t.bg = make([]colorful.Color, cols*rows)
	t.glyphs = make([]*glyph, cols*rows)
	t.Clear()
}

// Clear 用背景色清空缓冲区并重置绘制状态（每帧开始调用）
func (t *TerminalSurface) Clear() {
	for i := range t.bg {
		t.bg[i] = t.background
		t.glyphs[i] = nil
	}
	t.stack.Reset()
}

// Cols 列数
func (t *TerminalSurface) Cols() int { return t.cols }

// Rows 行数
func (t *TerminalSurface) Rows() int { return t.rows }

// CellAt 返回单元格的背景色与文字（无文字时为 0）
func (t *TerminalSurface) CellAt(col, row int) (color.RGBA, rune) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return color.RGBA{}, 0
	}
	i := row*t.cols + col
	r, g, b := t.bg[i].Clamped().RGB255()
	var ch rune
	if t.glyphs[i] != nil {
		ch = t.glyphs[i].r
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, ch
}

// Flush 把缓冲区写入屏幕并显示
func (t *TerminalSurface) Flush(screen tcell.Screen) {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			i := row*t.cols + col
			style := tcell.StyleDefault.Background(toTcell(t.bg[i]))
			ch := ' '
			if g := t.glyphs[i]; g != nil {
				ch = g.r
				style = style.Foreground(toTcell(g.fg))
			}
			screen.SetContent(col, row, ch, nil, style)
		}
	}
	screen.Show()
}

func (t *TerminalSurface) Width() float64  { return float64(t.cols) * t.cellW }
func (t *TerminalSurface) Height() float64 { return float64(t.rows) * t.cellH }

func (t *TerminalSurface) Save()    { t.stack.Save() }
func (t *TerminalSurface) Restore() { t.stack.Restore() }

func (t *TerminalSurface) Translate(dx, dy float64) {
	t.stack.Current.TX += dx
	t.stack.Current.TY += dy
}

func (t *TerminalSurface) SetAlpha(alpha float64) {
	t.stack.Current.Alpha = alpha
}

// blend 以 clr 的透明度乘全局透明度混合到单元格背景
func (t *TerminalSurface) blend(col, row int, clr color.Color) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	n := WithAlpha(clr, t.stack.Current.Alpha)
	if n.A == 0 {
		return
	}
	src := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	i := row*t.cols + col
	t.bg[i] = t.bg[i].BlendRgb(src, float64(n.A)/255)
}

// cellCenter 返回单元格中心的表面坐标（已扣除当前平移）
func (t *TerminalSurface) cellCenter(col, row int) (float64, float64) {
	st := t.stack.Current
	return (float64(col)+0.5)*t.cellW - st.TX, (float64(row)+0.5)*t.cellH - st.TY
}

// cellOf 返回表面坐标所在的单元格（已叠加当前平移）
func (t *TerminalSurface) cellOf(x, y float64) (int, int) {
	st := t.stack.Current
	return int(math.Floor((x + st.TX) / t.cellW)), int(math.Floor((y + st.TY) / t.cellH))
}

func (t *TerminalSurface) FillRect(x, y, w, h float64, clr color.Color) {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			cx, cy := t.cellCenter(col, row)
			if cx >= x && cx < x+w && cy >= y && cy < y+h {
				t.blend(col, row, clr)
			}
		}
	}
}

func (t *TerminalSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	hit := false
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			x, y := t.cellCenter(col, row)
			if math.Hypot(x-cx, y-cy) <= r {
				t.blend(col, row, clr)
				hit = true
			}
		}
	}
	// 小于一个单元格的圆仍然占据其中心所在的单元格
	if !hit {
		col, row := t.cellOf(cx, cy)
		t.blend(col, row, clr)
	}
}

func (t *TerminalSurface) StrokeArc(cx, cy, r, startAngle, endAngle, lineWidth float64, clr color.Color) {
	half := lineWidth / 2
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			x, y := t.cellCenter(col, row)
			d := math.Hypot(x-cx, y-cy)
			if d < r-half || d > r+half {
				continue
			}
			if angleWithin(math.Atan2(y-cy, x-cx), startAngle, endAngle) {
				t.blend(col, row, clr)
			}
		}
	}
}

// angleWithin 判断角度 a 是否落在从 start 顺时针到 end 的区间内
func angleWithin(a, start, end float64) bool {
	span := normalizeAngle(end - start)
	if end-start >= 2*math.Pi {
		return true
	}
	return normalizeAngle(a-start) <= span
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func (t *TerminalSurface) FillText(s string, x, y float64, font config.FontPreset, clr color.Color) {
	runes := []rune(s)
	col, row := t.cellOf(x, y)
	col -= len(runes) / 2
	if row < 0 || row >= t.rows {
		return
	}

	n := WithAlpha(clr, t.stack.Current.Alpha)
	if n.A == 0 {
		return
	}
	src := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}

	for i, ch := range runes {
		c := col + i
		if c < 0 || c >= t.cols {
			continue
		}
		idx := row*t.cols + c
		t.glyphs[idx] = &glyph{r: ch, fg: t.bg[idx].BlendRgb(src, float64(n.A)/255)}
	}
}

// MeasureText 终端中每个字符占一个单元格
func (t *TerminalSurface) MeasureText(s string, font config.FontPreset) float64 {
	return float64(len([]rune(s))) * t.cellW
}

func toColorful(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
