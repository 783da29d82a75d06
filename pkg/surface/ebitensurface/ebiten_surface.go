// Package ebitensurface 把 surface.Surface 画到 *ebiten.Image 上
//
// 依赖 Ebitengine 的图形后端，只有桌面端与移动端包装器引用它。
package ebitensurface

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/surface"
)

var (
	// whiteImage 描边三角形的纹理源，取中间像素避免边缘采样
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	fontOnce      sync.Once
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
)

func init() {
	whiteImage.Fill(color.White)
}

// loadFontSources 延迟加载内置的 Go 字体
func loadFontSources() {
	fontOnce.Do(func() {
		var err error
		regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[EbitenSurface] Warning: failed to load regular font: %v", err)
		}
		boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			log.Printf("[EbitenSurface] Warning: failed to load bold font: %v", err)
			boldSource = regularSource
		}
	})
}

type faceKey struct {
	size float64
	bold bool
}

// EbitenSurface 基于 *ebiten.Image 的 surface.Surface 实现
//
// 目标图像通常是包装器持有的离屏图像：每个 tick 画一次，
// Draw 时再整体贴到屏幕上。
type EbitenSurface struct {
	dst   *ebiten.Image
	stack surface.StateStack
	faces map[faceKey]*text.GoTextFace
}

// NewEbitenSurface 创建绑定到 dst 的绘制表面，dst 为 nil 时所有绘制都是空操作
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		dst:   dst,
		stack: surface.NewStateStack(),
		faces: make(map[faceKey]*text.GoTextFace),
	}
}

func (s *EbitenSurface) Width() float64 {
	if s.dst == nil {
		return 0
	}
	return float64(s.dst.Bounds().Dx())
}

func (s *EbitenSurface) Height() float64 {
	if s.dst == nil {
		return 0
	}
	return float64(s.dst.Bounds().Dy())
}

func (s *EbitenSurface) Save()    { s.stack.Save() }
func (s *EbitenSurface) Restore() { s.stack.Restore() }

func (s *EbitenSurface) Translate(dx, dy float64) {
	s.stack.Current.TX += dx
	s.stack.Current.TY += dy
}

func (s *EbitenSurface) SetAlpha(alpha float64) {
	s.stack.Current.Alpha = alpha
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.dst == nil {
		return
	}
	st := s.stack.Current
	vector.DrawFilledRect(s.dst,
		float32(x+st.TX), float32(y+st.TY),
		float32(w), float32(h),
		surface.WithAlpha(clr, st.Alpha), false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if s.dst == nil || r <= 0 {
		return
	}
	st := s.stack.Current
	vector.DrawFilledCircle(s.dst,
		float32(cx+st.TX), float32(cy+st.TY), float32(r),
		surface.WithAlpha(clr, st.Alpha), true)
}

func (s *EbitenSurface) StrokeArc(cx, cy, r, startAngle, endAngle, lineWidth float64, clr color.Color) {
	if s.dst == nil || r <= 0 || lineWidth <= 0 {
		return
	}
	st := s.stack.Current

	var path vector.Path
	path.Arc(float32(cx+st.TX), float32(cy+st.TY), float32(r), float32(startAngle), float32(endAngle), vector.Clockwise)

	strokeOp := &vector.StrokeOptions{
		Width:    float32(lineWidth),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	c := surface.WithAlpha(clr, st.Alpha)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (s *EbitenSurface) face(font config.FontPreset) *text.GoTextFace {
	key := faceKey{size: font.Size, bold: font.Bold}
	if f, ok := s.faces[key]; ok {
		return f
	}

	loadFontSources()
	src := regularSource
	if font.Bold {
		src = boldSource
	}
	if src == nil {
		return nil
	}

	f := &text.GoTextFace{
		Source:    src,
		Size:      font.Size,
		Direction: text.DirectionLeftToRight,
	}
	s.faces[key] = f
	return f
}

func (s *EbitenSurface) FillText(str string, x, y float64, font config.FontPreset, clr color.Color) {
	if s.dst == nil {
		return
	}
	f := s.face(font)
	if f == nil {
		return
	}
	st := s.stack.Current

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+st.TX, y+st.TY)
	op.ColorScale.ScaleWithColor(surface.WithAlpha(clr, st.Alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, f, op)
}

func (s *EbitenSurface) MeasureText(str string, font config.FontPreset) float64 {
	f := s.face(font)
	if f == nil {
		return 0
	}
	w, _ := text.Measure(str, f, 0)
	return w
}
