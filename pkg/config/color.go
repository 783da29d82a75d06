package config

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// HexColor 配置文件中的颜色值
// YAML 中写作 "#rgb" / "#rrggbb"，或调色板名称（如 "cream"）
type HexColor struct {
	colorful.Color
}

// NewHexColor 从任意 color.Color 构造 HexColor（忽略透明度）
func NewHexColor(c color.Color) HexColor {
	cf, _ := colorful.MakeColor(c)
	return HexColor{Color: cf}
}

// ParseHexColor 解析十六进制颜色或调色板名称
func ParseHexColor(s string) (HexColor, error) {
	if named, ok := PaletteColors[s]; ok {
		return NewHexColor(named), nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{Color: cf}, nil
}

// RGBA8 返回不透明的 color.RGBA
func (h HexColor) RGBA8() color.RGBA {
	r, g, b := h.Color.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (h HexColor) MarshalYAML() (interface{}, error) {
	return h.Color.Hex(), nil
}
