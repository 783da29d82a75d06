package config

import "image/color"

// 调色板
// 整套特效只使用这一组颜色：红/蓝作为强调色，自然色与中性色作为底色。
// 不要在关卡里临时定义新颜色。
var (
	// 强调色（少量、大胆地使用）
	ColorRed  = color.RGBA{R: 0xC4, G: 0x1E, B: 0x3A, A: 0xFF} // #C41E3A
	ColorBlue = color.RGBA{R: 0x2E, G: 0x5D, B: 0xA8, A: 0xFF} // #2E5DA8

	// 自然色
	ColorMeadow     = color.RGBA{R: 0x7A, G: 0x9B, B: 0x6D, A: 0xFF} // #7A9B6D
	ColorWood       = color.RGBA{R: 0x8B, G: 0x73, B: 0x55, A: 0xFF} // #8B7355
	ColorWoodLight  = color.RGBA{R: 0xA8, G: 0x90, B: 0x70, A: 0xFF} // #a89070
	ColorSand       = color.RGBA{R: 0xD4, G: 0xC4, B: 0xA8, A: 0xFF} // #d4c4a8
	ColorSky        = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF} // #87CEEB
	ColorOceanDeep  = color.RGBA{R: 0x1A, G: 0x5A, B: 0x7A, A: 0xFF} // #1a5a7a
	ColorOceanMid   = color.RGBA{R: 0x2A, G: 0x7A, B: 0x9A, A: 0xFF} // #2a7a9a
	ColorOceanLight = color.RGBA{R: 0x3A, G: 0x9A, B: 0xBA, A: 0xFF} // #3a9aba

	// 中性色
	ColorBlack = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF} // #1a1a1a
	ColorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #FFFFFF
	ColorCream = color.RGBA{R: 0xF5, G: 0xF5, B: 0xF0, A: 0xFF} // #f5f5f0
	ColorFog   = color.RGBA{R: 0xE8, G: 0xE4, B: 0xDC, A: 0xFF} // #e8e4dc

	// 功能色
	ColorTextDark  = ColorBlack
	ColorTextLight = ColorCream
	ColorTextMuted = ColorWood
)

// PaletteColors 按名称索引的调色板，供配置文件和调试工具使用
var PaletteColors = map[string]color.RGBA{
	"red":        ColorRed,
	"blue":       ColorBlue,
	"meadow":     ColorMeadow,
	"wood":       ColorWood,
	"woodLight":  ColorWoodLight,
	"sand":       ColorSand,
	"sky":        ColorSky,
	"oceanDeep":  ColorOceanDeep,
	"oceanMid":   ColorOceanMid,
	"oceanLight": ColorOceanLight,
	"black":      ColorBlack,
	"white":      ColorWhite,
	"cream":      ColorCream,
	"fog":        ColorFog,
	"textDark":   ColorTextDark,
	"textLight":  ColorTextLight,
	"textMuted":  ColorTextMuted,
}

// CelebrationColors 庆祝爆发的颜色顺序（红、蓝、奶油、草地）
var CelebrationColors = []color.RGBA{ColorRed, ColorBlue, ColorCream, ColorMeadow}
