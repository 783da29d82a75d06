package config

// FontFamily 字体族（仅作记录，实际渲染由 surface 实现选择具体字体）
const FontFamily = "'Helvetica Neue', Helvetica, Arial, sans-serif"

// FontPreset 排版预设
type FontPreset struct {
	Name string
	// Size 字号（像素）
	Size float64
	// Bold 是否粗体
	Bold bool
	// LetterSpacing 字间距，仅作记录（画布不支持时忽略）
	LetterSpacing float64
}

// 排版预设，所有关卡统一使用
var (
	FontTitle      = FontPreset{Name: "title", Size: 32, Bold: true, LetterSpacing: -1}
	FontTitleLarge = FontPreset{Name: "titleLarge", Size: 48, Bold: true, LetterSpacing: -2}
	FontSubtitle   = FontPreset{Name: "subtitle", Size: 14, LetterSpacing: 2}
	FontHUD        = FontPreset{Name: "hud", Size: 12, Bold: true, LetterSpacing: 0.5}
	FontHUDSmall   = FontPreset{Name: "hudSmall", Size: 10, Bold: true, LetterSpacing: 0.5}
	FontHUDLarge   = FontPreset{Name: "hudLarge", Size: 14, Bold: true, LetterSpacing: 0.5}
	FontBody       = FontPreset{Name: "body", Size: 14}
	FontBodySmall  = FontPreset{Name: "bodySmall", Size: 12}
	FontLabel      = FontPreset{Name: "label", Size: 9, Bold: true, LetterSpacing: 1}
	FontScore      = FontPreset{Name: "score", Size: 24, Bold: true}
	FontDialog     = FontPreset{Name: "dialog", Size: 16}
	FontSpeaker    = FontPreset{Name: "speaker", Size: 11, Bold: true, LetterSpacing: 2}
)

var fontPresets = map[string]FontPreset{
	FontTitle.Name:      FontTitle,
	FontTitleLarge.Name: FontTitleLarge,
	FontSubtitle.Name:   FontSubtitle,
	FontHUD.Name:        FontHUD,
	FontHUDSmall.Name:   FontHUDSmall,
	FontHUDLarge.Name:   FontHUDLarge,
	FontBody.Name:       FontBody,
	FontBodySmall.Name:  FontBodySmall,
	FontLabel.Name:      FontLabel,
	FontScore.Name:      FontScore,
	FontDialog.Name:     FontDialog,
	FontSpeaker.Name:    FontSpeaker,
}

// GetFontPreset 按名称获取排版预设
// 未知名称回退到 14px 常规体（与 body 相同）
func GetFontPreset(name string) FontPreset {
	if preset, ok := fontPresets[name]; ok {
		return preset
	}
	return FontPreset{Name: name, Size: 14}
}

// MakeFont 生成自定义字号的预设
func MakeFont(size float64, bold bool) FontPreset {
	return FontPreset{Name: "custom", Size: size, Bold: bold}
}
