package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// JuiceConfig 特效层调参配置
//
// 所有字段的默认值即特效的标准手感，见 DefaultJuiceConfig。
// 计时单位为"帧"（tick），除非字段名带 Ms 后缀。
//
// 配置文件位置: data/juice.yaml（已嵌入二进制，可用外部文件覆盖）
type JuiceConfig struct {
	Particles     ParticleTuning      `yaml:"particles"`
	Sparkles      BurstTuning         `yaml:"sparkles"`
	Celebration   CelebrationTuning   `yaml:"celebration"`
	Trail         TrailTuning         `yaml:"trail"`
	Shake         ShakeTuning         `yaml:"shake"`
	Flash         FlashTuning         `yaml:"flash"`
	TimeScale     TimeScaleTuning     `yaml:"timeScale"`
	LevelComplete LevelCompleteTuning `yaml:"levelComplete"`
}

// BurstTuning 一次粒子爆发的参数
type BurstTuning struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`
	Size    float64 `yaml:"size"`
	Life    int     `yaml:"life"`
	Spread  float64 `yaml:"spread"` // 弧度
	Gravity float64 `yaml:"gravity"`
}

// ParticleTuning 粒子系统参数
type ParticleTuning struct {
	// Defaults spawnParticles 未指定字段时使用的默认值
	Defaults BurstTuning `yaml:"defaults"`
	// Color 默认粒子颜色
	Color HexColor `yaml:"color"`
	// Drag 每帧速度衰减系数（各向同性）
	Drag float64 `yaml:"drag"`
}

// CelebrationTuning 庆祝爆发参数
type CelebrationTuning struct {
	Colors    []HexColor  `yaml:"colors"`
	StaggerMs int         `yaml:"staggerMs"`
	Burst     BurstTuning `yaml:"burst"`
}

// TrailTuning 拖尾参数
type TrailTuning struct {
	MaxPoints   int      `yaml:"maxPoints"`
	Life        int      `yaml:"life"`
	StartAlpha  float64  `yaml:"startAlpha"`
	RenderAlpha float64  `yaml:"renderAlpha"`
	Shrink      float64  `yaml:"shrink"`
	DefaultSize float64  `yaml:"defaultSize"`
	Color       HexColor `yaml:"color"`
}

// ShakeTuning 屏幕震动参数
type ShakeTuning struct {
	Threshold        float64 `yaml:"threshold"`
	DefaultIntensity float64 `yaml:"defaultIntensity"`
	DefaultDecay     float64 `yaml:"defaultDecay"`
}

// FlashTuning 闪屏参数
type FlashTuning struct {
	Decay            float64  `yaml:"decay"`
	Epsilon          float64  `yaml:"epsilon"`
	DefaultIntensity float64  `yaml:"defaultIntensity"`
	DefaultColor     HexColor `yaml:"defaultColor"`
}

// TimeScaleTuning 时间缩放参数
type TimeScaleTuning struct {
	Smoothing            float64 `yaml:"smoothing"`
	FrameMs              float64 `yaml:"frameMs"`
	DefaultDurationTicks int     `yaml:"defaultDurationTicks"`
}

// LevelCompleteTuning 过关动画参数
type LevelCompleteTuning struct {
	CelebrateAt     int     `yaml:"celebrateAt"`
	InitDuration    int     `yaml:"initDuration"`
	FadeTicks       int     `yaml:"fadeTicks"`
	FadeDuration    int     `yaml:"fadeDuration"`
	BlinkTicks      int     `yaml:"blinkTicks"`
	FadeMaxAlpha    float64 `yaml:"fadeMaxAlpha"`
	TextRevealAt    float64 `yaml:"textRevealAt"`
	PromptAlpha     float64 `yaml:"promptAlpha"`
	BounceAmplitude float64 `yaml:"bounceAmplitude"`
	BounceFrequency float64 `yaml:"bounceFrequency"`
	ShakeIntensity  float64 `yaml:"shakeIntensity"`
	ShakeDecay      float64 `yaml:"shakeDecay"`
	FlashIntensity  float64 `yaml:"flashIntensity"`
	Title           string  `yaml:"title"`
	Prompt          string  `yaml:"prompt"`
}

// DefaultJuiceConfig 返回标准手感的配置
func DefaultJuiceConfig() *JuiceConfig {
	celebration := make([]HexColor, 0, len(CelebrationColors))
	for _, c := range CelebrationColors {
		celebration = append(celebration, NewHexColor(c))
	}

	return &JuiceConfig{
		Particles: ParticleTuning{
			Defaults: BurstTuning{Count: 8, Speed: 3, Size: 4, Life: 30, Spread: 2 * math.Pi, Gravity: 0},
			Color:    NewHexColor(ColorCream),
			Drag:     0.98,
		},
		Sparkles: BurstTuning{Count: 12, Speed: 4, Size: 3, Life: 25, Spread: 2 * math.Pi},
		Celebration: CelebrationTuning{
			Colors:    celebration,
			StaggerMs: 50,
			Burst:     BurstTuning{Count: 15, Speed: 6, Size: 5, Life: 40, Spread: 2 * math.Pi, Gravity: 0.1},
		},
		Trail: TrailTuning{
			MaxPoints:   20,
			Life:        15,
			StartAlpha:  0.6,
			RenderAlpha: 0.5,
			Shrink:      0.95,
			DefaultSize: 8,
			Color:       NewHexColor(ColorCream),
		},
		Shake: ShakeTuning{Threshold: 0.5, DefaultIntensity: 5, DefaultDecay: 0.9},
		Flash: FlashTuning{
			Decay:            0.85,
			Epsilon:          0.01,
			DefaultIntensity: 0.3,
			DefaultColor:     NewHexColor(color.White),
		},
		TimeScale: TimeScaleTuning{Smoothing: 0.1, FrameMs: 16.67, DefaultDurationTicks: 30},
		LevelComplete: LevelCompleteTuning{
			CelebrateAt:     15,
			InitDuration:    30,
			FadeTicks:       40,
			FadeDuration:    60,
			BlinkTicks:      20,
			FadeMaxAlpha:    0.7,
			TextRevealAt:    0.3,
			PromptAlpha:     0.85,
			BounceAmplitude: 5,
			BounceFrequency: 0.15,
			ShakeIntensity:  8,
			ShakeDecay:      0.92,
			FlashIntensity:  0.4,
			Title:           "COMPLETE",
			Prompt:          "PRESS ENTER TO CONTINUE",
		},
	}
}

// LoadJuiceConfig 加载特效调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/juice.yaml"）
//
// 返回:
//   - *JuiceConfig: 加载成功后的配置（缺省字段保持默认值）
//   - error: 读取、解析或验证失败时返回错误
func LoadJuiceConfig(path string) (*JuiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read juice config: %w", err)
	}
	return ParseJuiceConfig(data)
}

// ParseJuiceConfig 从 YAML 字节解析配置
// 先填充默认值再解析，因此文件只需写出要覆盖的字段
func ParseJuiceConfig(data []byte) (*JuiceConfig, error) {
	config := DefaultJuiceConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse juice config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid juice config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 只检查会让状态机或队列失效的字段；粒子数量、尺寸等数值不做校验，
// 负值会原样进入模拟。
func (c *JuiceConfig) Validate() error {
	if c.Trail.MaxPoints <= 0 {
		return fmt.Errorf("trail maxPoints must be positive, got %d", c.Trail.MaxPoints)
	}
	if c.Trail.Life <= 0 {
		return fmt.Errorf("trail life must be positive, got %d", c.Trail.Life)
	}
	if c.Flash.Decay <= 0 || c.Flash.Decay >= 1 {
		return fmt.Errorf("flash decay must be in (0, 1), got %.3f", c.Flash.Decay)
	}
	if c.TimeScale.Smoothing <= 0 || c.TimeScale.Smoothing > 1 {
		return fmt.Errorf("timeScale smoothing must be in (0, 1], got %.3f", c.TimeScale.Smoothing)
	}
	if c.TimeScale.FrameMs <= 0 {
		return fmt.Errorf("timeScale frameMs must be positive, got %.3f", c.TimeScale.FrameMs)
	}
	if c.Celebration.StaggerMs < 0 {
		return fmt.Errorf("celebration staggerMs must not be negative, got %d", c.Celebration.StaggerMs)
	}

	lc := c.LevelComplete
	if lc.InitDuration <= 0 || lc.FadeDuration <= 0 || lc.FadeTicks <= 0 || lc.BlinkTicks <= 0 {
		return fmt.Errorf("levelComplete durations must be positive (init=%d fade=%d fadeTicks=%d blink=%d)",
			lc.InitDuration, lc.FadeDuration, lc.FadeTicks, lc.BlinkTicks)
	}
	if lc.TextRevealAt >= 1 {
		return fmt.Errorf("levelComplete textRevealAt must be below 1, got %.3f", lc.TextRevealAt)
	}

	return nil
}
