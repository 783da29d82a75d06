package app

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// 应用配置的默认值
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultTPS          = 60
)

// ClockMode 延迟事件使用的时间源
type ClockMode string

const (
	// ClockWall 真实时间（默认）
	ClockWall ClockMode = "wall"
	// ClockFrame 按帧计时，每次 Update 推进一个名义帧
	ClockFrame ClockMode = "frame"
)

// Config 演示程序启动配置
type Config struct {
	// WindowWidth / WindowHeight 逻辑屏幕尺寸
	WindowWidth  int `mapstructure:"windowWidth"`
	WindowHeight int `mapstructure:"windowHeight"`
	// TPS 每秒逻辑帧数
	TPS int `mapstructure:"tps"`
	// Seed 随机数种子，0 表示按时间取种子
	Seed int64 `mapstructure:"seed"`
	// TuningPath 特效调参文件路径，为空则使用内嵌的默认配置
	TuningPath string `mapstructure:"tuningPath"`
	// Verbose 启用详细日志输出
	Verbose bool `mapstructure:"verbose"`
	// Clock 时间源，"wall" 或 "frame"
	Clock ClockMode `mapstructure:"clock"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		TPS:          DefaultTPS,
		Clock:        ClockWall,
	}
}

// LoadConfig 读取应用配置
//
// 优先级：JUICE_* 环境变量 > 配置文件 > 默认值。
// path 为空时在当前目录查找可选的 juice.app.yaml，找不到不算错误；
// 显式指定的 path 不存在时返回错误。
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("windowWidth", defaults.WindowWidth)
	v.SetDefault("windowHeight", defaults.WindowHeight)
	v.SetDefault("tps", defaults.TPS)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("tuningPath", defaults.TuningPath)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("clock", string(defaults.Clock))

	v.SetEnvPrefix("JUICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv 只对已注册的键生效，驼峰键需要显式绑定到下划线形式
	for key, env := range map[string]string{
		"windowWidth":  "JUICE_WINDOW_WIDTH",
		"windowHeight": "JUICE_WINDOW_HEIGHT",
		"tuningPath":   "JUICE_TUNING_PATH",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read app config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("juice.app")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read juice.app.yaml: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode app config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if used := v.ConfigFileUsed(); used != "" {
		log.Printf("[AppConfig] Loaded %s", used)
	}
	return cfg, nil
}

// Validate 检查配置合法性
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	switch c.Clock {
	case ClockWall, ClockFrame:
	default:
		return fmt.Errorf("unknown clock mode %q (want %q or %q)", c.Clock, ClockWall, ClockFrame)
	}
	return nil
}
