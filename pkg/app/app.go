// Package app 提供特效演示程序的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/demo"
	"github.com/gonewx/juice/pkg/embedded"
	"github.com/gonewx/juice/pkg/game"
	"github.com/gonewx/juice/pkg/game/ebitenaudio"
	"github.com/gonewx/juice/pkg/juice"
	"github.com/gonewx/juice/pkg/sound"
	"github.com/gonewx/juice/pkg/surface"
	"github.com/gonewx/juice/pkg/surface/ebitensurface"
	"github.com/gonewx/juice/pkg/systems"
	"github.com/gonewx/juice/pkg/utils"
)

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             Config
	scene           *demo.Demo
	offscreen       *ebiten.Image   // 每个 tick 绘制一次，Draw 只负责贴到屏幕
	canvas          surface.Surface // 绑定 offscreen 的绘制表面
	settingsManager *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示程序
//
// 未指定调参文件时使用内嵌的 data/juice.yaml，
// 调用前应先调用 embedded.Init()；未初始化时退回内置默认值。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("特效配置加载失败: %w", err)
	}

	// 设置存储打不开时降级为仅内存设置
	store, err := game.OpenStore("juice")
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		store = nil
	}
	settingsManager := game.NewSettingsManager(store)
	settings := settingsManager.GetSettings()

	audioContext := audio.NewContext(int(sound.DefaultSampleRate))
	audioManager := ebitenaudio.NewAudioManager(audioContext, settingsManager)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	j := juice.New(juice.Options{
		Seed:   cfg.Seed,
		Clock:  NewClock(cfg.Clock),
		Sound:  audioManager,
		Config: tuning,
	})

	scene := demo.NewDemo(j, float64(cfg.WindowWidth), float64(cfg.WindowHeight))
	scene.SetReducedMotion(settings.ReducedMotion)

	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	offscreen := ebiten.NewImage(cfg.WindowWidth, cfg.WindowHeight)

	return &App{
		cfg:             cfg,
		scene:           scene,
		offscreen:       offscreen,
		canvas:          ebitensurface.NewEbitenSurface(offscreen),
		settingsManager: settingsManager,
	}, nil
}

// LoadTuning 加载特效调参
// path 非空时读取该文件，否则读取内嵌默认文件，都不可用时使用内置默认值
func LoadTuning(path string) (*config.JuiceConfig, error) {
	if path != "" {
		tuning, err := config.LoadJuiceConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[App] Loaded tuning from %s", path)
		return tuning, nil
	}

	if embedded.IsInitialized() {
		return embedded.LoadJuiceConfig()
	}

	log.Printf("[App] Embedded data not initialized, using built-in tuning")
	return config.DefaultJuiceConfig(), nil
}

// NewClock 按配置创建延迟事件时间源
func NewClock(mode ClockMode) systems.Clock {
	if mode == ClockFrame {
		return systems.NewFrameClock()
	}
	return systems.NewWallClock()
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.updateWindow()
	a.updateSettings()

	// 移动端没有键盘，提示阶段点击屏幕即继续
	continueByTap := utils.IsMobile() && a.scene.Juice().LevelCompleteReady()
	a.tick(readInput(continueByTap))
	return nil
}

// tick 推进一帧并画到离屏图像
// 特效的寿命按帧计算，必须跟随 TPS 而不是显示器刷新率
func (a *App) tick(in demo.Input) {
	a.scene.Step(in)
	a.scene.Render(a.canvas)
}

// updateWindow F11 切换全屏
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.WindowWidth, a.cfg.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.WindowWidth, a.cfg.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}

	fullscreen := !ebiten.IsFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settingsManager.SetFullscreen(fullscreen)
	a.saveSettings()
}

// updateSettings M 切换声音，V 切换减弱动效，两者都会持久化
func (a *App) updateSettings() {
	settings := a.settingsManager.GetSettings()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
		a.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a.settingsManager.SetReducedMotion(!settings.ReducedMotion)
		a.scene.SetReducedMotion(settings.ReducedMotion)
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 把最近一次 tick 画好的离屏图像贴到屏幕
// 调用频率跟随显示器刷新率，这里不能推进任何特效
func (a *App) Draw(screen *ebiten.Image) {
	if a.offscreen == nil {
		return
	}
	screen.DrawImage(a.offscreen, nil)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.WindowWidth, a.cfg.WindowHeight
}

// Demo 返回演示场景
func (a *App) Demo() *demo.Demo {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}
