// juiceterm 在终端里运行特效演示
//
// 每个字符格对应 cellW×cellH 个表面像素，特效照常以像素坐标模拟，
// 再由 TerminalSurface 栅格化成带背景色的字符格。
//
// 操作：鼠标点击 火花+震动，拖拽 拖尾，f 闪光，s 慢动作，
// 空格 过关动画，回车 继续，r 重置，m 静音，q/Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/demo"
	"github.com/gonewx/juice/pkg/game"
	"github.com/gonewx/juice/pkg/juice"
	"github.com/gonewx/juice/pkg/sound/speakerplayer"
	"github.com/gonewx/juice/pkg/surface"
)

const (
	cellW     = 8.0
	cellH     = 16.0
	frameTime = 16 * time.Millisecond // ~60 FPS
)

var (
	tuningPath = flag.String("tuning", "", "特效调参文件（默认使用内置默认值）")
	seed       = flag.Int64("seed", 0, "随机数种子，0 表示按时间取种子")
	logPath    = flag.String("log", "", "日志文件（终端被占用，日志不能写到 stderr）")
)

// Term 终端演示
type Term struct {
	screen   tcell.Screen
	surf     *surface.TerminalSurface
	scene    *demo.Demo
	player   *speakerplayer.SpeakerPlayer
	settings *game.SettingsManager

	input   demo.Input
	pointer demo.PointerSample
	latched bool // 两帧之间发生过按下，保证快速点击不丢失
}

// NewTerm 初始化屏幕、音频与特效上下文
func NewTerm(tuning *config.JuiceConfig) (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	store, err := game.OpenStore("juice")
	if err != nil {
		log.Printf("[Term] Warning: %v (settings will not persist)", err)
		store = nil
	}
	settingsManager := game.NewSettingsManager(store)
	settings := settingsManager.GetSettings()

	// 音频失败不是致命错误，没有声音也能运行
	player := speakerplayer.NewSpeakerPlayer()
	if err := player.Initialize(); err != nil {
		log.Printf("[Term] Audio initialization failed: %v", err)
	}
	player.SetVolume(settings.SoundVolume)
	player.SetEnabled(settings.SoundEnabled)

	cols, rows := screen.Size()
	surf := surface.NewTerminalSurface(cols, rows, cellW, cellH, config.ColorFog)

	j := juice.New(juice.Options{Seed: *seed, Sound: player, Config: tuning})
	scene := demo.NewDemo(j, surf.Width(), surf.Height())
	scene.SetReducedMotion(settings.ReducedMotion)

	return &Term{
		screen:   screen,
		surf:     surf,
		scene:    scene,
		player:   player,
		settings: settingsManager,
	}, nil
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (t *Term) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			t.input.Continue = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'f':
				t.input.Flash = true
			case 's':
				t.input.Slow = true
			case ' ':
				t.input.Complete = true
			case 'r':
				t.input.Reset = true
			case 'm':
				t.toggleSound()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		t.pointer = demo.PointerSample{
			Pressed: ev.Buttons()&tcell.Button1 != 0,
			X:       int((float64(col) + 0.5) * cellW),
			Y:       int((float64(row) + 0.5) * cellH),
		}
		if t.pointer.Pressed {
			t.latched = true
		}

	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.surf.Resize(cols, rows)
		t.scene.Resize(t.surf.Width(), t.surf.Height())
		t.screen.Sync()
	}

	return true
}

func (t *Term) toggleSound() {
	enabled := !t.settings.GetSettings().SoundEnabled
	t.settings.SetSoundEnabled(enabled)
	t.player.SetEnabled(enabled)
	if err := t.settings.Save(); err != nil {
		log.Printf("[Term] Warning: %v", err)
	}
}

// frame 推进并绘制一帧
func (t *Term) frame() {
	in := t.input
	in.Pointer = t.pointer
	if t.latched {
		in.Pointer.Pressed = true
	}
	t.input = demo.Input{}
	t.latched = false

	t.scene.Step(in)

	t.surf.Clear()
	t.scene.Render(t.surf)
	t.surf.Flush(t.screen)
}

func (t *Term) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

func (t *Term) cleanup() {
	t.player.Cleanup()
	t.screen.Fini()
}

func loadTuning(path string) (*config.JuiceConfig, error) {
	if path == "" {
		return config.DefaultJuiceConfig(), nil
	}
	return config.LoadJuiceConfig(path)
}

func main() {
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	term, err := NewTerm(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.cleanup()

	term.run()
}
