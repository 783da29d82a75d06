package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/juice/pkg/app"
	"github.com/gonewx/juice/pkg/embedded"
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "应用配置文件（默认查找 ./juice.app.yaml）")
	tuningPath = flag.String("tuning", "", "特效调参文件（默认使用内嵌的 data/juice.yaml）")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	// 初始化内嵌数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *tuningPath != "" {
		cfg.TuningPath = *tuningPath
	}

	juiceApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Juice - 特效演示")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(juiceApp); err != nil {
		log.Fatal(err)
	}
}
