// Package embedded 提供内嵌数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go）或 mobile 包中，
// 启动时通过 Init 交给本包。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/gonewx/juice/pkg/config"
)

// JuiceConfigPath 内嵌的默认调参文件
const JuiceConfigPath = "data/juice.yaml"

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置内嵌文件系统
// 必须在 main() 开始时、任何资源加载之前调用；测试可以传入 fstest.MapFS
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径格式并检查前缀
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取内嵌文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// LoadJuiceConfig 解析内嵌的默认调参文件
func LoadJuiceConfig() (*config.JuiceConfig, error) {
	data, err := ReadFile(JuiceConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", JuiceConfigPath, err)
	}
	cfg, err := config.ParseJuiceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded %s: %w", JuiceConfigPath, err)
	}
	log.Printf("[Embedded] Loaded %s", JuiceConfigPath)
	return cfg, nil
}
