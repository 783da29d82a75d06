//go:build mobile

package utils

// IsMobile 移动端构建时恒为 true
// 演示程序据此把"回车继续"换成点击屏幕继续
func IsMobile() bool {
	return true
}
