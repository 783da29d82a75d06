package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/juice/pkg/demo"
)

// samplePointer 读取当前帧的指针状态，优先使用触摸
func samplePointer() demo.PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return demo.PointerSample{Pressed: true, X: x, Y: y}
	}

	x, y := ebiten.CursorPosition()
	return demo.PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// isJustTouchedOrClicked 检查是否刚刚发生点击或触摸
func isJustTouchedOrClicked() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// readInput 汇总一帧的键盘与指针输入
func readInput(continueByTap bool) demo.Input {
	return demo.Input{
		Pointer:  samplePointer(),
		Flash:    inpututil.IsKeyJustPressed(ebiten.KeyF),
		Slow:     inpututil.IsKeyJustPressed(ebiten.KeyS),
		Complete: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Continue: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || (continueByTap && isJustTouchedOrClicked()),
		Reset:    inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}
