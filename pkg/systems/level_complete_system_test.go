package systems

import (
	"math"
	"testing"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/sound"
	"github.com/gonewx/juice/pkg/surface"
)

// TestLevelCompleteSystem_Trigger 触发时施加震动、闪光并播放音效
func TestLevelCompleteSystem_Trigger(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(nil)

	if !w.complete.Active() {
		t.Error("should be active after trigger")
	}
	if w.complete.Phase() != components.LevelCompletePhaseInit {
		t.Errorf("phase: got %s, want INIT", w.complete.Phase())
	}
	if w.shake.Intensity() != 8 {
		t.Errorf("shake intensity: got %v, want 8", w.shake.Intensity())
	}
	if w.flash.Alpha() != 0.4 {
		t.Errorf("flash alpha: got %v, want 0.4", w.flash.Alpha())
	}
	if w.player.Count(sound.KindSuccess) != 1 {
		t.Errorf("success sound: got %d plays, want 1", w.player.Count(sound.KindSuccess))
	}
}

// TestLevelCompleteSystem_InactiveNoop 未激活时返回 false 且不绘制
func TestLevelCompleteSystem_InactiveNoop(t *testing.T) {
	w := newTestWorld()
	rec := surface.NewRecorder(800, 600)

	if w.complete.Update(rec) {
		t.Error("Update should return false when inactive")
	}
	if len(rec.Ops) != 0 {
		t.Errorf("inactive update drew %d ops", len(rec.Ops))
	}
}

// TestLevelCompleteSystem_EndToEnd 30 次更新进入 FADE，90 次进入 PROMPT
func TestLevelCompleteSystem_EndToEnd(t *testing.T) {
	w := newTestWorld()
	calls := 0
	w.complete.Trigger(func() { calls++ })

	rec := surface.NewRecorder(800, 600)
	for i := 1; i <= 90; i++ {
		rec.Reset()
		if !w.complete.Update(rec) {
			t.Fatalf("update %d returned false", i)
		}

		switch {
		case i < 30:
			if w.complete.Phase() != components.LevelCompletePhaseInit {
				t.Fatalf("update %d: phase %s, want INIT", i, w.complete.Phase())
			}
		case i < 90:
			if w.complete.Phase() != components.LevelCompletePhaseFade {
				t.Fatalf("update %d: phase %s, want FADE", i, w.complete.Phase())
			}
			if w.complete.Ready() {
				t.Fatalf("update %d: should not be ready during FADE", i)
			}
		}
	}

	if w.complete.Phase() != components.LevelCompletePhasePrompt {
		t.Fatalf("after 90 updates: phase %s, want PROMPT", w.complete.Phase())
	}
	if !w.complete.Ready() {
		t.Fatal("should be ready in PROMPT")
	}

	w.complete.Finish()
	if calls != 1 {
		t.Errorf("callback calls: got %d, want 1", calls)
	}
	if w.complete.Ready() || w.complete.Active() {
		t.Error("should be inactive after finish")
	}

	w.complete.Finish()
	if calls != 1 {
		t.Errorf("second finish invoked callback again: %d calls", calls)
	}
}

// TestLevelCompleteSystem_CelebrationAtFrame15 第 15 帧在屏幕中心安排庆祝粒子
func TestLevelCompleteSystem_CelebrationAtFrame15(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(nil)

	for i := 0; i < 14; i++ {
		w.complete.Update(nil)
	}
	if w.scheduler.Pending() != 0 {
		t.Fatalf("celebration scheduled too early")
	}

	w.complete.Update(surface.NewRecorder(800, 600))
	if w.scheduler.Pending() != 4 {
		t.Fatalf("pending bursts: got %d, want 4", w.scheduler.Pending())
	}

	w.tick()
	if w.particles.Count() != 15 {
		t.Errorf("first burst: got %d particles, want 15", w.particles.Count())
	}
}

// TestLevelCompleteSystem_FadeRendering 切换到 FADE 的那一帧立即绘制遮罩
func TestLevelCompleteSystem_FadeRendering(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(nil)

	rec := surface.NewRecorder(800, 600)
	for i := 0; i < 30; i++ {
		rec.Reset()
		w.complete.Update(rec)
	}

	// 第 30 帧：FADE timer=0，遮罩透明度 0，不画标题
	rects := rec.OpsOf(surface.OpFillRect)
	if len(rects) != 1 || rects[0].Alpha != 0 {
		t.Fatalf("transition frame should draw a transparent overlay, got %+v", rects)
	}
	if rec.Count(surface.OpFillText) != 0 {
		t.Error("title should not be drawn at progress 0")
	}

	// 推进到 timer=20：progress 0.5
	for i := 0; i < 20; i++ {
		rec.Reset()
		w.complete.Update(rec)
	}
	rects = rec.OpsOf(surface.OpFillRect)
	if math.Abs(rects[0].Alpha-0.35) > 1e-9 {
		t.Errorf("overlay alpha at progress 0.5: got %v, want 0.35", rects[0].Alpha)
	}
	if rects[0].Color != config.ColorCream {
		t.Errorf("overlay color: got %v, want cream", rects[0].Color)
	}

	texts := rec.OpsOf(surface.OpFillText)
	if len(texts) != 1 || texts[0].Text != "COMPLETE" {
		t.Fatalf("texts: got %+v", texts)
	}
	title := texts[0]
	wantAlpha := (0.5 - 0.3) / 0.7
	if math.Abs(title.Alpha-wantAlpha) > 1e-9 {
		t.Errorf("title alpha: got %v, want %v", title.Alpha, wantAlpha)
	}
	wantY := 300 - 20 + math.Sin(20*0.15)*5*0.5
	if math.Abs(title.Y-wantY) > 1e-9 || title.X != 400 {
		t.Errorf("title position: got (%v, %v), want (400, %v)", title.X, title.Y, wantY)
	}
	if title.Font != config.FontTitleLarge || title.Color != config.ColorBlack {
		t.Errorf("title style: font %v color %v", title.Font, title.Color)
	}
}

// TestLevelCompleteSystem_PromptBlink 提示每 20 帧切换显示
func TestLevelCompleteSystem_PromptBlink(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(nil)

	rec := surface.NewRecorder(800, 600)
	for i := 0; i < 90; i++ {
		w.complete.Update(nil)
	}

	// 第 90 帧切入 PROMPT 时 timer=0；之后每次更新 timer 先自增
	tests := []struct {
		timer   int
		visible bool
	}{
		{1, true},
		{19, true},
		{20, false},
		{39, false},
		{40, true},
	}

	timer := 0
	for _, tt := range tests {
		for timer < tt.timer {
			rec.Reset()
			w.complete.Update(rec)
			timer++
		}
		texts := rec.Texts()
		hasPrompt := len(texts) == 2 && texts[1] == "PRESS ENTER TO CONTINUE"
		if hasPrompt != tt.visible {
			t.Errorf("timer %d: prompt visible %v, want %v (texts %v)", tt.timer, hasPrompt, tt.visible, texts)
		}
		if texts[0] != "COMPLETE" {
			t.Errorf("timer %d: title missing", tt.timer)
		}
	}

	arcs := rec.OpsOf(surface.OpStrokeArc)
	if len(arcs) != 2 {
		t.Fatalf("menu curves: got %d arcs, want 2", len(arcs))
	}
	if arcs[0].X != 860 || arcs[0].Y != -60 || arcs[0].R != 200 || arcs[0].Alpha != 1 {
		t.Errorf("outer arc: got %+v", arcs[0])
	}
	if arcs[1].R != 140 || arcs[1].Alpha != 0.7 || arcs[1].Line != 28 {
		t.Errorf("inner arc: got %+v", arcs[1])
	}
	if math.Abs(arcs[0].Start-math.Pi*0.5) > 1e-12 || math.Abs(arcs[0].End-math.Pi*0.95) > 1e-12 {
		t.Errorf("arc angles: got %v..%v", arcs[0].Start, arcs[0].End)
	}

	rects := rec.OpsOf(surface.OpFillRect)
	if len(rects) != 1 || rects[0].Alpha != 0.85 {
		t.Errorf("prompt overlay: got %+v", rects)
	}
}

// TestLevelCompleteSystem_PromptDrawnOnTransitionFrame 第 90 帧立即绘制 PROMPT
func TestLevelCompleteSystem_PromptDrawnOnTransitionFrame(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(nil)
	for i := 0; i < 89; i++ {
		w.complete.Update(nil)
	}

	rec := surface.NewRecorder(800, 600)
	w.complete.Update(rec)

	// FADE 的遮罩与标题 + PROMPT 的遮罩、标题与提示
	if got := rec.Count(surface.OpFillRect); got != 2 {
		t.Errorf("overlays on transition frame: got %d, want 2", got)
	}
	texts := rec.Texts()
	if len(texts) != 3 || texts[2] != "PRESS ENTER TO CONTINUE" {
		t.Errorf("texts on transition frame: got %v", texts)
	}
}

// TestLevelCompleteSystem_NilSurfaceAdvances nil 表面不绘制但照常推进
func TestLevelCompleteSystem_NilSurfaceAdvances(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(nil)

	for i := 0; i < 90; i++ {
		if !w.complete.Update(nil) {
			t.Fatalf("update %d returned false", i+1)
		}
	}
	if !w.complete.Ready() {
		t.Error("should reach PROMPT without a surface")
	}

	// 庆祝粒子以 (0, 0) 为中心
	w.tick()
	if w.particles.Count() != 15 {
		t.Errorf("celebration particles: got %d, want 15", w.particles.Count())
	}
}

// TestLevelCompleteSystem_FinishWhenInactive 未激活时 Finish 是安全的空操作
func TestLevelCompleteSystem_FinishWhenInactive(t *testing.T) {
	w := newTestWorld()
	w.complete.Finish()
	if w.complete.Active() {
		t.Error("finish should leave the sequencer inactive")
	}
}

// TestLevelCompleteSystem_RetriggerFromCallback 回调中再次触发会开始新的流程
func TestLevelCompleteSystem_RetriggerFromCallback(t *testing.T) {
	w := newTestWorld()
	w.complete.Trigger(func() {
		w.complete.Trigger(nil)
	})
	w.complete.Finish()

	if !w.complete.Active() || w.complete.Phase() != components.LevelCompletePhaseInit {
		t.Error("retrigger from callback should start a fresh sequence")
	}
}
