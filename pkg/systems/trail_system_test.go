package systems

import (
	"math"
	"testing"

	"github.com/gonewx/juice/pkg/components"
	"github.com/gonewx/juice/pkg/config"
	"github.com/gonewx/juice/pkg/ecs"
	"github.com/gonewx/juice/pkg/surface"
)

// TestTrailSystem_CapAndFIFO 超过 20 个点时淘汰最早的点
func TestTrailSystem_CapAndFIFO(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 25; i++ {
		w.trails.AddPoint(float64(i), 0, nil, 0)
	}

	if got := w.trails.Count(); got != 20 {
		t.Fatalf("Count(): got %d, want 20", got)
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.TrailPointComponent](w.em)
	oldest, _ := ecs.GetComponent[*components.PositionComponent](w.em, ids[0])
	newest, _ := ecs.GetComponent[*components.PositionComponent](w.em, ids[len(ids)-1])
	if oldest.X != 5 {
		t.Errorf("oldest surviving point: got x=%v, want 5", oldest.X)
	}
	if newest.X != 24 {
		t.Errorf("newest point: got x=%v, want 24", newest.X)
	}
}

// TestTrailSystem_Defaults nil 颜色与零尺寸使用默认值，负尺寸原样保留
func TestTrailSystem_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		size     float64
		wantSize float64
	}{
		{"explicit size", 5, 5},
		{"zero size", 0, 8},
		{"negative size", -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.trails.AddPoint(0, 0, nil, tt.size)

			ids := ecs.GetEntitiesWith1[*components.TrailPointComponent](w.em)
			pt, _ := ecs.GetComponent[*components.TrailPointComponent](w.em, ids[0])
			if pt.Size != tt.wantSize {
				t.Errorf("size: got %v, want %v", pt.Size, tt.wantSize)
			}
			if pt.Color != config.ColorCream {
				t.Errorf("color: got %v, want cream", pt.Color)
			}
			if pt.Alpha != 0.6 || pt.Life != 15 {
				t.Errorf("alpha/life: got %v/%d, want 0.6/15", pt.Alpha, pt.Life)
			}
		})
	}
}

// TestTrailSystem_Decay 每帧寿命减一、透明度重算、尺寸收缩，第 15 帧移除
func TestTrailSystem_Decay(t *testing.T) {
	w := newTestWorld()
	w.trails.AddPoint(10, 10, config.ColorRed, 10)

	rec := surface.NewRecorder(100, 100)
	w.trails.Update(rec)

	circles := rec.OpsOf(surface.OpFillCircle)
	if len(circles) != 1 {
		t.Fatalf("circles: got %d, want 1", len(circles))
	}
	wantAlpha := 14.0 / 15.0 * 0.5
	if math.Abs(circles[0].Alpha-wantAlpha) > 1e-9 {
		t.Errorf("draw alpha: got %v, want %v", circles[0].Alpha, wantAlpha)
	}
	if math.Abs(circles[0].R-9.5) > 1e-9 {
		t.Errorf("radius: got %v, want 9.5", circles[0].R)
	}

	for i := 2; i < 15; i++ {
		w.trails.Update(nil)
	}
	if w.trails.Count() != 1 {
		t.Fatalf("point removed too early")
	}
	w.trails.Update(nil)
	if w.trails.Count() != 0 {
		t.Errorf("point should be removed after 15 updates")
	}
}

func TestTrailSystem_Clear(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 3; i++ {
		w.trails.AddPoint(0, 0, nil, 0)
	}
	if removed := w.trails.Clear(); removed != 3 {
		t.Errorf("removed: got %d, want 3", removed)
	}
	if w.trails.Count() != 0 {
		t.Errorf("Count() after clear: got %d", w.trails.Count())
	}
}
