package demo

import "testing"

func TestPointerTrackerSequence(t *testing.T) {
	var tracker PointerTracker

	steps := []struct {
		name   string
		sample PointerSample
		want   PointerEvent
	}{
		{"hover", PointerSample{X: 5, Y: 5}, PointerEvent{State: PointerIdle, X: 5, Y: 5}},
		{"press", PointerSample{Pressed: true, X: 10, Y: 20}, PointerEvent{State: PointerPressed, X: 10, Y: 20}},
		{"drag", PointerSample{Pressed: true, X: 13, Y: 16}, PointerEvent{State: PointerDragging, X: 13, Y: 16, DX: 3, DY: -4}},
		{"hold still", PointerSample{Pressed: true, X: 13, Y: 16}, PointerEvent{State: PointerDragging, X: 13, Y: 16}},
		{"release reports last pressed position", PointerSample{X: 0, Y: 0}, PointerEvent{State: PointerReleased, X: 13, Y: 16}},
		{"idle again", PointerSample{X: 1, Y: 2}, PointerEvent{State: PointerIdle, X: 1, Y: 2}},
	}

	for _, step := range steps {
		got := tracker.Feed(step.sample)
		if got != step.want {
			t.Errorf("%s: got %+v, want %+v", step.name, got, step.want)
		}
	}
}

func TestPointerTrackerReset(t *testing.T) {
	var tracker PointerTracker
	tracker.Feed(PointerSample{Pressed: true, X: 1, Y: 1})
	if !tracker.Down() {
		t.Fatal("expected tracker to be down after press")
	}

	tracker.Reset()
	if tracker.Down() {
		t.Error("expected tracker to be up after Reset")
	}

	ev := tracker.Feed(PointerSample{Pressed: true, X: 4, Y: 4})
	if ev.State != PointerPressed {
		t.Errorf("got state %v after reset, want PointerPressed", ev.State)
	}
}
