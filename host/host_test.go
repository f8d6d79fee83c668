package host

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestViewportResize(t *testing.T) {
	v := NewViewport(640, 480, 0)
	if v.DevicePixelRatio() != 1 {
		t.Errorf("DevicePixelRatio() = %v, want 1 for invalid ratio", v.DevicePixelRatio())
	}

	var got [][2]int
	v.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })
	v.OnResize(nil)

	tests := []struct {
		name    string
		w, h    int
		changed bool
	}{
		{"same size", 640, 480, false},
		{"grow", 800, 600, true},
		{"negative clamps", -1, 600, true},
		{"repeat", 0, 600, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if changed := v.Resize(tt.w, tt.h); changed != tt.changed {
				t.Errorf("Resize(%d, %d) = %v, want %v", tt.w, tt.h, changed, tt.changed)
			}
		})
	}

	want := [][2]int{{800, 600}, {0, 600}}
	if len(got) != len(want) {
		t.Fatalf("listener calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindowCanvas(t *testing.T) {
	w := NewWindow(320, 200, 2)
	c := w.Canvas()
	if c.Width() != 320 || c.Height() != 200 {
		t.Errorf("canvas = %dx%d, want 320x200", c.Width(), c.Height())
	}
	if sw, sh := c.StyleSize(); sw != 320 || sh != 200 {
		t.Errorf("style = %dx%d, want 320x200", sw, sh)
	}
	if w.DevicePixelRatio() != 2 {
		t.Errorf("DevicePixelRatio() = %v, want 2", w.DevicePixelRatio())
	}
}

func TestLoopMaxFrames(t *testing.T) {
	l := NewLoop(0, 5)
	var frames []int
	err := l.Run(context.Background(), func(frame int, _ time.Time) error {
		frames = append(frames, frame)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Frames() != 5 || len(frames) != 5 || frames[4] != 4 {
		t.Errorf("frames = %v, Frames() = %d", frames, l.Frames())
	}
}

func TestLoopStop(t *testing.T) {
	l := &Loop{}
	err := l.Run(context.Background(), func(frame int, _ time.Time) error {
		if frame == 2 {
			return ErrStop
		}
		return nil
	})
	if err != nil {
		t.Errorf("Run() = %v, want nil after ErrStop", err)
	}
	if l.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", l.Frames())
	}
}

func TestLoopError(t *testing.T) {
	boom := errors.New("boom")
	l := &Loop{}
	if err := l.Run(context.Background(), func(int, time.Time) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want boom", err)
	}
}

func TestLoopContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(1000, 0)
	err := l.Run(ctx, func(frame int, _ time.Time) error {
		if frame == 1 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", l.Frames())
	}
}

func TestLoopClock(t *testing.T) {
	base := time.Unix(100, 0)
	l := &Loop{MaxFrames: 1, Now: func() time.Time { return base }}
	var got time.Time
	_ = l.Run(context.Background(), func(_ int, now time.Time) error {
		got = now
		return nil
	})
	if !got.Equal(base) {
		t.Errorf("now = %v, want %v", got, base)
	}
}
