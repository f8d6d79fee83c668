package bench

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/fps"
	"github.com/gogpu/fxbench/render"
)

func noGPU() (render.DeviceCapabilities, error) {
	return render.DeviceCapabilities{}, render.ErrNoAdapter
}

func fakeGPU() (render.DeviceCapabilities, error) {
	return render.DeviceCapabilities{Available: true, AdapterName: "Test GPU", Backend: "vulkan", Adapters: 1}, nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	cfg.Frames = 6
	cfg.HUD = false
	cfg.Scene = smallScene
	return cfg
}

func testEnv() Environment {
	clock := &fakeClock{t: time.Unix(0, 0), step: 5 * time.Millisecond}
	return Environment{Probe: fakeGPU, Now: clock.Now}
}

func TestRunModes(t *testing.T) {
	tests := []struct {
		name        string
		mode        fxbench.Mode
		resizeEvery int
		wantBuilds  int
	}{
		{"cached", fxbench.ModeCached, 0, 1},
		{"cached with resizes", fxbench.ModeCached, 2, 1},
		{"per-frame", fxbench.ModePerFrame, 0, 6},
		{"per-frame with resizes", fxbench.ModePerFrame, 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Mode = tt.mode
			cfg.ResizeEvery = tt.resizeEvery

			report, err := Run(context.Background(), cfg, testEnv())
			if err != nil {
				t.Fatal(err)
			}
			if report.Frames != cfg.Frames {
				t.Errorf("Frames = %d, want %d", report.Frames, cfg.Frames)
			}
			if report.Builds != tt.wantBuilds {
				t.Errorf("Builds = %d, want %d", report.Builds, tt.wantBuilds)
			}
			if report.LiveTargets != 3 {
				t.Errorf("LiveTargets = %d, want 3", report.LiveTargets)
			}
			if report.Leaked != 0 {
				t.Errorf("Leaked = %d, want 0", report.Leaked)
			}
			if report.Adapter != "Test GPU" {
				t.Errorf("Adapter = %q", report.Adapter)
			}
			if report.Samples == 0 || report.AverageFPS <= 0 {
				t.Errorf("no FPS samples: %+v", report)
			}
		})
	}
}

func TestRunWithoutGPU(t *testing.T) {
	cfg := testConfig()
	env := testEnv()
	env.Probe = noGPU

	if _, err := Run(context.Background(), cfg, env); err != nil {
		t.Errorf("Run() without GPU = %v, want software fallback", err)
	}

	cfg.RequireGPU = true
	_, err := Run(context.Background(), cfg, env)
	if !errors.Is(err, ErrGPUUnavailable) {
		t.Errorf("Run() = %v, want ErrGPUUnavailable", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 0
	if _, err := Run(context.Background(), cfg, testEnv()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Run() = %v, want ErrInvalidConfig", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := Run(ctx, testConfig(), testEnv())
	if err != nil {
		t.Fatalf("Run() = %v, want nil on cancel", err)
	}
	if report.Frames != 0 || report.Leaked != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestRunSnapshot(t *testing.T) {
	cfg := testConfig()
	cfg.DevicePixelRatio = 2
	cfg.HUD = true
	cfg.Frames = 2
	cfg.Snapshot = filepath.Join(t.TempDir(), "frame.png")

	if _, err := Run(context.Background(), cfg, testEnv()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.Snapshot)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		t.Errorf("snapshot = %v, want %dx%d", b, cfg.Width, cfg.Height)
	}
}

func TestCompare(t *testing.T) {
	reports, err := Compare(context.Background(), testConfig(), testEnv())
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != len(fxbench.Modes) {
		t.Fatalf("reports = %d, want %d", len(reports), len(fxbench.Modes))
	}
	for i, mode := range fxbench.Modes {
		if reports[i].Mode != mode {
			t.Errorf("report %d mode = %v, want %v", i, reports[i].Mode, mode)
		}
	}

	var buf bytes.Buffer
	WriteReports(&buf, reports)
	out := buf.String()
	for _, s := range []string{"cached", "per-frame", "Avg FPS", "RATIO"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}
}

func TestReportSummary(t *testing.T) {
	r := Report{Mode: fxbench.ModePerFrame, Frames: 12345, Duration: 1500 * time.Millisecond, AverageFPS: 8.2, Samples: 15, Builds: 12345, Allocations: 24691}
	got := r.Summary()
	want := "per-frame: 12,345 frames in 1.5s, avg 8.20 fps (15 samples), 12,345 builds, 24,691 target allocations"
	if got != want {
		t.Errorf("Summary() =\n%q\nwant\n%q", got, want)
	}
}

func TestCheckCapabilities(t *testing.T) {
	tests := []struct {
		name    string
		device  render.DeviceHandle
		probe   Prober
		wantErr bool
	}{
		{"adapter", nil, fakeGPU, false},
		{"null device probes", render.NullDeviceHandle{}, fakeGPU, false},
		{"no adapter", nil, noGPU, true},
		{"unavailable", nil, func() (render.DeviceCapabilities, error) {
			return render.DeviceCapabilities{}, nil
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, err := CheckCapabilities(tt.device, tt.probe)
			if tt.wantErr {
				if !errors.Is(err, ErrGPUUnavailable) {
					t.Errorf("err = %v, want ErrGPUUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !caps.Available || caps.AdapterName != "Test GPU" {
				t.Errorf("caps = %+v", caps)
			}
		})
	}
}

func TestFormatAverage(t *testing.T) {
	var avg fps.Average
	if got := FormatAverage(&avg); got != "AVG FPS: 0.00" {
		t.Errorf("empty = %q", got)
	}
	avg.Add(30)
	avg.Add(fps.NoSample)
	avg.Add(60)
	if got := FormatAverage(&avg); got != "AVG FPS: 45.00" {
		t.Errorf("FormatAverage() = %q, want AVG FPS: 45.00", got)
	}
}

func TestNewHUD(t *testing.T) {
	hud, err := NewHUD(DefaultHUDSize)
	if err != nil {
		t.Fatal(err)
	}
	defer hud.Close()
	if got := hud.face.Metrics().Ascent.Ceil(); got < 20 {
		t.Errorf("ascent = %d px, want a %dpt face", got, DefaultHUDSize)
	}
}
