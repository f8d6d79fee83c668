package color

import "testing"

func TestACESFilmicBlackStaysBlack(t *testing.T) {
	r, g, b := ACESFilmic(0, 0, 0, 1)
	for _, v := range []float32{r, g, b} {
		if v < 0 || v > 0.01 {
			t.Errorf("ACESFilmic(black) component = %v, want ~0", v)
		}
	}
}

func TestACESFilmicMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 200; i++ {
		v := float32(i) / 20
		r, _, _ := ACESFilmic(v, v, v, 1)
		if r < prev {
			t.Fatalf("ACESFilmic not monotonic at %v: %v < %v", v, r, prev)
		}
		prev = r
	}
}

func TestACESFilmicSaturates(t *testing.T) {
	r, g, b := ACESFilmic(1000, 1000, 1000, 1)
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("ACESFilmic(huge) = %v %v %v, want 1 1 1", r, g, b)
	}
}

func TestToneMappingApply(t *testing.T) {
	tests := []struct {
		name string
		tm   ToneMapping
		in   float32
		exp  float32
		want float32
	}{
		{"none passes through", NoToneMapping, 2, 1, 2},
		{"linear scales", LinearToneMapping, 0.25, 2, 0.5},
		{"linear clamps", LinearToneMapping, 3, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := tt.tm.Apply(tt.in, tt.in, tt.in, tt.exp)
			if r != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, r, tt.want)
			}
		})
	}
}

func TestToneMappingString(t *testing.T) {
	if ACESFilmicToneMapping.String() != "aces-filmic" {
		t.Errorf("String() = %q", ACESFilmicToneMapping.String())
	}
	if ToneMapping(9).String() != "unknown" {
		t.Errorf("String() of invalid = %q", ToneMapping(9).String())
	}
}
