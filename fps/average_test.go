package fps

import "testing"

func TestAverage(t *testing.T) {
	var a Average
	if a.Value() != 0 || a.Count() != 0 {
		t.Fatalf("zero Average = (%v, %d), want (0, 0)", a.Value(), a.Count())
	}

	for _, v := range []float64{60, NoSample, 30, 90} {
		a.Add(v)
	}

	if a.Count() != 3 {
		t.Errorf("Count() = %d, want 3", a.Count())
	}
	if a.Sum() != 180 {
		t.Errorf("Sum() = %v, want 180", a.Sum())
	}
	if a.Value() != 60 {
		t.Errorf("Value() = %v, want 60", a.Value())
	}
	if a.Min() != 30 || a.Max() != 90 {
		t.Errorf("Min/Max = %v/%v, want 30/90", a.Min(), a.Max())
	}

	a.Reset()
	if a.Count() != 0 || a.Value() != 0 {
		t.Errorf("after Reset: (%v, %d), want (0, 0)", a.Value(), a.Count())
	}
}
