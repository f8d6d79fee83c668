package fps

// Average is a running (sum, count) pair of emitted samples.
// The zero value is ready to use.
type Average struct {
	sum   float64
	count int
	min   float64
	max   float64
}

// Add accumulates one sample. Samples equal to NoSample or below zero are
// ignored.
func (a *Average) Add(v float64) {
	if v < 0 {
		return
	}
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.sum += v
	a.count++
}

// Value returns sum/count, or 0 if no sample was added.
func (a *Average) Value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// Sum returns the sum of all samples.
func (a *Average) Sum() float64 { return a.sum }

// Count returns the number of samples.
func (a *Average) Count() int { return a.count }

// Min returns the smallest sample, or 0 if empty.
func (a *Average) Min() float64 { return a.min }

// Max returns the largest sample, or 0 if empty.
func (a *Average) Max() float64 { return a.max }

// Reset clears all samples.
func (a *Average) Reset() {
	*a = Average{}
}
