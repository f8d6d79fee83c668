// Package fps provides a smoothed frames-per-second sampler.
//
// The sampler counts frames between Begin/End pairs and emits an averaged
// rate once per sampling window instead of a per-frame reciprocal.
//
//	s := fps.NewSampler()
//	for running {
//	    s.Begin()
//	    renderFrame()
//	    if v := s.End(); v != fps.NoSample {
//	        fmt.Printf("%.1f fps\n", v)
//	    }
//	}
package fps

import "time"

// NoSample is returned by End when the sampling window has not elapsed yet.
const NoSample = -1

// Window is the minimum time between two emitted samples.
const Window = 100 * time.Millisecond

// Sampler accumulates frame counts and emits a smoothed frame rate at most
// once per Window.
//
// Sampler is not safe for concurrent use. It is driven from the render loop.
type Sampler struct {
	now func() time.Time

	begin  time.Time
	prev   time.Time
	frames int
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithClock replaces the wall clock. Tests use it to drive time explicitly.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSampler creates a sampler whose window starts now.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Begin records the start of a frame.
func (s *Sampler) Begin() {
	s.begin = s.now()
}

// End counts a frame. Once at least Window has elapsed since the last
// emitted sample it returns frames*(1000/elapsedMs) and starts a new window.
// Otherwise it returns NoSample.
func (s *Sampler) End() float64 {
	s.frames++
	t := s.now()

	elapsed := t.Sub(s.prev)
	if elapsed < Window {
		return NoSample
	}

	ms := float64(elapsed) / float64(time.Millisecond)
	v := float64(s.frames) * (1000 / ms)

	s.prev = t
	s.frames = 0
	return v
}

// Reset clears the frame counter and restarts the window at the current time.
func (s *Sampler) Reset() {
	s.begin = s.now()
	s.prev = s.begin
	s.frames = 0
}

// Frames returns the number of frames counted in the current window.
func (s *Sampler) Frames() int {
	return s.frames
}

// LastBegin returns the timestamp recorded by the most recent Begin or Reset.
func (s *Sampler) LastBegin() time.Time {
	return s.begin
}

// FrameTime returns the time spent since the last Begin.
func (s *Sampler) FrameTime() time.Duration {
	return s.now().Sub(s.begin)
}
