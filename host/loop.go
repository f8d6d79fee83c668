package host

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/fxbench"
)

// ErrStop can be returned by a FrameFunc to end the loop without an error.
var ErrStop = errors.New("host: stop animation loop")

// FrameFunc renders one frame. frame counts from 0.
type FrameFunc func(frame int, now time.Time) error

// Loop calls a frame callback once per refresh until it is stopped.
//
// The zero value runs uncapped with no frame limit.
type Loop struct {
	// Interval is the refresh period. Zero runs frames back to back.
	Interval time.Duration

	// MaxFrames stops the loop after that many frames. Zero means no limit.
	MaxFrames int

	// Now replaces the wall clock.
	Now func() time.Time

	frames int
}

// NewLoop creates a loop refreshing at rate frames per second.
// A rate <= 0 is uncapped.
func NewLoop(rate float64, maxFrames int) *Loop {
	l := &Loop{MaxFrames: max(maxFrames, 0)}
	if rate > 0 {
		l.Interval = time.Duration(float64(time.Second) / rate)
	}
	return l
}

// Frames returns the number of frames rendered by the last Run.
func (l *Loop) Frames() int {
	return l.frames
}

// Run calls fn once per refresh on the calling goroutine. Each call
// completes before the next starts.
//
// Run returns nil when MaxFrames is reached or fn returns ErrStop, ctx.Err()
// when ctx is done, and any other error returned by fn.
func (l *Loop) Run(ctx context.Context, fn FrameFunc) error {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	l.frames = 0

	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	fxbench.Logger().Debug("host: animation loop started",
		"interval", l.Interval, "maxFrames", l.MaxFrames)

	for l.MaxFrames == 0 || l.frames < l.MaxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		err := fn(l.frames, now())
		l.frames++
		if errors.Is(err, ErrStop) {
			break
		}
		if err != nil {
			return err
		}
	}

	fxbench.Logger().Debug("host: animation loop stopped", "frames", l.frames)
	return nil
}
