package fxbench

import (
	"fmt"
	"strings"
)

// Mode selects how the post-processing pipeline is constructed.
type Mode int

const (
	// ModeCached builds the composer and its render target once and reuses
	// them until the renderer they are bound to changes.
	ModeCached Mode = iota

	// ModePerFrame builds a new composer and render target on every frame.
	// The previous bundle is disposed before it is replaced.
	ModePerFrame
)

// Modes lists every construction mode in report order.
var Modes = []Mode{ModeCached, ModePerFrame}

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeCached:
		return "cached"
	case ModePerFrame:
		return "per-frame"
	default:
		return "unknown"
	}
}

// ParseMode returns the Mode for the given name. Matching is case
// insensitive and accepts "perframe" as an alias for "per-frame".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cached", "memo", "memoized":
		return ModeCached, nil
	case "per-frame", "perframe", "every-frame":
		return ModePerFrame, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeCached && m != ModePerFrame {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
