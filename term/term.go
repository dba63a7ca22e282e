package term

import (
	"os"

	"golang.org/x/term"
)

// RawState is the terminal state saved before entering raw mode, needed
// to restore it on exit.
type RawState struct {
	state *term.State
}

// EnableRawMode switches f (normally os.Stdin) into raw mode, returning
// the previous state so it can be restored with DisableRawMode.
func EnableRawMode(f *os.File) (*RawState, error) {
	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &RawState{state: oldState}, nil
}

// DisableRawMode restores f to the state captured by EnableRawMode. A
// nil state is a no-op, so callers can defer it unconditionally.
func DisableRawMode(f *os.File, s *RawState) error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(int(f.Fd()), s.state)
}

// Size returns the current terminal dimensions.
func Size(f *os.File) (cols, rows int, err error) {
	return term.GetSize(int(f.Fd()))
}
