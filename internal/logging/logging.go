// Package logging sets up the structured logger every preset and the
// display coordinator write diagnostics through.
//
// Grounded on the slog + github.com/lmittmann/tint pairing used for
// colorized development logging in _examples/vito-dang's cmd wiring;
// the teacher repo itself had no structured logger (its Screen just
// fmt.Fprintf'd warnings to os.Stderr), so this is adopted from the
// rest of the pack rather than adapted from the teacher.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures New.
type Options struct {
	Level slog.Level
	NoColor bool
}

// New builds a slog.Logger that writes colorized, human-readable lines
// to w (normally os.Stderr so it never interleaves with the terminal
// driver's own stdout redraws).
func New(w io.Writer, opts Options) *slog.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor,
	})
	return slog.New(h)
}
