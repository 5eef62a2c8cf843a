// Package cli implements the ordstat command-line interface.
//
// The CLI is a thin front end over the library: it selects ranks and
// extrema of numbers given on the command line and runs the census that
// checks every selection network for stability and comparison budget.
//
// # Commands
//
//   - select:   stable rank-k value of up to seven numbers
//   - minmax:   first minimum and last maximum of any number of values
//   - networks: list the fixed-arity networks and their budgets
//   - census:   exhaustive and sampled verification of the networks
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command context; results go to stdout, logs to stderr.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Checked 29 networks (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
