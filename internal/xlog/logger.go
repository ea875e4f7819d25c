// SPDX-License-Identifier: MIT
package xlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// logger is the package-global logger, guarded so Configure can be called
// from test setup or a host CLI without racing concurrent Scenario runs.
var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard)
)

// Configure redirects diagnostic output to w at the given level. Passing a
// nil w restores the silent default. Intended to be called once at
// process startup (or per-test via t.Cleanup) by an embedder that wants
// the scenario runner's per-run debug summaries; the core never calls
// this itself.
func Configure(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		logger = zerolog.New(io.Discard)

		return
	}

	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ConfigureConsole is a convenience wrapper around Configure that writes a
// human-readable stream to os.Stderr at InfoLevel, the configuration a
// host CLI or interactive test run typically wants.
func ConfigureConsole() {
	Configure(zerolog.ConsoleWriter{Out: os.Stderr}, zerolog.InfoLevel)
}

// Get returns the current logger. Safe for concurrent use with Configure.
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	l := logger

	return &l
}
