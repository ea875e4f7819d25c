// SPDX-License-Identifier: MIT

// Package xlog is a thin github.com/rs/zerolog wrapper providing optional
// diagnostic logging. Its one call site is the scenario runner, which logs
// a debug summary per run (run id, outcome, tests run); the Explorer and
// the Shrinker do not log. It is silent by default (the zero value
// discards everything) — callers opt in with Configure, mirroring
// zerolog's own "quiet unless asked" ethos and the teacher corpus's
// internal/logging packages (bbak-mcs-mcp, jhkimqd-chaos-utils).
package xlog
