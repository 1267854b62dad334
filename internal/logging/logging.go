// SPDX-License-Identifier: EPL-2.0

// Package logging hands out pion leveled loggers that share one level.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pion/logging"
)

var (
	mtx     sync.Mutex
	level   = logging.LogLevelWarn
	output  io.Writer = os.Stderr
	loggers []*logging.DefaultLeveledLogger
)

// NewLogger returns a logger for scope at the current shared level.
func NewLogger(scope string) logging.LeveledLogger {
	mtx.Lock()
	defer mtx.Unlock()

	l := logging.NewDefaultLeveledLoggerForScope(scope, level, output)
	loggers = append(loggers, l)
	return l
}

// SetLevel changes the level of every logger, including already created ones.
func SetLevel(lvl logging.LogLevel) {
	mtx.Lock()
	defer mtx.Unlock()

	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	mtx.Lock()
	defer mtx.Unlock()

	output = w
	for _, l := range loggers {
		l.WithOutput(w)
	}
}

// ParseLevel maps a level name to a pion log level.
func ParseLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info", "":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}
	return logging.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
}
