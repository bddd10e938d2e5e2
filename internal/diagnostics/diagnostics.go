/*
File    : monkeymix/internal/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics is the interpreter's logging facade. It wraps the
// standard library's log.Logger behind a four-level filter instead of
// pulling in a third-party structured-logging library: nothing in the
// retrieval pack this interpreter was grounded on imports one (the one
// repo that logs at all, wudi-hey's FastCGI pool manager, uses plain
// "log" too), so there is no corpus precedent to follow off the
// standard library here. See DESIGN.md for the full justification.
//
// Logging here is strictly observational: nothing in lexer, parser, or
// evaluator branches on whether a log call happened.
package diagnostics

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level orders the four verbosities this package supports, least to most
// severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ParseLevel maps an environment-variable-style level name to a Level,
// defaulting to LevelWarn for an empty or unrecognised value.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger is a single leveled wrapper around *log.Logger. One is shared
// by the whole process (see Default), following the teacher's use of one
// package-level color.Color set per semantic meaning in repl/repl.go.
type Logger struct {
	mu     sync.Mutex
	level  Level
	target *log.Logger
}

// New builds a Logger writing to w, filtering anything below level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		level:  level,
		target: log.New(w, "", log.LstdFlags),
	}
}

// SetLevel changes the minimum level that will be emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) logf(level Level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.target.Printf("["+level.String()+"] "+format, args...)
}

func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(LevelTrace, format, args) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(LevelDebug, format, args) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logf(LevelWarn, format, args) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(LevelError, format, args) }

var (
	defaultOnce sync.Once
	defaultLog  *Logger
)

// EnvLevelVar is the environment variable the CLI and Default both read
// to pick the default log level.
const EnvLevelVar = "MONKEYMIX_LOG_LEVEL"

// Default returns the process-wide Logger, writing to stderr at the
// level named by MONKEYMIX_LOG_LEVEL (LevelWarn if unset or
// unrecognised). It is created once and reused, the way the teacher's
// REPL builds its color.Color values exactly once at package scope.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLog = New(os.Stderr, ParseLevel(os.Getenv(EnvLevelVar)))
	})
	return defaultLog
}
