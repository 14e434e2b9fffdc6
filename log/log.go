// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package log is the small leveled logger credcrypt's config loader and CLI
// log through: four levels (off, error, info, debug) gating calls through
// to Go's standard log package. It exists so those two call sites don't
// reach for fmt.Println directly and so a binary embedding credcrypt can
// raise or lower its verbosity with a single -log flag.
package log

import (
	"flag"
	"fmt"
	golog "log"
	"os"
	"sync/atomic"
)

// A Level is a log verbosity level. Increasing levels decrease in priority
// and increase in verbosity: logging at level L outputs every message with
// level M <= L.
type Level int

const (
	// Off never outputs messages.
	Off = Level(-3)
	// Error outputs error messages.
	Error = Level(-2)
	// Info outputs informational messages. This is the default level.
	Info = Level(0)
	// Debug outputs messages intended for debugging and development, not
	// for regular users.
	Debug = Level(1)
)

// String returns the flag-file spelling of l ("off", "error", "info",
// "debug"), or "level(n)" for a level outside that set.
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

var current = Info

// At reports whether the logger is currently logging at level.
func At(level Level) bool {
	return level <= current
}

// Printf formats a message in the manner of fmt.Sprintf and outputs it at l
// if the logger is currently logging at that level.
func (l Level) Printf(format string, v ...interface{}) {
	if At(l) {
		golog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Print formats a message in the manner of fmt.Sprint and outputs it at l
// if the logger is currently logging at that level.
func (l Level) Print(v ...interface{}) {
	if At(l) {
		golog.Output(2, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Sprintf and outputs it at
// the Info level.
func Printf(format string, v ...interface{}) {
	if At(Info) {
		golog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Print formats a message in the manner of fmt.Sprint and outputs it at
// the Info level.
func Print(v ...interface{}) {
	if At(Info) {
		golog.Output(2, fmt.Sprint(v...))
	}
}

// Fatal formats a message in the manner of fmt.Sprint, outputs it at the
// Error level, and then calls os.Exit(1).
func Fatal(v ...interface{}) {
	if At(Error) {
		golog.Output(2, fmt.Sprint(v...))
	}
	os.Exit(1)
}

// Fatalf formats a message in the manner of fmt.Sprintf, outputs it at the
// Error level, and then calls os.Exit(1).
func Fatalf(format string, v ...interface{}) {
	if At(Error) {
		golog.Output(2, fmt.Sprintf(format, v...))
	}
	os.Exit(1)
}

var addFlagsCalled int32

// AddFlags registers a -log flag (off, error, info, debug) on
// flag.CommandLine that sets the package's current level. It must be
// called before flag.Parse, and is intended to be called at most once,
// near the start of main.
func AddFlags() {
	if !atomic.CompareAndSwapInt32(&addFlagsCalled, 0, 1) {
		Error.Print("log.AddFlags: called twice")
		return
	}
	flag.Var(new(levelFlag), "log", "set log level (off, error, info, debug)")
}

type levelFlag struct{}

func (levelFlag) String() string { return current.String() }

func (levelFlag) Set(s string) error {
	switch s {
	case "off":
		current = Off
	case "error":
		current = Error
	case "info":
		current = Info
	case "debug":
		current = Debug
	default:
		return fmt.Errorf("invalid log level %q", s)
	}
	return nil
}

// Get implements flag.Getter.
func (levelFlag) Get() interface{} { return current }
