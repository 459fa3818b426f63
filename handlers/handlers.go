// Package handlers routes buffer allocation and diagnostic output through a
// process-wide, injectable handler set.
//
// Embedding applications (database extensions, services with pooled
// allocators, custom logging sinks) install their own set once at startup
// with Install; standalone programs keep the defaults, which allocate from
// the Go heap and log through gookit/slog. Every owned container allocation
// and every diagnostic message in this module goes through the installed set.
//
// Diagnostic handlers are observability only: they never signal errors, and
// no code path depends on them being called.
package handlers

import (
	"sync/atomic"

	"github.com/gookit/slog"
)

// MessageFunc consumes one printf-style diagnostic message.
type MessageFunc func(format string, args ...any)

// AllocFunc returns a zeroed buffer of the given length.
type AllocFunc func(size int) []byte

// ReallocFunc returns a buffer of the given length carrying the contents of
// buf. It may return buf itself when capacity allows.
type ReallocFunc func(buf []byte, size int) []byte

// Handlers is the injectable handler set. Zero-valued fields are replaced
// with the corresponding default on Install.
type Handlers struct {
	Alloc   AllocFunc
	Realloc ReallocFunc
	Error   MessageFunc
	Info    MessageFunc
	Warn    MessageFunc
}

var current atomic.Pointer[Handlers]

func init() {
	InstallDefaults()
}

// Defaults returns the standalone handler set: Go heap allocation and
// gookit/slog diagnostics.
func Defaults() Handlers {
	return Handlers{
		Alloc: func(size int) []byte {
			return make([]byte, size)
		},
		Realloc: func(buf []byte, size int) []byte {
			if size <= cap(buf) {
				return buf[:size]
			}
			grown := make([]byte, size)
			copy(grown, buf)

			return grown
		},
		Error: slog.Errorf,
		Info:  slog.Infof,
		Warn:  slog.Warnf,
	}
}

// Install publishes h as the process-wide handler set. Nil fields fall back
// to the defaults, so callers may override only the handlers they care about.
// Install is safe for concurrent use, but the usual pattern is a single call
// at process start before any containers are built.
func Install(h Handlers) {
	def := Defaults()
	if h.Alloc == nil {
		h.Alloc = def.Alloc
	}
	if h.Realloc == nil {
		h.Realloc = def.Realloc
	}
	if h.Error == nil {
		h.Error = def.Error
	}
	if h.Info == nil {
		h.Info = def.Info
	}
	if h.Warn == nil {
		h.Warn = def.Warn
	}
	current.Store(&h)
}

// InstallDefaults restores the standalone handler set.
func InstallDefaults() {
	def := Defaults()
	current.Store(&def)
}

// Current returns the installed handler set.
func Current() *Handlers {
	return current.Load()
}

// Alloc allocates a zeroed buffer through the installed allocator.
func Alloc(size int) []byte {
	return Current().Alloc(size)
}

// Realloc resizes buf through the installed reallocator.
func Realloc(buf []byte, size int) []byte {
	return Current().Realloc(buf, size)
}

// Errorf emits an error-level diagnostic through the installed handler.
func Errorf(format string, args ...any) {
	Current().Error(format, args...)
}

// Infof emits an info-level diagnostic through the installed handler.
func Infof(format string, args ...any) {
	Current().Info(format, args...)
}

// Warnf emits a warning-level diagnostic through the installed handler.
func Warnf(format string, args ...any) {
	Current().Warn(format, args...)
}
