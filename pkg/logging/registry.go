package logging

import (
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Registry routes uncaught panics to the loggers of interested
// components. Components register by name; a panic logged through the
// registry produces one entry per registered component, so each
// component's log carries the crash in its own context. With no
// registrations the panic is logged once through the base logger.
//
// Setup returns a registry wired to the logger it configured. There is
// no package-global registry: callers hold and pass it explicitly.
type Registry struct {
	mu    sync.Mutex
	base  zerolog.Logger
	names map[string]struct{}
}

// NewRegistry creates a registry that logs panics through logger.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{base: logger, names: make(map[string]struct{})}
}

// Register adds a component name to the fan-out set. Duplicate and
// empty names are ignored.
func (r *Registry) Register(name string) {
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[name] = struct{}{}
}

// Handlers returns the registered component names, sorted.
func (r *Registry) Handlers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LogPanic logs the panic value with its stack through every registered
// component logger, or through the base logger when none registered.
func (r *Registry) LogPanic(v interface{}, stack []byte) {
	names := r.Handlers()
	if len(names) == 0 {
		r.logPanicTo(r.base, v, stack)
		return
	}
	for _, name := range names {
		r.logPanicTo(r.base.With().Str("component", name).Logger(), v, stack)
	}
}

func (r *Registry) logPanicTo(logger zerolog.Logger, v interface{}, stack []byte) {
	logger.Error().
		Str("panic", fmt.Sprint(v)).
		Bytes("stack", stack).
		Msg("Uncaught panic")
}

// Recover logs a panic through the registry and re-raises it so the
// process still crashes with the original value. Use it as a deferred
// call at the top of main or a goroutine:
//
//	defer registry.Recover()
func (r *Registry) Recover() {
	if v := recover(); v != nil {
		r.LogPanic(v, debug.Stack())
		panic(v)
	}
}
