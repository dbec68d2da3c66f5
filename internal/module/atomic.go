package module

import (
	"log"
	"sync/atomic"
)

// AtomicModule holds a *Module behind an atomic pointer swap, for hot
// reload: a background reparse builds a new Module off to the side and
// publishes it with one Store, so readers never observe a half-built tree
// and never block behind a writer (spec.md §5).
type AtomicModule struct {
	ptr atomic.Pointer[Module]
}

// NewAtomicModule wraps an initial Module.
func NewAtomicModule(m *Module) *AtomicModule {
	a := &AtomicModule{}
	a.ptr.Store(m)
	return a
}

// Load returns the currently published Module.
func (a *AtomicModule) Load() *Module { return a.ptr.Load() }

// Store publishes a newly built Module, replacing whatever was published
// before. Callers typically call this after a successful Build from a
// freshly re-parsed source.
func (a *AtomicModule) Store(m *Module) {
	prev := a.ptr.Swap(m)
	if prev != nil {
		log.Printf("anvil: reloaded module %q (source %q)", m.Namespace(), m.Source())
	}
}
