package api

import (
	"sync"

	"github.com/ananya/practiq/internal/engine"
)

// Registry hands out one engine per student. Engines are created lazily and
// live for the process lifetime; each one enforces its own single active
// session.
type Registry struct {
	newEngine func(studentID string) *engine.Engine

	mu      sync.Mutex
	engines map[string]*engine.Engine
}

// NewRegistry creates a Registry around an engine factory.
func NewRegistry(factory func(studentID string) *engine.Engine) *Registry {
	return &Registry{
		newEngine: factory,
		engines:   make(map[string]*engine.Engine),
	}
}

// ForStudent returns the student's engine, creating it on first use.
func (r *Registry) ForStudent(studentID string) *engine.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.engines[studentID]
	if !ok {
		e = r.newEngine(studentID)
		r.engines[studentID] = e
	}
	return e
}
