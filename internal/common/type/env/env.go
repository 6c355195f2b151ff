// Released under an MIT license. See LICENSE.

// Package env provides cclisp's environment type.
package env

import (
	"time"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/reference"
	"github.com/redstar-bot/cclisp/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and links to the enclosing env.
// The link is fixed at creation.
type T struct {
	*public
	attached *hash.T
	clock    *clock
	previous *T
	sealed   bool
}

type env = T

// We alias hash.T to public so that when embedded it is easy to refer to
// it by name. Embedding public also lets us access its methods directly.
type public = hash.T

// The clock is shared by a root env and every env created beneath it.
type clock struct {
	budget  time.Duration
	started time.Time
}

// New creates a new env enclosed by previous. It shares previous's clock.
func New(previous *T) *T {
	e := &env{
		previous: previous,
		public:   hash.New(),
	}

	if previous != nil {
		e.clock = previous.clock
	}

	return e
}

// Frame creates a new env enclosed by scope that runs on caller's clock.
func Frame(scope, caller *T) *T {
	e := New(scope)

	if caller != nil {
		e.clock = caller.clock
	}

	return e
}

// Root creates a new env enclosed by previous with its own clock.
// A budget of zero means the env, and every env beneath it, never expires.
func Root(previous *T, budget time.Duration) *T {
	e := New(previous)

	e.clock = &clock{budget: budget, started: time.Now()}

	return e
}

// Assign rebinds the name k to v where k is defined and returns false if
// k is not defined. A name bound in a sealed env is instead shadowed by a
// new binding in the env just beneath the sealed one.
func (e *env) Assign(k string, v cell.I) bool {
	f := e.Find(k)
	if f == nil {
		return false
	}

	if !f.sealed || f == e {
		f.Get(k).Set(v)

		return true
	}

	t := e
	for t.previous != f {
		t = t.previous
	}

	t.Define(k, v)

	return true
}

// Attach stores v under k on the env e. Attached values are not names and
// are only seen by Attached. Attach e before sharing it.
func (e *env) Attach(k string, v cell.I) {
	if e.attached == nil {
		e.attached = hash.New()
	}

	e.attached.Set(k, v)
}

// Attached returns the values stored under k on e and its enclosing envs,
// innermost first.
func (e *env) Attached(k string) []cell.I {
	found := []cell.I{}

	for ; e != nil; e = e.previous {
		if e.attached == nil {
			continue
		}

		if r := e.attached.Get(k); r != nil {
			found = append(found, r.Get())
		}
	}

	return found
}

// Budget returns the maximum runtime for the env e and when it started.
func (e *env) Budget() (time.Duration, time.Time) {
	if e.clock == nil {
		return 0, time.Time{}
	}

	return e.clock.budget, e.clock.started
}

// Define associates the name k with the cell v in the env e.
// Enclosing envs are not consulted.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Enclosing returns the enclosing env.
func (e *env) Enclosing() *T {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Expired returns true if the env's clock has run longer than its budget.
func (e *env) Expired() bool {
	c := e.clock
	if c == nil || c.budget <= 0 {
		return false
	}

	return time.Since(c.started) > c.budget
}

// Find returns the innermost env, starting at e, where the name k is
// defined, or nil.
func (e *env) Find(k string) *T {
	for ; e != nil; e = e.previous {
		if e.Get(k) != nil {
			return e
		}
	}

	return nil
}

// Lookup retrieves the reference associated with the name k in the env e.
func (e *env) Lookup(k string) reference.I {
	if f := e.Find(k); f != nil {
		return f.Get(k)
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Public returns the hash for the env e.
func (e *env) Public() *hash.T {
	return e.public
}

// Remove deletes the name k from the innermost env where it is defined.
func (e *env) Remove(k string) bool {
	if f := e.Find(k); f != nil {
		return f.Del(k)
	}

	return false
}

// Restart resets the clock shared by e and the envs beneath its root.
func (e *env) Restart() {
	if e.clock != nil {
		e.clock.started = time.Now()
	}
}

// Seal marks the env e so that Assign never changes its bindings from a
// nested env.
func (e *env) Seal() {
	e.sealed = true
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)
}
