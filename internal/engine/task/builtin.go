// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
)

// Builtin is a primitive procedure implemented in Go. Its arguments are
// evaluated before it is called. It panics on failure.
type Builtin struct {
	Fn    func(args cell.I, e *env.T) cell.I
	Label string
}

// NewBuiltin creates a builtin named label.
func NewBuiltin(label string, fn func(args cell.I) cell.I) *Builtin {
	return &Builtin{
		Fn: func(args cell.I, _ *env.T) cell.I {
			return fn(args)
		},
		Label: label,
	}
}

// NewHigherOrder creates a builtin named label that also receives the env
// it is called from. Builtins that call procedures need it.
func NewHigherOrder(label string, fn func(args cell.I, e *env.T) cell.I) *Builtin {
	return &Builtin{Fn: fn, Label: label}
}

// The builtin type is a cell.

// Equal returns true if the cell c is the same builtin as b.
func (b *Builtin) Equal(c cell.I) bool {
	o, ok := c.(*Builtin)

	return ok && o == b
}

// Name returns the name of the builtin type.
func (b *Builtin) Name() string {
	return "builtin"
}

// String returns a short description of the builtin b.
func (b *Builtin) String() string {
	return "<builtin " + b.Label + ">"
}

// Methods specific to builtin.

// Apply calls the builtin with args from the env e.
func (b *Builtin) Apply(args cell.I, e *env.T) cell.I {
	return b.Fn(args, e)
}
