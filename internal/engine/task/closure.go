// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/literal"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
)

// Procedure is a user-defined routine. It closes over the env where the
// lambda form that created it was evaluated.
type Procedure struct {
	Body   cell.I   // Body of the routine.
	Params []string // Param labels.
	Scope  *env.T   // Env where the routine was created.
}

// NewProcedure creates a procedure from a param list and a body.
func NewProcedure(params, body cell.I, scope *env.T) *Procedure {
	if !pair.Is(params) {
		panic("lambda params must be a list, not " + params.Name())
	}

	labels := []string{}

	for _, p := range list.Slice(params) {
		if !sym.Is(p) {
			panic("lambda param " + literal.String(p) + " is not a name")
		}

		labels = append(labels, sym.To(p).String())
	}

	return &Procedure{Body: body, Params: labels, Scope: scope}
}

// The procedure type is a cell.

// Equal returns true if the cell c is the same procedure as p.
func (p *Procedure) Equal(c cell.I) bool {
	o, ok := c.(*Procedure)

	return ok && o == p
}

// Name returns the name of the procedure type.
func (p *Procedure) Name() string {
	return "procedure"
}

// String returns a short description of the procedure p.
func (p *Procedure) String() string {
	return fmt.Sprintf("<procedure %v>", p.Params)
}

// Methods specific to procedure.

// Apply binds args to the procedure's params in a new env enclosed by its
// scope and evaluates the body there, on the clock of the caller env.
func (p *Procedure) Apply(args cell.I, caller *env.T) cell.I {
	v := list.Slice(args)
	if len(v) != len(p.Params) {
		panic(fmt.Sprintf("procedure expects %d arguments, given %d", len(p.Params), len(v)))
	}

	e := env.Frame(p.Scope, caller)

	for i, label := range p.Params {
		e.Define(label, v[i])
	}

	return Eval(p.Body, e)
}
