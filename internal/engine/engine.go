// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed cclisp code.
package engine

import (
	"errors"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/engine/task"
	"github.com/redstar-bot/cclisp/internal/reader"
)

// Evaluate evaluates the expression c in the env e. Failures are returned
// as a *task.Error.
func Evaluate(c cell.I, e *env.T) (cell.I, error) {
	var result cell.I

	err := task.Catch(func() {
		result = task.Eval(c, e)
	})
	if err != nil {
		var te *task.Error
		if !errors.As(err, &te) {
			err = &task.Error{Cause: err}
		}

		return nil, err
	}

	return result, nil
}

// Run parses text and evaluates it in the env e. Parse failures are
// returned as a *parser.SyntaxError.
func Run(text string, e *env.T) (cell.I, error) {
	c, err := reader.Parse(text)
	if err != nil {
		return nil, err
	}

	return Evaluate(c, e)
}
