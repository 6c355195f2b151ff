// Released under an MIT license. See LICENSE.

// Package task provides the evaluator for cclisp expressions.
//
// Eval walks an expression tree recursively. Failures are raised as panics
// and every form re-raises them as an *Error tagged with its head. Callers
// outside this package should use Catch (or engine.Evaluate) to turn a
// failure back into an error.
package task

import (
	"strconv"
	"strings"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/interface/literal"
	"github.com/redstar-bot/cclisp/internal/common/interface/reference"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
)

// Eval evaluates the expression c in the env e.
func Eval(c cell.I, e *env.T) cell.I {
	if e.Expired() {
		panic(&Error{Cause: ErrTimeout})
	}

	switch {
	case sym.Is(c):
		return resolve(sym.To(c).String(), e)
	case str.Is(c):
		// Strings produced at runtime name variables, as symbols do.
		return resolve(str.To(c).String(), e)
	case !pair.Is(c) || c == pair.Null:
		return c
	}

	return form(c, e)
}

// Call applies the procedure or builtin f to the already evaluated args.
// The body of a procedure runs on the clock of the caller env e.
func Call(f, args cell.I, e *env.T) cell.I {
	switch f := f.(type) {
	case *Builtin:
		return f.Apply(args, e)
	case *Procedure:
		return f.Apply(args, e)
	}

	panic(f.Name() + " is not callable")
}

// IsCallable returns true if c can be passed to Call.
func IsCallable(c cell.I) bool {
	switch c.(type) {
	case *Builtin, *Procedure:
		return true
	}

	return false
}

// Index returns the element of the list or string c at position i.
// Negative positions count backwards from the end.
func Index(c cell.I, i int64) cell.I {
	switch {
	case pair.Is(c):
		return list.Get(c, i)
	case str.Is(c):
		r := []rune(str.To(c).String())

		n := int64(len(r))
		if i < 0 {
			i += n
		}

		if i < 0 || i >= n {
			panic("string index out of range")
		}

		return str.New(string(r[i]))
	}

	panic(c.Name() + " is not subscriptable")
}

func form(c cell.I, e *env.T) cell.I {
	head := pair.Car(c)

	defer func() {
		r := recover()
		if r != nil {
			panic(tag(label(head), r))
		}
	}()

	if sym.Is(head) {
		if f, ok := syntax[sym.To(head).String()]; ok {
			return f(pair.Cdr(c), e)
		}
	}

	f := Eval(head, e)

	if n := label(head); sym.Is(head) && strings.HasPrefix(n, "make-") && !IsCallable(f) {
		return construct(n, integer.Value(f), pair.Cdr(c), e)
	}

	return Call(f, evalArgs(pair.Cdr(c), e), e)
}

// construct binds a name to a new struct value after checking that the
// number of values matches the arity marker bound to the constructor.
func construct(n string, arity int64, args cell.I, e *env.T) cell.I {
	if args == pair.Null {
		panic(n + " requires a name")
	}

	k := name(pair.Car(args))
	v := evalArgs(pair.Cdr(args), e)

	if given := list.Length(v); given != arity {
		panic(n + " requires " + strconv.FormatInt(arity, 10) +
			" values, given " + strconv.FormatInt(given, 10))
	}

	e.Define(k, v)

	return pair.Null
}

func evalArgs(args cell.I, e *env.T) cell.I {
	v := []cell.I{}

	for ; args != pair.Null; args = pair.Cdr(args) {
		v = append(v, Eval(pair.Car(args), e))
	}

	return list.New(v...)
}

func label(c cell.I) string {
	if sym.Is(c) {
		return sym.To(c).String()
	}

	return literal.String(c)
}

// name returns the variable name that c spells.
func name(c cell.I) string {
	switch {
	case sym.Is(c):
		return sym.To(c).String()
	case str.Is(c):
		return str.To(c).String()
	}

	panic(literal.String(c) + " is not a valid name")
}

// path splits a name with :index suffixes and evaluates each index.
// Integer literals are positions. Anything else is evaluated as a name.
func path(s string, e *env.T) (string, []int64) {
	parts := strings.Split(s, ":")

	indexes := make([]int64, 0, len(parts)-1)

	for _, p := range parts[1:] {
		if digits := strings.TrimPrefix(p, "-"); digits != "" && strings.Trim(digits, "0123456789") == "" {
			i, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				panic("index " + p + " is too large")
			}

			indexes = append(indexes, i)

			continue
		}

		indexes = append(indexes, integer.Value(resolve(p, e)))
	}

	return parts[0], indexes
}

func resolve(s string, e *env.T) cell.I {
	if !strings.Contains(s, ":") {
		return lookup(s, e).Get()
	}

	k, indexes := path(s, e)

	c := lookup(k, e).Get()
	for _, i := range indexes {
		c = Index(c, i)
	}

	return c
}

func lookup(k string, e *env.T) reference.I {
	r := e.Lookup(k)
	if r == nil {
		panic("undefined var " + k)
	}

	return r
}
