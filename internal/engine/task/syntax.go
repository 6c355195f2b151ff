// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/compare"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/interface/truth"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/errsys"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// Syntax is a special form. Its arguments are passed unevaluated.
type Syntax func(args cell.I, e *env.T) cell.I

//nolint:gochecknoglobals
var syntax map[string]Syntax

func init() { //nolint:gochecknoinits
	syntax = map[string]Syntax{
		":=":           assign,
		">>":           access,
		"append":       appendForm,
		"arg-count":    argCount,
		"args":         arguments,
		"check-expect": checkExpect,
		"check-within": checkWithin,
		"def":          define,
		"define":       define,
		"if":           conditional,
		"lambda":       lambda,
		"member?":      member,
		"print":        printLine,
		"quote":        quote,
		"struct":       structure,
		"try":          try,
		"unquote":      unquote,
		"while":        loop,
	}
}

// IsSyntax returns true if s names a special form.
func IsSyntax(s string) bool {
	_, ok := syntax[s]

	return ok
}

// Display returns the text of c as print and str show it.
func Display(c cell.I) string {
	if s, ok := c.(common.Stringer); ok {
		return s.String()
	}

	return "<" + c.Name() + ">"
}

// (>> method target arg... ":key" value...)
func access(args cell.I, e *env.T) cell.I {
	validate.Variadic(args, 2, 2)

	a := evalArgs(args, e)

	m := pair.Car(a)
	if !str.Is(m) && !sym.Is(m) {
		panic("method name must be a string, not " + m.Name())
	}

	positional, opts := Options(pair.Cddr(a))

	return Invoke(e, common.String(m), pair.Cadr(a), positional, opts)
}

// (args), (args n), (args *), (args n m), (args * m), (args n *)
func arguments(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 0, 2)

	if len(v) == 0 {
		return lookup("argstring", e).Get()
	}

	all := lookup("args", e).Get()

	star := func(c cell.I) bool {
		return sym.Is(c) && sym.To(c).String() == "*"
	}

	bound := func(c cell.I) *int64 {
		if star(c) {
			return nil
		}

		i := integer.Value(c)

		return &i
	}

	if len(v) == 1 {
		if star(v[0]) {
			return all
		}

		return pair.Car(list.Tail(all, integer.Value(v[0]), pair.Null))
	}

	return list.Sub(all, bound(v[0]), bound(v[1]))
}

// (append target item) calls the append procedure. A target that names
// the empty list is rebound to the list append returns.
func appendForm(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	target := Eval(v[0], e)
	item := Eval(v[1], e)

	result := Call(lookup("append", e).Get(), list.New(target, item), e)

	if target == pair.Null && result != pair.Null && pair.Is(result) &&
		(sym.Is(v[0]) || str.Is(v[0])) {
		store(name(v[0]), result, e)
	}

	return result
}

// (arg-count) is the number of arguments the command was given.
func argCount(args cell.I, e *env.T) cell.I {
	validate.Fixed(args, 0, 0)

	return num.Int(list.Length(lookup("args", e).Get()))
}

// (:= name value) or (:= name:i:j value)
func assign(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	store(name(v[0]), Eval(v[1], e), e)

	return pair.Null
}

// store rebinds the name s, or the list element the path s names, to value.
func store(s string, value cell.I, e *env.T) {
	if !strings.Contains(s, ":") {
		if !e.Assign(s, value) {
			panic("undefined var " + s)
		}

		return
	}

	k, indexes := path(s, e)

	c := lookup(k, e).Get()

	last := len(indexes) - 1
	for _, i := range indexes[:last] {
		c = Index(c, i)
	}

	if !pair.Is(c) {
		panic(c.Name() + " does not support item assignment")
	}

	list.Set(c, indexes[last], value)
}

// (check-expect actual expected)
func checkExpect(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(compare.Equal(Eval(v[0], e), Eval(v[1], e)))
}

// (check-within value lower upper)
func checkWithin(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 3, 3)

	x := Eval(v[0], e)
	lower := Eval(v[1], e)
	upper := Eval(v[2], e)

	return boolean.Bool(compare.Cmp(x, upper) <= 0 && compare.Cmp(x, lower) >= 0)
}

// (if test consequent alternative)
func conditional(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 3, 3)

	if truth.Value(Eval(v[0], e)) {
		return Eval(v[1], e)
	}

	return Eval(v[2], e)
}

// (define name value)
func define(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	e.Define(name(v[0]), Eval(v[1], e))

	return pair.Null
}

// (lambda (params...) body)
func lambda(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	return NewProcedure(v[0], v[1], e)
}

// (while test body...)
func loop(args cell.I, e *env.T) cell.I {
	v, body := validate.Variadic(args, 1, 1)

	for truth.Value(Eval(v[0], e)) {
		for b := body; b != pair.Null; b = pair.Cdr(b) {
			Eval(pair.Car(b), e)
		}
	}

	return pair.Null
}

// (member? value collection)
func member(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	item := Eval(v[0], e)

	return boolean.Bool(compare.Contains(Eval(v[1], e), item))
}

// (print value...)
func printLine(args cell.I, e *env.T) cell.I {
	words := []string{}

	for _, c := range list.Slice(evalArgs(args, e)) {
		words = append(words, Display(c))
	}

	prior := common.String(lookup("output", e).Get())
	e.Assign("output", str.New(prior+strings.Join(words, " ")+"\n"))

	return pair.Null
}

// (quote expression)
func quote(args cell.I, _ *env.T) cell.I {
	return validate.Fixed(args, 1, 1)[0]
}

// (struct name (fields...))
func structure(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	n := name(v[0])
	fields := list.Slice(pair.To(v[1]))
	arity := int64(len(fields))

	for i, f := range fields {
		e.Define(n+"-"+name(f)+"-pos", num.Int(int64(i)))
	}

	e.Define(n+"-pos", NewBuiltin(n+"-pos", func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		return Index(v[0], integer.Value(v[1]))
	}))

	e.Define(n+"?", NewBuiltin(n+"?", func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return boolean.Bool(pair.Is(v[0]) && list.Length(v[0]) == arity)
	}))

	e.Define("make-"+n, num.Int(arity))

	return pair.Null
}

// (try body) or (try body fallback)
func try(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 1, 2)

	var c cell.I

	err := Catch(func() {
		c = Eval(v[0], e)
	})
	if err == nil {
		return c
	}

	if len(v) == 2 {
		return Eval(v[1], e)
	}

	return errsys.New(err)
}

// (unquote expression)
func unquote(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 1, 1)

	return Eval(Eval(v[0], e), e)
}
