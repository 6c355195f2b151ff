// Released under an MIT license. See LICENSE.

// Package commands provides the primitive procedures, constants and
// methods of the standard cclisp environment.
package commands

import (
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
)

// Functions returns a mapping of names to primitive procedures.
func Functions() map[string]func(cell.I) cell.I {
	m := map[string]func(cell.I) cell.I{
		"#":          index,
		"%":          mod,
		"*":          mul,
		"+":          add,
		"-":          sub,
		"/":          div,
		"//":         floorDiv,
		"!=":         ne,
		"<":          lt,
		"<=":         le,
		"<>":         xor,
		"==":         eq,
		">":          gt,
		">=":         ge,
		"2l":         toList,
		"abs":        abs,
		"append":     appendItem,
		"assert":     assert,
		"bool":       makeBoolean,
		"boolean?":   isBoolean,
		"car":        car,
		"cdr":        cdr,
		"choice":     choice,
		"cons":       cons,
		"do":         do,
		"ezchoice":   ezchoice,
		"f":          concatenate,
		"float":      float,
		"in":         in,
		"int":        integerOf,
		"is":         is,
		"l":          makeList,
		"len":        lengthOf,
		"list":       makeList,
		"list?":      isList,
		"match?":     match,
		"max":        maximum,
		"min":        minimum,
		"not":        not,
		"null?":      isNull,
		"number?":    isNumber,
		"pass":       pass,
		"procedure?": isProcedure,
		"randint":    randint,
		"range":      makeRange,
		"refindall":  refindall,
		"rematch":    rematch,
		"repr":       repr,
		"resub":      resub,
		"reverse":    reverse,
		"round":      round,
		"sort":       sorted,
		"str":        stringify,
		"string?":    isString,
		"sum":        sum,
		"symbol":     makeSymbol,
		"symbol?":    isSymbol,
		"time":       seconds,
		"tolist":     toList,
		"transcode":  transcode,
		"unescape":   unescape,
		"uuid":       makeUUID,
		"zip":        zip,
	}

	for k, v := range MathFunctions() {
		m[k] = v
	}

	return m
}

// HigherOrder returns a mapping of names to primitive procedures that call
// other procedures. They receive the env they are called from.
func HigherOrder() map[string]func(cell.I, *env.T) cell.I {
	return map[string]func(cell.I, *env.T) cell.I{
		"apply":  apply,
		"filter": filter,
		"map":    mapping,
		"reduce": reduce,
	}
}
