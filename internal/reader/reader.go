// Released under an MIT license. See LICENSE.

// Package reader turns cclisp source text into expressions.
package reader

import (
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
	"github.com/redstar-bot/cclisp/internal/reader/escape"
	"github.com/redstar-bot/cclisp/internal/reader/lexer"
	"github.com/redstar-bot/cclisp/internal/reader/parser"
)

const label = "cclisp"

// Parse returns the expression for text. Several top-level forms are
// wrapped in a do form that evaluates them in order.
func Parse(text string) (cell.I, error) {
	return ParseNamed(label, text)
}

// ParseNamed is Parse with a label used in error locations.
func ParseNamed(name, text string) (cell.I, error) {
	all, err := ParseAllNamed(name, text)
	if err != nil {
		return nil, err
	}

	if len(all) == 1 {
		return all[0], nil
	}

	return list.New(append([]cell.I{sym.New("do")}, all...)...), nil
}

// ParseAll returns every top-level expression in text.
func ParseAll(text string) ([]cell.I, error) {
	return ParseAllNamed(label, text)
}

// ParseAllNamed is ParseAll with a label used in error locations.
func ParseAllNamed(name, text string) ([]cell.I, error) {
	tokens := lexer.New(name, escape.Escape(text)).Tokens()

	err := parser.Balance(tokens)
	if err != nil {
		return nil, err
	}

	return parser.New(tokens).All()
}
