// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for cclisp.
package parser

import (
	"errors"
	"strings"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/struct/loc"
	"github.com/redstar-bot/cclisp/internal/common/struct/token"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
	"github.com/redstar-bot/cclisp/internal/reader/escape"
)

// Parse errors.
var (
	ErrMissingClose    = errors.New("missing closing bracket")
	ErrMissingOpen     = errors.New("missing opening bracket")
	ErrUnexpectedClose = errors.New("unexpected )")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnterminated    = errors.New("unterminated string")
)

// SyntaxError is returned for text that cannot be parsed.
type SyntaxError struct {
	Loc *loc.T
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Loc == nil {
		return e.Err.Error()
	}

	return e.Loc.String() + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// T holds the state of the parser.
type T struct {
	index  int        // Position of the next unread token.
	tokens []*token.T // Tokens being parsed.
}

// New creates a new parser over the tokens.
func New(tokens []*token.T) *T {
	return &T{tokens: tokens}
}

// Balance checks that brackets in the token stream are balanced.
func Balance(tokens []*token.T) error {
	depth := 0

	var last *token.T

	for _, t := range tokens {
		switch t.Class() {
		case '(':
			depth++
			last = t
		case ')':
			depth--
			if depth < 0 {
				return &SyntaxError{Loc: t.Source(), Err: ErrMissingOpen}
			}
		case token.Error:
			return &SyntaxError{Loc: t.Source(), Err: ErrUnterminated}
		}
	}

	if depth > 0 {
		return &SyntaxError{Loc: last.Source(), Err: ErrMissingClose}
	}

	return nil
}

// Done returns true if every token has been consumed.
func (p *T) Done() bool {
	return p.index >= len(p.tokens)
}

// Read consumes and returns the next expression.
// It returns nil if the next token produces no expression.
func (p *T) Read() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*SyntaxError)
		if !ok {
			panic(r)
		}

		c = nil
		err = e
	}()

	return p.expression(), nil
}

// All consumes every token and returns each non-empty top-level expression.
func (p *T) All() ([]cell.I, error) {
	all := []cell.I{}

	for !p.Done() {
		c, err := p.Read()
		if err != nil {
			return nil, err
		}

		if c != nil {
			all = append(all, c)
		}
	}

	if len(all) == 0 {
		return nil, &SyntaxError{Err: ErrUnexpectedEOF}
	}

	return all, nil
}

func (p *T) consume() *token.T {
	t := p.peek()
	p.index++

	return t
}

func (p *T) fail(t *token.T, err error) {
	var source *loc.T
	if t != nil {
		source = t.Source()
	} else if n := len(p.tokens); n > 0 {
		source = p.tokens[n-1].Source()
	}

	panic(&SyntaxError{Loc: source, Err: err})
}

func (p *T) peek() *token.T {
	if p.Done() {
		p.fail(nil, ErrUnexpectedEOF)
	}

	return p.tokens[p.index]
}

// T state functions.

// <expression> ::= DoubleQuoted | '(' <expression>* ')' | Atom .
func (p *T) expression() cell.I {
	t := p.consume()

	switch t.Class() {
	case token.DoubleQuoted:
		return quoted(t)
	case '(':
		return p.form()
	case ')':
		p.fail(t, ErrUnexpectedClose)
	case token.Error:
		p.fail(t, ErrUnterminated)
	}

	return atom(escape.Unescape(t.Value()))
}

func (p *T) form() cell.I {
	elements := []cell.I{}

	for !p.peek().Is(')') {
		e := p.expression()
		if e != nil {
			elements = append(elements, e)
		}
	}

	p.consume()

	return list.New(elements...)
}

// atom converts a bare token to an integer, float, boolean or symbol.
// It returns nil for a token that is only whitespace.
func atom(s string) cell.I {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if n, ok := num.Parse(s); ok {
		return n
	}

	if b, ok := boolean.Parse(s); ok {
		return b
	}

	return sym.New(strings.ToLower(s))
}

func quoted(t *token.T) cell.I {
	v := t.Value()

	return list.New(sym.New("quote"), str.New(escape.Restore(v[1:len(v)-1])))
}
