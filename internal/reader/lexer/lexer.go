// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for cclisp.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// The lexer expects text that has already been passed through escape.Escape.
// It does not track nesting. That is the parser's job.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/redstar-bot/cclisp/internal/common/struct/loc"
	"github.com/redstar-bot/cclisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	state action // Current action.

	source loc.T
	start  loc.T // Location of the current token's first rune.

	tokens []*token.T
}

// New creates a new T for the text. Label can be a file name or other identifier.
func New(label, text string) *T {
	l := &T{
		bytes: text,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		runes: 1,
	}

	l.state = skipSpace

	return l
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil when the text is exhausted.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens scans the remaining text and returns every token.
func (l *T) Tokens() []*token.T {
	all := []*token.T{}

	for t := l.Token(); t != nil; t = l.Token() {
		all = append(all, t)
	}

	return all
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.source.Char = l.runes
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.start

	l.tokens = append(l.tokens, token.New(c, v, &source))
	l.skip()
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emit(token.Atom, l.Text())

			return nil
		case '"', '(', ')':
			l.emit(token.Atom, l.Text())

			return skipSpace
		}

		if unicode.IsSpace(rune(r)) {
			l.emit(token.Atom, l.Text())

			return skipSpace
		}

		l.accept(r, w)
	}
}

func scanDoubleQuoted(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emit(token.Error, "unterminated string")

			return nil
		case '"':
			l.accept(r, w)
			l.emit(token.DoubleQuoted, l.Text())

			return skipSpace
		}

		l.accept(r, w)
	}
}

func skipSpace(l *T) action {
	for {
		l.skip()

		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '(', ')':
			l.accept(r, w)
			l.emit(r, l.Text())

			continue
		case '"':
			l.accept(r, w)

			return scanDoubleQuoted
		}

		if unicode.IsSpace(rune(r)) {
			l.accept(r, w)

			continue
		}

		return scanAtom
	}
}
