// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"testing"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
	"github.com/redstar-bot/cclisp/internal/reader/escape"
	"github.com/redstar-bot/cclisp/internal/reader/lexer"
)

func read(t *testing.T, s string) cell.I {
	t.Helper()

	tokens := lexer.New("test", escape.Escape(s)).Tokens()
	if err := Balance(tokens); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c, err := New(tokens).Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return c
}

func TestAtomBoolean(t *testing.T) {
	for _, s := range []string{"true", "Yes", "ON", "enable"} {
		if c := atom(s); c != boolean.True {
			t.Fatalf("Expected true for %q; got %v", s, c)
		}
	}

	for _, s := range []string{"false", "No", "off", "disabled"} {
		if c := atom(s); c != boolean.False {
			t.Fatalf("Expected false for %q; got %v", s, c)
		}
	}
}

func TestAtomNumber(t *testing.T) {
	if c := atom("42"); !num.Is(c) || c.Name() != "int" || !c.Equal(num.Int(42)) {
		t.Fatalf("Expected int 42; got %v", c)
	}

	if c := atom("-2.5"); !num.Is(c) || c.Name() != "float" || !c.Equal(num.Float(-2.5)) {
		t.Fatalf("Expected float -2.5; got %v", c)
	}

	big := "123456789012345678901234567890"
	if c := atom(big); !num.Is(c) || c.(*num.T).String() != big {
		t.Fatalf("Expected %s; got %v", big, c)
	}
}

func TestAtomSymbol(t *testing.T) {
	if c := atom("  FooBar\t"); !sym.New("foobar").Equal(c) {
		t.Fatalf("Expected symbol foobar; got %v", c)
	}

	if c := atom(" \t "); c != nil {
		t.Fatalf("Expected nothing; got %v", c)
	}
}

func TestBalance(t *testing.T) {
	err := Balance(lexer.New("test", "(a (b)").Tokens())
	if !errors.Is(err, ErrMissingClose) {
		t.Fatalf("Expected %v; got %v", ErrMissingClose, err)
	}

	err = Balance(lexer.New("test", "(a) b)").Tokens())
	if !errors.Is(err, ErrMissingOpen) {
		t.Fatalf("Expected %v; got %v", ErrMissingOpen, err)
	}

	if err = Balance(lexer.New("test", `(a ")" (b))`).Tokens()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestEmptyForm(t *testing.T) {
	if c := read(t, "()"); c != pair.Null {
		t.Fatalf("Expected (); got %v", c)
	}
}

func TestQuotedString(t *testing.T) {
	c := read(t, `"Keep CASE \"and\" quotes"`)

	e := list.New(sym.New("quote"), str.New(`Keep CASE "and" quotes`))
	if !c.Equal(e) {
		t.Fatalf("Expected %v; got %v", e, c)
	}
}

func TestReadCursor(t *testing.T) {
	p := New(lexer.New("test", "(a b) c").Tokens())

	first, err := p.Read()
	if err != nil || list.Length(first) != 2 {
		t.Fatalf("Expected (a b); got %v (%v)", first, err)
	}

	if p.Done() {
		t.Fatal("Expected a second expression")
	}

	second, err := p.Read()
	if err != nil || !sym.New("c").Equal(second) {
		t.Fatalf("Expected c; got %v (%v)", second, err)
	}

	if !p.Done() {
		t.Fatal("Expected every token to be consumed")
	}

	_, err = p.Read()
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("Expected %v; got %v", ErrUnexpectedEOF, err)
	}
}

func TestUnexpectedClose(t *testing.T) {
	_, err := New(lexer.New("test", ")").Tokens()).Read()
	if !errors.Is(err, ErrUnexpectedClose) {
		t.Fatalf("Expected %v; got %v", ErrUnexpectedClose, err)
	}
}

func TestAtomKeepsBackslash(t *testing.T) {
	c := read(t, `a\nb`)
	if !sym.New(`a\nb`).Equal(c) {
		t.Fatalf(`Expected symbol a\nb; got %v`, c)
	}
}
