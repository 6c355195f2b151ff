// Released under an MIT license. See LICENSE.

package compare_test

import (
	"testing"

	"github.com/redstar-bot/cclisp/internal/common/compare"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
)

func TestCmp(t *testing.T) {
	if compare.Cmp(num.Int(1), num.Float(1.5)) != -1 {
		t.Fatal("Expected 1 < 1.5")
	}

	if compare.Cmp(str.New("b"), sym.New("a")) != 1 {
		t.Fatal("Expected b > a")
	}

	if compare.Cmp(boolean.True, num.Int(1)) != 0 {
		t.Fatal("Expected true to compare equal to 1")
	}

	short := list.New(num.Int(1), num.Int(2))
	long := list.New(num.Int(1), num.Int(2), num.Int(0))

	if compare.Cmp(short, long) != -1 {
		t.Fatal("Expected a prefix to sort first")
	}
}

func TestCmpMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r != "cannot compare int with string" {
			t.Fatalf("Expected a comparison error; got %v", r)
		}
	}()

	compare.Cmp(num.Int(1), str.New("a"))
}

func TestEqual(t *testing.T) {
	if !compare.Equal(str.New("a"), sym.New("a")) {
		t.Fatal("Expected a string to equal a symbol with the same text")
	}

	if !compare.Equal(boolean.False, num.Int(0)) {
		t.Fatal("Expected false to equal 0")
	}

	if compare.Equal(str.New("1"), num.Int(1)) {
		t.Fatal("Expected a string not to equal a number")
	}
}

func TestContains(t *testing.T) {
	if !compare.Contains(list.New(num.Int(1), str.New("x")), sym.New("x")) {
		t.Fatal("Expected x to be found in the list")
	}

	if !compare.Contains(str.New("hello"), str.New("ell")) {
		t.Fatal("Expected ell to be found in hello")
	}

	if compare.Contains(list.New(), num.Int(1)) {
		t.Fatal("Expected nothing to be found in an empty list")
	}
}
