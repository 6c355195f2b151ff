// Released under an MIT license. See LICENSE.

package task

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	err := &Error{Head: []string{"a", "b"}, Cause: errors.New("boom")}

	if s := err.Error(); s != "(a): (b): boom" {
		t.Fatalf("Expected (a): (b): boom; got %q", s)
	}
}

func TestErrorTruncation(t *testing.T) {
	head := make([]string, 400)
	for i := range head {
		head[i] = "abcdefgh"
	}

	s := (&Error{Head: head, Cause: errors.New("boom")}).Error()

	if len(s) > maxMessage+100 {
		t.Fatalf("Expected a truncated message; got %d characters", len(s))
	}

	if !strings.HasPrefix(s, "(abcdefgh): ") || !strings.HasSuffix(s, "(abcdefgh): boom") {
		t.Fatalf("Expected outer and innermost clauses; got %q", s)
	}

	if !strings.Contains(s, "...") {
		t.Fatalf("Expected an ellipsis; got %q", s)
	}
}

func TestTagKeepsCause(t *testing.T) {
	inner := tag("car", "index out of range")
	outer := tag("+", inner)

	if len(outer.Head) != 2 || outer.Head[0] != "+" {
		t.Fatalf("Expected heads [+ car]; got %v", outer.Head)
	}

	if !errors.Is(tag("while", &Error{Cause: ErrTimeout}), ErrTimeout) {
		t.Fatal("Expected the timeout to survive tagging")
	}
}

func TestCatch(t *testing.T) {
	if err := Catch(func() {}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err := Catch(func() { panic("bad") })
	if err == nil || err.Error() != "bad" {
		t.Fatalf("Expected bad; got %v", err)
	}
}
