// Released under an MIT license. See LICENSE.

package session_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/redstar-bot/cclisp/internal/engine/task"
	"github.com/redstar-bot/cclisp/internal/reader/parser"
	"github.com/redstar-bot/cclisp/internal/session"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func reply(t *testing.T, s *session.T, inv session.Invocation) string {
	t.Helper()

	r := s.Run(inv)
	if r.Err != nil {
		t.Fatalf("Unexpected error running %q: %v", inv.Source, r.Err)
	}

	return r.Reply
}

func TestArguments(t *testing.T) {
	s := session.New(quiet(), 0)

	inv := session.Invocation{Source: "(args 1)", ArgString: "foo  bar baz"}
	if got := reply(t, s, inv); got != "bar" {
		t.Fatalf("Expected bar; got %q", got)
	}

	inv.Source = "(args)"
	if got := reply(t, s, inv); got != "foo  bar baz" {
		t.Fatalf("Expected the raw argument string; got %q", got)
	}

	inv.Source = "(arg-count)"
	if got := reply(t, s, inv); got != "3" {
		t.Fatalf("Expected 3; got %q", got)
	}
}

func TestAppendToEmptyList(t *testing.T) {
	s := session.New(quiet(), 0)

	inv := session.Invocation{Source: `(define out (list)) (append out "x") (append out "y") out`}
	if got := reply(t, s, inv); got != "(x y)" {
		t.Fatalf("Expected (x y); got %q", got)
	}
}

func TestIdentity(t *testing.T) {
	s := session.New(quiet(), 0)

	inv := session.Invocation{
		Source:   `(+ "hi " username)`,
		Identity: map[string]string{"username": "ann"},
	}

	if got := reply(t, s, inv); got != "hi ann" {
		t.Fatalf("Expected hi ann; got %q", got)
	}
}

func TestPrintedOutput(t *testing.T) {
	s := session.New(quiet(), 0)

	got := reply(t, s, session.Invocation{Source: `(print "hi") (print "there" 2)`})
	if got != "hi\nthere 2" {
		t.Fatalf("Expected the printed lines; got %q", got)
	}
}

func TestNothingToSay(t *testing.T) {
	s := session.New(quiet(), 0)

	if got := reply(t, s, session.Invocation{Source: "(define a 1)"}); got != "" {
		t.Fatalf("Expected no reply; got %q", got)
	}
}

func TestScratchVariables(t *testing.T) {
	s := session.New(quiet(), 0)

	got := reply(t, s, session.Invocation{Source: `(setvar "Count" 5) (getvar "count")`})
	if got != "5" {
		t.Fatalf("Expected 5; got %q", got)
	}

	r := s.Run(session.Invocation{Source: `(getvar "count")`})
	if r.Err == nil || !strings.Contains(r.Reply, "No such variable count.") {
		t.Fatalf("Expected scratch variables not to outlive the run; got %q", r.Reply)
	}
}

func TestRootIsShared(t *testing.T) {
	s := session.New(quiet(), 0)

	if got := reply(t, s, session.Invocation{Source: "(:= pi 3) pi"}); got != "3" {
		t.Fatalf("Expected 3; got %q", got)
	}

	if got := reply(t, s, session.Invocation{Source: "(> pi 3)"}); got != "true" {
		t.Fatalf("Expected the root pi to be unchanged; got %q", got)
	}

	reply(t, s, session.Invocation{Source: "(define z 1)"})

	r := s.Run(session.Invocation{Source: "z"})
	if r.Err == nil || !strings.Contains(r.Reply, "undefined var z") {
		t.Fatalf("Expected definitions not to outlive the run; got %q", r.Reply)
	}
}

func TestSyntaxError(t *testing.T) {
	s := session.New(quiet(), 0)

	r := s.Run(session.Invocation{Source: "(+ 1"})

	var se *parser.SyntaxError
	if !errors.As(r.Err, &se) {
		t.Fatalf("Expected a SyntaxError; got %v", r.Err)
	}

	if !strings.HasPrefix(r.Reply, "**WARNING: Author made syntax error: ") {
		t.Fatalf("Expected a syntax error reply; got %q", r.Reply)
	}
}

func TestEvaluationError(t *testing.T) {
	s := session.New(quiet(), 0)

	r := s.Run(session.Invocation{Source: "(+ 1 (car ()))"})
	want := "**WARNING: Author made syntax error: (+): (car): index out of range**"

	if r.Reply != want {
		t.Fatalf("Expected %q; got %q", want, r.Reply)
	}
}

func TestTimeout(t *testing.T) {
	s := session.New(quiet(), 10*time.Millisecond)

	r := s.Run(session.Invocation{Source: "(while true (pass))"})
	if !errors.Is(r.Err, task.ErrTimeout) {
		t.Fatalf("Expected %v; got %v", task.ErrTimeout, r.Err)
	}

	if !strings.Contains(r.Reply, "command ran too long") {
		t.Fatalf("Expected a timeout reply; got %q", r.Reply)
	}

	if got := reply(t, s, session.Invocation{Source: "(+ 1 1)"}); got != "2" {
		t.Fatalf("Expected each run to get a fresh budget; got %q", got)
	}
}

func TestReply(t *testing.T) {
	if _, ok := session.Reply(errors.New("disk full")); ok {
		t.Fatal("Expected other errors to be left to the caller")
	}

	msg, ok := session.Reply(&task.Error{Head: []string{"car"}, Cause: errors.New("boom")})
	if !ok || msg != "**WARNING: Author made syntax error: (car): boom**" {
		t.Fatalf("Expected a user-facing reply; got %q", msg)
	}
}
