// Released under an MIT license. See LICENSE.

// Package session runs custom-command programs on behalf of an embedding
// bot. Each run gets its own scope beneath a shared, sealed root env.
package session

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/struct/hash"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/engine"
	"github.com/redstar-bot/cclisp/internal/engine/boot"
	"github.com/redstar-bot/cclisp/internal/engine/task"
	"github.com/redstar-bot/cclisp/internal/reader/parser"
)

// Failed is the reply when a program fails for a reason other than its
// own mistakes.
const Failed = "**WARNING: An error occurred while running the custom command.**"

// Invocation describes one run of a custom command.
type Invocation struct {
	Command   string            // Name of the command, for logs.
	Source    string            // Program text.
	ArgString string            // Raw text following the command name.
	Identity  map[string]string // Values for username, authornick, etc.
}

// Result is the outcome of a run.
type Result struct {
	Reply string // Text to send back. Empty when there is nothing to say.
	Err   error  // The failure, if the program failed.
}

// T (session) runs programs against a shared standard env.
type T struct {
	budget time.Duration
	log    *slog.Logger
	root   *env.T
}

// New creates a session. Each run may take at most budget; zero is unlimited.
func New(log *slog.Logger, budget time.Duration, opts ...boot.Option) *T {
	if log == nil {
		log = slog.Default()
	}

	root := boot.Standard(nil, opts...)
	root.Seal()

	return &T{budget: budget, log: log, root: root}
}

// Run evaluates the program in inv and returns the reply for the user.
// Scratch variables set by the program do not outlive the run.
func (s *T) Run(inv Invocation) Result {
	started := time.Now()

	e := s.scope(inv)

	v, err := engine.Run(inv.Source, e)

	log := s.log.With("command", inv.Command, "elapsed", time.Since(started))

	if err != nil {
		if reply, ok := Reply(err); ok {
			log.Debug("custom command failed", "error", err)

			return Result{Reply: reply, Err: err}
		}

		log.Error("exception occurred in custom command", "error", err)

		return Result{Reply: Failed, Err: err}
	}

	reply := Text(v, e)
	if reply == "" {
		log.Warn("custom command returns nothing")
	} else {
		log.Debug("custom command ran", "length", len(reply))
	}

	return Result{Reply: reply}
}

// Reply converts a parse or evaluation failure into the text shown to
// the command's user. It returns false for any other kind of error.
func Reply(err error) (string, bool) {
	var se *parser.SyntaxError
	var te *task.Error

	if !errors.As(err, &se) && !errors.As(err, &te) {
		return "", false
	}

	msg := err.Error()
	if msg == "" {
		msg = "Syntax error."
	}

	return "**WARNING: Author made syntax error: " + msg + "**", true
}

// Text returns the reply for the value v returned by a program run in e.
// When v has no text, whatever the program printed is used instead.
func Text(v cell.I, e *env.T) string {
	if v != nil && v != pair.Null {
		if s := task.Display(v); s != "" {
			return s
		}
	}

	if r := e.Lookup("output"); r != nil {
		return strings.TrimSuffix(task.Display(r.Get()), "\n")
	}

	return ""
}

func (s *T) scope(inv Invocation) *env.T {
	e := env.Root(s.root, s.budget)

	words := []cell.I{}
	for _, w := range strings.Fields(inv.ArgString) {
		words = append(words, str.New(w))
	}

	e.Define("argstring", str.New(inv.ArgString))
	e.Define("args", list.New(words...))
	e.Define("output", str.New(""))

	for k, v := range inv.Identity {
		e.Define(k, str.New(v))
	}

	for k, v := range boot.Scratchpad(hash.New()) {
		e.Define(k, v)
	}

	return e
}
