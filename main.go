// Released under an MIT license. See LICENSE.

/*
Cclisp runs the small Lisp used by chat-bot custom commands.

A program is a sequence of forms. For example,

    (define greet (lambda (name) (f "Hello, " name "!")))
    (greet (args 0))

replies with a greeting for the first word after the command.

With no program and a terminal on stdin, cclisp starts a REPL.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/engine/boot"
	"github.com/redstar-bot/cclisp/internal/session"
	"github.com/redstar-bot/cclisp/internal/system/config"
	"github.com/redstar-bot/cclisp/internal/system/options"
	"github.com/redstar-bot/cclisp/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := options.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return 2 //nolint:gomnd
	}

	level := slog.LevelInfo
	if options.Debug() {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg, err := config.Load(options.Config())
	if err != nil {
		log.Error("cannot load settings", "error", err)

		return 1
	}

	budget := cfg.Budget()
	if b, ok := options.Budget(); ok {
		budget = b
	}

	locale := cfg.Locale
	if options.Locale() != "" {
		locale = options.Locale()
	}

	if options.Interactive() {
		e := boot.Standard(overrides(cfg), boot.Budget(budget), boot.Locale(locale))

		if err := ui.Run(e, cfg.History, os.Stdout); err != nil {
			log.Error("cannot save history", "error", err)

			return 1
		}

		return 0
	}

	source, name, err := program()
	if err != nil {
		log.Error("cannot read program", "error", err)

		return 1
	}

	s := session.New(log, budget, boot.Locale(locale))

	r := s.Run(session.Invocation{
		Command:   name,
		Source:    source,
		ArgString: strings.Join(options.Args(), " "),
		Identity:  cfg.Identity,
	})

	if r.Reply != "" {
		fmt.Println(r.Reply)
	}

	if r.Err != nil {
		return 1
	}

	return 0
}

func overrides(cfg *config.T) map[string]cell.I {
	m := map[string]cell.I{}

	for k, v := range cfg.Identity {
		m[k] = str.New(v)
	}

	words := []cell.I{}
	for _, a := range options.Args() {
		words = append(words, str.New(a))
	}

	m["args"] = list.New(words...)
	m["argstring"] = str.New(strings.Join(options.Args(), " "))

	return m
}

func program() (string, string, error) {
	if c := options.Command(); c != "" {
		return c, "-c", nil
	}

	if path := options.Script(); path != "" {
		b, err := os.ReadFile(path)

		return string(b), path, err
	}

	b, err := io.ReadAll(os.Stdin)

	return string(b), "stdin", err
}
