// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for cclisp.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/engine"
	"github.com/redstar-bot/cclisp/internal/engine/task"
	"github.com/redstar-bot/cclisp/internal/reader"
	"github.com/redstar-bot/cclisp/internal/reader/parser"
	"github.com/redstar-bot/cclisp/internal/system/history"
)

// Incomplete returns true if err means more lines are needed to finish
// the program.
func Incomplete(err error) bool {
	return errors.Is(err, parser.ErrMissingClose) || errors.Is(err, parser.ErrUnterminated)
}

// Run reads programs from the terminal and evaluates them in e until the
// user ends input. Line history is kept in the file at path.
func Run(e *env.T, path string, stdout io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(true)

	if path != "" {
		if err := history.Load(path, cli.ReadHistory); err != nil {
			slog.Warn("cannot read history", "path", path, "error", err)
		}
	}

	text := ""

	for {
		prompt := "> "
		if text != "" {
			prompt = ". "
		}

		line, err := cli.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			text = ""

			continue
		}

		if err != nil {
			fmt.Fprintln(stdout)

			break
		}

		text += line + "\n"

		c, err := reader.Parse(text)
		if Incomplete(err) {
			continue
		}

		entry := strings.TrimSpace(text)
		text = ""

		if errors.Is(err, parser.ErrUnexpectedEOF) {
			continue
		}

		cli.AppendHistory(entry)

		Print(stdout, e, c, err)
	}

	if path == "" {
		return nil
	}

	return history.Save(path, cli.WriteHistory)
}

// Print evaluates c in e and writes what it printed and its value to w.
// If err is not nil it is written instead. Each evaluation gets the whole
// of e's budget.
func Print(w io.Writer, e *env.T, c cell.I, err error) {
	if err != nil {
		fmt.Fprintln(w, err.Error())

		return
	}

	e.Restart()

	v, err := engine.Evaluate(c, e)

	if r := e.Lookup("output"); r != nil {
		if out := task.Display(r.Get()); out != "" {
			fmt.Fprint(w, out)
			e.Assign("output", str.New(""))
		}
	}

	if err != nil {
		fmt.Fprintln(w, err.Error())

		return
	}

	if v != pair.Null {
		fmt.Fprintln(w, task.Display(v))
	}
}
