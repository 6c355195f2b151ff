// Released under an MIT license. See LICENSE.

package task

import (
	"errors"
	"fmt"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/type/errsys"
)

// ErrTimeout is the cause of an Error raised once a root env's budget is spent.
var ErrTimeout = errors.New("command ran too long")

// Messages longer than this keep only their innermost clause.
const maxMessage = 1500

// Error is an evaluation failure. Head holds the head of each form the
// failure passed through, outermost first.
type Error struct {
	Head  []string
	Cause error
}

// Error renders the failure as "(h1): (h2): cause". When the text below a
// head grows past maxMessage it is replaced by "..." and the innermost clause.
func (e *Error) Error() string {
	s := e.Cause.Error()

	n := len(e.Head)
	if n == 0 {
		return s
	}

	innermost := "(" + e.Head[n-1] + "): " + s

	for i := n - 1; i >= 0; i-- {
		if i < n-1 && len(s) > maxMessage {
			s = "..." + innermost
		}

		s = "(" + e.Head[i] + "): " + s
	}

	return s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Catch calls fn and converts any panic into an error.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = failure(r)
		}
	}()

	fn()

	return nil
}

func failure(r interface{}) error {
	switch r := r.(type) {
	case *Error:
		return r
	case *errsys.T:
		return r.Err()
	case error:
		return r
	case string:
		return errors.New(r)
	case common.Stringer:
		return errors.New(r.String())
	}

	return fmt.Errorf("unexpected error: %v", r)
}

// tag prefixes the failure r with the head of the form it passed through.
func tag(head string, r interface{}) *Error {
	err := failure(r)

	if e, ok := err.(*Error); ok {
		return &Error{Head: append([]string{head}, e.Head...), Cause: e.Cause}
	}

	return &Error{Head: []string{head}, Cause: err}
}
