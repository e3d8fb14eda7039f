package errors

import (
	"fmt"
	"net/http"

	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
)

// Error carries a dotted trace path for logs, an i18n message key for
// the client and an http status code for the response envelope.
type Error struct {
	trace string
	key   string
	code  int
	raw   error
}

func New(trace, key string, raw error) *Error {
	return &Error{
		trace: trace,
		key:   key,
		code:  http.StatusInternalServerError,
		raw:   raw,
	}
}

// Trace prepends trace to an already classified error. Unclassified
// errors are treated as internal.
func Trace(trace string, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return &Error{
			trace: trace + "." + e.trace,
			key:   e.key,
			code:  e.code,
			raw:   e.raw,
		}
	}
	return New(trace, i18n.ERROR_INTERNAL, err)
}

func (e *Error) Code(code int) *Error {
	e.code = code
	return e
}

func (e *Error) StatusCode() int {
	return e.code
}

func (e *Error) Key() string {
	return e.key
}

func (e *Error) Unwrap() error {
	return e.raw
}

func (e *Error) Error() string {
	if e.raw == nil {
		return fmt.Sprintf("%s: %s", e.trace, e.key)
	}
	return fmt.Sprintf("%s: %s: %s", e.trace, e.key, e.raw.Error())
}
