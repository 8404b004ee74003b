package common

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ErrorCode uint

// ErrorType is a kind of error, identified by its name and code. Values
// derived from it by New and Newf keep the same kind, so
// xerrors.Is(err, SomeError) matches regardless of message or cause.
type ErrorType struct {
	name    string
	code    ErrorCode
	message string
	err     error
	frame   xerrors.Frame
}

func NewErrorType(name string, code ErrorCode, message string) ErrorType {
	return ErrorType{name: name, code: code, message: message}
}

func (e ErrorType) Name() string {
	return e.name
}

func (e ErrorType) Kind() ErrorCode {
	return e.code
}

func (e ErrorType) Code() string {
	return fmt.Sprintf("%s-%d", e.name, e.code)
}

func (e ErrorType) Message() string {
	return e.message
}

// New wraps err; the wrapped error is reachable by xerrors.Unwrap.
func (e ErrorType) New(err error) ErrorType {
	return ErrorType{
		name:    e.name,
		code:    e.code,
		message: e.message,
		err:     err,
		frame:   xerrors.Caller(1),
	}
}

func (e ErrorType) Newf(format string, args ...interface{}) ErrorType {
	return ErrorType{
		name:    e.name,
		code:    e.code,
		message: fmt.Sprintf("%s; %s", e.message, fmt.Sprintf(format, args...)),
		err:     e.err,
		frame:   xerrors.Caller(1),
	}
}

func (e ErrorType) Unwrap() error {
	return e.err
}

func (e ErrorType) Is(target error) bool {
	switch t := target.(type) {
	case ErrorType:
		return e.name == t.name && e.code == t.code
	case *ErrorType:
		return t != nil && e.name == t.name && e.code == t.code
	default:
		return false
	}
}

func (e ErrorType) Error() string {
	if e.err == nil {
		return fmt.Sprintf("[%s] %s", e.Code(), e.message)
	}

	return fmt.Sprintf("[%s] %s: %s", e.Code(), e.message, e.err.Error())
}

func (e ErrorType) Format(s fmt.State, v rune) {
	xerrors.FormatError(e, s, v)
}

func (e ErrorType) FormatError(p xerrors.Printer) error {
	p.Printf("[%s] %s", e.Code(), e.message)
	e.frame.Format(p)

	return e.err
}

func (e ErrorType) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"code":    e.Code(),
		"message": e.message,
	}
	if e.err != nil {
		m["error"] = e.err.Error()
	}

	return EncodeJSON(m, false, false)
}
