package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Rules-layer failures wrap exactly one of these so callers can
// classify with errors.Is while the message keeps the offending id.
var (
	ErrMissing   = errors.New("required value missing")
	ErrBlank     = errors.New("required value blank")
	ErrNotFound  = errors.New("not found")
	ErrExists    = errors.New("already exists")
	ErrConflict  = errors.New("conflict")
	ErrMalformed = errors.New("malformed value")
)

// RuleError carries a user-facing message and unwraps to its kind.
type RuleError struct {
	kind error
	msg  string
}

func (e *RuleError) Error() string { return e.msg }
func (e *RuleError) Unwrap() error { return e.kind }

func Missingf(format string, args ...any) error {
	return &RuleError{kind: ErrMissing, msg: fmt.Sprintf(format, args...)}
}

func Blankf(format string, args ...any) error {
	return &RuleError{kind: ErrBlank, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &RuleError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Existsf(format string, args ...any) error {
	return &RuleError{kind: ErrExists, msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &RuleError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func Malformedf(format string, args ...any) error {
	return &RuleError{kind: ErrMalformed, msg: fmt.Sprintf(format, args...)}
}
