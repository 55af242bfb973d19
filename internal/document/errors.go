package document

import (
	"errors"
	"fmt"
)

// Error categories. Callers match them with errors.Is; the message carried
// by the wrapped error is surfaced to the client verbatim. ErrDependency is
// part of the client-facing taxonomy but currently has no producer: every
// rendering capability is compiled in.
var (
	ErrValidation  = errors.New("validation error")
	ErrData        = errors.New("data error")
	ErrDependency  = errors.New("dependency error")
	ErrEnvironment = errors.New("environment error")
)

// ErrNoPayrollData is raised when a document requires a positive net total
// and the period has none. The message is the one printed on rejections.
var ErrNoPayrollData = dataError("Aucune donnée de paie pour cette période")

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

func validationf(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func dataError(msg string) error {
	return &kindError{kind: ErrData, msg: msg}
}

func environmentf(format string, args ...any) error {
	return &kindError{kind: ErrEnvironment, msg: fmt.Sprintf(format, args...)}
}
