// Package errors defines the errors puzzle solvers and the runner report.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a PuzzleError.
type ErrorCode string

const (
	ErrMalformedLine  ErrorCode = "MALFORMED_LINE"
	ErrMissingInput   ErrorCode = "MISSING_INPUT"
	ErrAnswerMismatch ErrorCode = "ANSWER_MISMATCH"
	ErrUnknownDay     ErrorCode = "UNKNOWN_DAY"
)

// PuzzleError is an error with a code, a message and optional details.
type PuzzleError struct {
	Code    ErrorCode
	Message string
	Details map[string]any

	err error // wrapped cause, if any
}

// Error implements the error interface.
func (e *PuzzleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PuzzleError) Unwrap() error {
	return e.err
}

// MalformedLine reports a line that does not match the grammar of a day.
func MalformedLine(day, lineNo int, line string) *PuzzleError {
	return &PuzzleError{
		Code:    ErrMalformedLine,
		Message: fmt.Sprintf("day %d: line %d is malformed: %q", day, lineNo, line),
		Details: map[string]any{"day": day, "line": lineNo, "text": line},
	}
}

// MissingInput reports that the input for a day could not be read.
func MissingInput(path string, err error) *PuzzleError {
	return &PuzzleError{
		Code:    ErrMissingInput,
		Message: fmt.Sprintf("reading %s: %v", path, err),
		Details: map[string]any{"path": path},
		err:     err,
	}
}

// AnswerMismatch reports that the named puzzle produced the wrong answer.
func AnswerMismatch(puzzle string, got, want any) *PuzzleError {
	return &PuzzleError{
		Code:    ErrAnswerMismatch,
		Message: fmt.Sprintf("%s answer is incorrect: got %v, want %v", puzzle, got, want),
		Details: map[string]any{"puzzle": puzzle, "got": fmt.Sprint(got), "want": fmt.Sprint(want)},
	}
}

// UnknownDay reports a day (or part) with no solver.
func UnknownDay(day int, part string) *PuzzleError {
	msg := fmt.Sprintf("no solver for day %d", day)
	if part != "" {
		msg = fmt.Sprintf("no solver for day %d part %s", day, part)
	}
	return &PuzzleError{
		Code:    ErrUnknownDay,
		Message: msg,
		Details: map[string]any{"day": day, "part": part},
	}
}

// Is reports whether err, or any error it wraps, is a PuzzleError with code.
func Is(err error, code ErrorCode) bool {
	var pErr *PuzzleError
	if errors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}
