package cpu

import (
	"fmt"
	"strings"
)

// ParseError reports input a parser could not turn into a record.
type ParseError struct {
	// LineNo is 1-based. Zero means the error concerns the whole text.
	LineNo int
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("cpu: line %d: %s: %q", e.LineNo, e.Reason, e.Line)
	}
	return fmt.Sprintf("cpu: %s: %q", e.Reason, e.Line)
}

func parseErrorf(lineNo int, line, format string, args ...any) *ParseError {
	return &ParseError{LineNo: lineNo, Line: line, Reason: fmt.Sprintf(format, args...)}
}

// CommandError reports an external command that failed or printed nothing.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q", e.Command)
	switch {
	case e.Err != nil:
		msg += fmt.Sprintf(" failed (exit %d): %v", e.ExitCode, e.Err)
	default:
		msg += " produced no output"
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
