package parser

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against a *ParseError.
var (
	ErrEmptyInput              = errors.New("empty command")
	ErrInvalidCommand          = errors.New("invalid command")
	ErrInvalidValue            = errors.New("invalid value")
	ErrInvalidCoordinates      = errors.New("invalid coordinates")
	ErrUnknownEnumerationValue = errors.New("unknown enumeration value")
	ErrUnknownTemplate         = errors.New("unknown template")
	ErrInvalidFilename         = errors.New("invalid filename")
)

// ErrorKind distinguishes the ways a statement can be rejected.
type ErrorKind int

const (
	EmptyInput ErrorKind = iota
	InvalidCommand
	InvalidValue
	InvalidCoordinates
	UnknownEnumerationValue
	UnknownTemplate
	InvalidFilename
)

var kindSentinels = map[ErrorKind]error{
	EmptyInput:              ErrEmptyInput,
	InvalidCommand:          ErrInvalidCommand,
	InvalidValue:            ErrInvalidValue,
	InvalidCoordinates:      ErrInvalidCoordinates,
	UnknownEnumerationValue: ErrUnknownEnumerationValue,
	UnknownTemplate:         ErrUnknownTemplate,
	InvalidFilename:         ErrInvalidFilename,
}

func (k ErrorKind) String() string {
	if s, ok := kindSentinels[k]; ok {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the single error type returned by the interpreter. Text is
// the offending statement (or line, for EmptyInput) exactly as received.
type ParseError struct {
	Kind   ErrorKind
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Text)
	}
	return fmt.Sprintf("%s: %s: %q", e.Kind, e.Reason, e.Text)
}

// Unwrap exposes the kind's sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	return kindSentinels[e.Kind]
}

func newError(kind ErrorKind, text, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Text: text, Reason: fmt.Sprintf(format, args...)}
}
