package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Parse failure kinds. Every *ParseError unwraps to exactly one of these.
var (
	// ErrInput indicates empty or structurally unusable input.
	ErrInput = errors.New("invalid input")

	// ErrFormat indicates the input does not fit the recognizer grammar.
	ErrFormat = errors.New("invalid format")

	// ErrUnknownCurrency indicates a symbol, code or name that resolves to no catalog entry.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrMinorUnitMismatch indicates a minor unit that does not belong to the resolved currency.
	ErrMinorUnitMismatch = errors.New("minor unit mismatch")

	// ErrOverflow indicates a value above the maximum safe integer.
	ErrOverflow = errors.New("value overflow")
)

// ParseError describes why a strict parse rejected its input.
type ParseError struct {
	Kind  error
	Input string
	Msg   string
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind error, input string, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:  kind,
		Input: input,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// OverflowError carries the value that exceeded the safe integer bound.
type OverflowError struct {
	Value decimal.Decimal
	Limit decimal.Decimal
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("number %s exceeds maximum safe integer (%s)", e.Value.String(), e.Limit.String())
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// AppError pairs an error with the HTTP status code it should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
