package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	// Tokenizer failures.
	ErrUnterminatedString = errors.New("string literal is not terminated before end of input")
	ErrDanglingEscape     = errors.New("escape sequence is not completed before end of input")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
	ErrUnterminatedEscape = errors.New("whitespace inside an escape sequence")
	ErrControlInString    = errors.New("unescaped control character inside string literal")

	// Parser failures.
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrMalformedNumber  = errors.New("malformed number literal")
	ErrNumberOutOfRange = errors.New("number is out of range for a double-precision float")
	ErrTrailingTokens   = errors.New("trailing content after the top-level value")

	// Input handling failures (owned by the host, not the core).
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrNoInput         = errors.New("no input provided: please supply a JSON file path")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrNotJSONFile     = errors.New("file does not have a .json extension")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeTokenize  ErrorType = "tokenize"
	ErrorTypeParse     ErrorType = "parse"
	ErrorTypeSerialize ErrorType = "serialize"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// TokenizeError is a tokenizer failure at a specific byte offset in the input.
// It wraps one of the tokenizer sentinel errors.
type TokenizeError struct {
	Offset int
	Err    error
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tokenize: at byte %d: %v", e.Offset, e.Err)
}

func (e *TokenizeError) Unwrap() error {
	return e.Err
}

// NewTokenizeError creates a tokenizer error at a byte offset
func NewTokenizeError(offset int, err error) *TokenizeError {
	return &TokenizeError{Offset: offset, Err: err}
}

// ParseError is a parser failure at a specific index into the token sequence.
// It wraps one of the parser sentinel errors.
type ParseError struct {
	Token int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: at token %d: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a parser error at a token index
func NewParseError(token int, err error) *ParseError {
	return &ParseError{Token: token, Err: err}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewSerializeError creates a new error related to serialization
func NewSerializeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSerialize,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var tokErr *TokenizeError
	if errors.As(err, &tokErr) {
		return fmt.Sprintf("Tokenize error at byte %d: %v", tokErr.Offset, tokErr.Err)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Parse error at token %d: %v", parseErr.Token, parseErr.Err)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeSerialize:
			return fmt.Sprintf("Serialization error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please supply one JSON file path."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNotJSONFile) {
		return "Error: The input file must have a .json extension."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
