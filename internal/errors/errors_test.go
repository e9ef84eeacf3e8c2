package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeOutput,
				Message: "could not write output",
				Err:     nil,
			},
			expected: "output: could not write output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	assert.Equal(t, wrappedErr, appErr.Unwrap())
}

func TestAppError_Is(t *testing.T) {
	inputErr := NewInputError("one", nil)
	otherInputErr := NewInputError("two", nil)
	outputErr := NewOutputError("three", nil)

	assert.True(t, errors.Is(inputErr, otherInputErr), "same type should match")
	assert.False(t, errors.Is(inputErr, outputErr), "different types should not match")
	assert.False(t, errors.Is(inputErr, errors.New("plain")), "non-AppError should not match")
}

func TestAppError_WrapsSentinels(t *testing.T) {
	err := NewInputError("file is empty", ErrFileEmpty)
	assert.True(t, errors.Is(err, ErrFileEmpty))
	assert.False(t, errors.Is(err, ErrFileNotFound))
}

func TestTokenizeError(t *testing.T) {
	err := NewTokenizeError(17, ErrUnterminatedString)

	assert.Equal(t, 17, err.Offset)
	assert.True(t, errors.Is(err, ErrUnterminatedString))
	assert.Contains(t, err.Error(), "at byte 17")

	var tokErr *TokenizeError
	assert.True(t, errors.As(error(err), &tokErr))
}

func TestParseError(t *testing.T) {
	err := NewParseError(4, ErrUnexpectedToken)

	assert.Equal(t, 4, err.Token)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
	assert.Contains(t, err.Error(), "at token 4")

	var parseErr *ParseError
	assert.True(t, errors.As(error(err), &parseErr))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "tokenize error carries offset",
			err:      NewTokenizeError(3, ErrDanglingEscape),
			expected: "Tokenize error at byte 3: escape sequence is not completed before end of input",
		},
		{
			name:     "parse error carries token index",
			err:      NewParseError(2, ErrMalformedNumber),
			expected: "Parse error at token 2: malformed number literal",
		},
		{
			name:     "input app error",
			err:      NewInputError("bad path", nil),
			expected: "Input error: bad path",
		},
		{
			name:     "output app error",
			err:      NewOutputError("disk full", nil),
			expected: "Output error: disk full",
		},
		{
			name:     "serialize app error",
			err:      NewSerializeError("bad tree", nil),
			expected: "Serialization error: bad tree",
		},
		{
			name:     "empty input sentinel",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name:     "file not found sentinel",
			err:      ErrFileNotFound,
			expected: "Error: The specified file could not be found. Please check the file path.",
		},
		{
			name:     "wrong extension sentinel",
			err:      ErrNotJSONFile,
			expected: "Error: The input file must have a .json extension.",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
