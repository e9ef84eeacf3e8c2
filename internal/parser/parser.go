// Package parser builds a value tree from JSON text by recursive descent
// over the tokenizer's output. One procedure per grammar production, all
// consuming tokens through a shared forward-only cursor.
//
// Every failure is fatal for the whole parse: no partial tree is ever
// returned, and the input is never retried.
package parser

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/endrebjorgo/json-parser/internal/errors"
	"github.com/endrebjorgo/json-parser/internal/models"
	"github.com/endrebjorgo/json-parser/internal/tokenizer"
)

// Parse tokenizes data and parses the token sequence into a value tree.
// Errors are *errors.TokenizeError or *errors.ParseError; on success the
// returned tree holds no reference back into data.
func Parse(data []byte) (models.Value, error) {
	tokens, err := tokenizer.Tokenize(data)
	if err != nil {
		return models.Value{}, err
	}

	c := &cursor{tokens: tokens}
	v, err := parseValue(c)
	if err != nil {
		return models.Value{}, err
	}
	if c.pos != len(c.tokens) {
		return models.Value{}, errors.NewParseError(c.pos, errors.ErrTrailingTokens)
	}
	return v, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse([]byte(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(data)
}

// parseValue dispatches on the current token and advances past it before
// recursing into the matching production.
func parseValue(c *cursor) (models.Value, error) {
	tok, err := c.next()
	if err != nil {
		return models.Value{}, err
	}

	switch tok {
	case "{":
		return parseObject(c)
	case "[":
		return parseArray(c)
	case `"`:
		return parseString(c)
	case "true":
		return models.Boolean(true), nil
	case "false":
		return models.Boolean(false), nil
	case "null":
		return models.Null(), nil
	case "}", "]", ":", ",":
		return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrUnexpectedToken)
	default:
		return parseNumber(c, tok)
	}
}

// parseObject reads `"key" : value` entries separated by commas until the
// closing brace. The opening brace has already been consumed. Duplicate keys
// overwrite: last write wins.
func parseObject(c *cursor) (models.Value, error) {
	members := make(map[string]models.Value)

	if tok, ok := c.peek(); ok && tok == "}" {
		c.pos++
		return models.Object(members), nil
	}

	for {
		if err := c.expect(`"`); err != nil {
			return models.Value{}, err
		}
		key, err := parseString(c)
		if err != nil {
			return models.Value{}, err
		}
		if err := c.expect(":"); err != nil {
			return models.Value{}, err
		}
		val, err := parseValue(c)
		if err != nil {
			return models.Value{}, err
		}
		members[key.Str] = val

		sep, err := c.next()
		if err != nil {
			return models.Value{}, err
		}
		if sep == "}" {
			return models.Object(members), nil
		}
		if sep != "," {
			return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrUnexpectedToken)
		}
	}
}

// parseArray reads comma-separated values until the closing bracket. The
// opening bracket has already been consumed.
func parseArray(c *cursor) (models.Value, error) {
	var elems []models.Value

	if tok, ok := c.peek(); ok && tok == "]" {
		c.pos++
		return models.Array(elems...), nil
	}

	for {
		elem, err := parseValue(c)
		if err != nil {
			return models.Value{}, err
		}
		elems = append(elems, elem)

		sep, err := c.next()
		if err != nil {
			return models.Value{}, err
		}
		if sep == "]" {
			return models.Array(elems...), nil
		}
		if sep != "," {
			return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrUnexpectedToken)
		}
	}
}

// parseString consumes the literal-run token (if any) up to the closing
// quote. The opening quote has already been consumed; back-to-back quote
// tokens denote the empty string. The run needs no further decoding.
func parseString(c *cursor) (models.Value, error) {
	tok, err := c.next()
	if err != nil {
		return models.Value{}, err
	}
	if tok == `"` {
		return models.String(""), nil
	}
	if err := c.expect(`"`); err != nil {
		return models.Value{}, err
	}
	return models.String(tok), nil
}

// parseNumber assembles a number from an optional sign token, a mandatory
// mantissa run, and an optional exponent (marker token, optional sign token,
// digit run), then converts the whole text with strconv. The first token has
// already been consumed and is passed in.
func parseNumber(c *cursor, first string) (models.Value, error) {
	var text strings.Builder
	mantissa := first

	if first == "-" || first == "+" {
		text.WriteString(first)
		next, err := c.next()
		if err != nil {
			return models.Value{}, err
		}
		mantissa = next
	}

	if !isMantissa(mantissa) {
		return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrMalformedNumber)
	}
	text.WriteString(mantissa)

	if tok, ok := c.peek(); ok && (tok == "e" || tok == "E") {
		c.pos++
		text.WriteString(tok)

		exp, err := c.next()
		if err != nil {
			return models.Value{}, err
		}
		if exp == "-" || exp == "+" {
			text.WriteString(exp)
			exp, err = c.next()
			if err != nil {
				return models.Value{}, err
			}
		}
		if !isDigitRun(exp) {
			return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrMalformedNumber)
		}
		text.WriteString(exp)
	}

	f, err := strconv.ParseFloat(text.String(), 64)
	if err != nil {
		// A grammatically valid number can still overflow or underflow the
		// double range; an infinity would not re-serialize as JSON, so those
		// are rejected too, but not as malformed text.
		if stderrors.Is(err, strconv.ErrRange) {
			return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrNumberOutOfRange)
		}
		return models.Value{}, errors.NewParseError(c.pos-1, errors.ErrMalformedNumber)
	}
	return models.Number(f), nil
}

// isMantissa reports whether s is a digit run with at most one embedded
// decimal point, starting and ending on a digit.
func isMantissa(s string) bool {
	if len(s) == 0 {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == '.':
			dots++
			if dots > 1 || i == 0 || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isDigitRun(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
