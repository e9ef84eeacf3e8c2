package parser

import (
	"github.com/endrebjorgo/json-parser/internal/errors"
)

// cursor is the shared read position into one token sequence. All recursive
// parse procedures advance the same cursor monotonically; nothing ever
// rewinds it, so one pass over the tokens is all a parse call gets.
type cursor struct {
	tokens []string
	pos    int
}

// next consumes and returns the current token.
func (c *cursor) next() (string, error) {
	if c.pos >= len(c.tokens) {
		return "", errors.NewParseError(c.pos, errors.ErrUnexpectedEOF)
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// peek returns the current token without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// expect consumes the current token and fails unless it equals want.
func (c *cursor) expect(want string) error {
	tok, err := c.next()
	if err != nil {
		return err
	}
	if tok != want {
		return errors.NewParseError(c.pos-1, errors.ErrUnexpectedToken)
	}
	return nil
}
