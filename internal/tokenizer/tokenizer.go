// Package tokenizer splits raw JSON text into an ordered sequence of lexical
// tokens: one-character structural punctuation, quote delimiters, and runs of
// literal text (digits, keywords, or escape-decoded string content).
//
// The whole pass is driven by two flags: inString, toggled by an unescaped
// quote, and escape, set by an unescaped backslash inside a string. String
// escapes are decoded here, so the parser downstream never sees a backslash.
// The one exception is \uXXXX, which is passed through undecoded (the 'u' and
// the four hex digits survive as literal text).
package tokenizer

import (
	"github.com/endrebjorgo/json-parser/internal/errors"
)

// Tokenize converts raw bytes into a token sequence. It is a pure function:
// it holds no state between calls and never modifies its input. A non-nil
// error is always a *errors.TokenizeError carrying the byte offset at which
// tokenization failed; no token sequence is returned in that case.
//
// The returned sequence never contains an empty token.
func Tokenize(data []byte) ([]string, error) {
	var (
		tokens   []string
		curr     []byte
		inString bool
		escape   bool
	)

	flush := func() {
		if len(curr) > 0 {
			tokens = append(tokens, string(curr))
			curr = curr[:0]
		}
	}

	for i := 0; i < len(data); i++ {
		c := data[i]

		if escape {
			switch c {
			case '"', '\\', '/':
				curr = append(curr, c)
			case 'b':
				curr = append(curr, '\b')
			case 'f':
				curr = append(curr, '\f')
			case 'n':
				curr = append(curr, '\n')
			case 'r':
				curr = append(curr, '\r')
			case 't':
				curr = append(curr, '\t')
			case 'u':
				// \uXXXX is not hex-decoded; the 'u' and following hex
				// digits flow through as literal text.
				curr = append(curr, 'u')
			case ' ', '\t', '\n', '\r':
				return nil, errors.NewTokenizeError(i, errors.ErrUnterminatedEscape)
			default:
				return nil, errors.NewTokenizeError(i, errors.ErrInvalidEscape)
			}
			escape = false
			continue
		}

		if c == '"' {
			inString = !inString
			flush()
			tokens = append(tokens, `"`)
			continue
		}

		if inString {
			switch {
			case c == '\\':
				escape = true
			case c < 0x20:
				// Raw control bytes never survive a round trip through the
				// serializer's \u00xx escapes, so none are accepted here.
				return nil, errors.NewTokenizeError(i, errors.ErrControlInString)
			default:
				curr = append(curr, c)
			}
			continue
		}

		switch c {
		case ' ', '\t', '\n', '\r':
			flush()
		case '{', '}', '[', ']', ':', ',', '+', '-':
			// Signs are structural so the parser can treat them as distinct
			// number-grammar tokens.
			flush()
			tokens = append(tokens, string(c))
		case '\\':
			return nil, errors.NewTokenizeError(i, errors.ErrInvalidEscape)
		case 'e', 'E':
			// An exponent marker directly after a digit ends the mantissa
			// token and stands alone: "1e10" tokenizes as ["1", "e", "10"].
			// Anywhere else ("true", "false") it joins the current run.
			if len(curr) > 0 && isDigit(curr[len(curr)-1]) {
				flush()
				tokens = append(tokens, string(c))
			} else {
				curr = append(curr, c)
			}
		default:
			curr = append(curr, c)
		}
	}

	// escape implies inString, so it has to be checked first.
	if escape {
		return nil, errors.NewTokenizeError(len(data), errors.ErrDanglingEscape)
	}
	if inString {
		return nil, errors.NewTokenizeError(len(data), errors.ErrUnterminatedString)
	}
	flush()

	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
