// Package conformance cross-checks this parser and serializer against the
// Cyberphone JSON canonicalizer. For documents inside this parser's accepted
// domain, canonicalizing our re-serialized output must give the same bytes as
// canonicalizing the original input: pretty-printing may not change what the
// document says.
package conformance_test

import (
	"testing"

	cyberphone "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endrebjorgo/json-parser/internal/parser"
	"github.com/endrebjorgo/json-parser/internal/serializer"
)

// Vectors stay inside the shared accepted domain: no \u escapes (this
// tokenizer passes them through undecoded, the oracle decodes them) and no
// duplicate keys (last-write-wins here, merge behavior varies elsewhere).
var vectors = []struct {
	name  string
	input string
}{
	{"empty object", `{}`},
	{"empty array", `[]`},
	{"scalars", `[null,true,false,0.25,"s"]`},
	{"negative and exponent numbers", `[-1,2.5,-3e2,1e+10,4E-2]`},
	{"nested containers", `{"a":{"b":[{"c":[]},{}]},"d":[[1],[2,[3]]]}`},
	{"decoded escapes", `{"text":"line1\nline2\tend","path":"a\/b\\c","quote":"say \"hi\""}`},
	{"empty keys and strings", `{"":"","blank":""}`},
	{"key ordering", `{"z":1,"a":2,"m":3}`},
	{"whitespace soup", "\r\n{ \"a\" :\t[ 1 ,\n2 ] }\n"},
	{"multi-byte text", `{"city":"Grünerløkka","emoji":"☃"}`},
}

func TestDifferential_CanonicalAgreement(t *testing.T) {
	for _, tc := range vectors {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := parser.Parse([]byte(tc.input))
			require.NoError(t, err, "parser rejected a vector inside its domain")

			wantCanon, err := cyberphone.Transform([]byte(tc.input))
			require.NoError(t, err, "oracle rejected a vector inside its domain")

			gotCanon, err := cyberphone.Transform([]byte(serializer.Serialize(tree)))
			require.NoError(t, err, "oracle rejected our serialized output")

			assert.Equal(t, string(wantCanon), string(gotCanon))
		})
	}
}

// Inputs both sides must reject: agreement on refusal matters as much as
// agreement on output.
func TestDifferential_SharedRejections(t *testing.T) {
	inputs := []struct {
		name  string
		input string
	}{
		{"unterminated string", `{"a":"oops`},
		{"missing value", `{"a":}`},
		{"unterminated array", `[1,2`},
		{"bare word", `nul`},
		{"trailing content", `{} {}`},
	}

	for _, tc := range inputs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tc.input))
			assert.Error(t, err)

			_, err = cyberphone.Transform([]byte(tc.input))
			assert.Error(t, err)
		})
	}
}

// A plus-prefixed number is outside RFC 8259 but accepted on both sides:
// signs are structural tokens here, and the oracle is known to rewrite +1 to
// 1. The two lenient readings must still agree.
func TestDifferential_LenientPlusSign(t *testing.T) {
	input := `{"n":+1}`

	tree, err := parser.Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, float64(1), tree.Members["n"].Num)

	gotCanon, err := cyberphone.Transform([]byte(serializer.Serialize(tree)))
	require.NoError(t, err)
	assert.Equal(t, `{"n":1}`, string(gotCanon))
}
