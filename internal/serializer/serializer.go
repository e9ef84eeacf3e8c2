// Package serializer renders a value tree back to indented JSON text.
//
// The output always parses back to an equal tree: keys are quoted, commas
// appear only between entries, and strings escape quotes, backslashes, and
// control characters on the way out. Object keys are written in sorted order
// so the same tree always serializes to the same text.
package serializer

import (
	"strconv"
	"strings"

	"github.com/endrebjorgo/json-parser/internal/models"
)

// DefaultIndent is the indent width used when none is configured.
const DefaultIndent = 4

// Serializer renders value trees with a fixed indent width.
type Serializer struct {
	indent string
}

// NewSerializer creates a Serializer with the default indent width.
func NewSerializer() *Serializer {
	return NewSerializerWithIndent(DefaultIndent)
}

// NewSerializerWithIndent creates a Serializer indenting each nesting level
// by width spaces. A non-positive width falls back to the default.
func NewSerializerWithIndent(width int) *Serializer {
	if width <= 0 {
		width = DefaultIndent
	}
	return &Serializer{indent: strings.Repeat(" ", width)}
}

// Serialize renders v as indented text. The tree is acyclic by construction,
// so no cycle protection is needed.
func (s *Serializer) Serialize(v models.Value) string {
	var b strings.Builder
	s.writeValue(&b, v, 0)
	return b.String()
}

// Serialize renders v with the default indent width.
func Serialize(v models.Value) string {
	return NewSerializer().Serialize(v)
}

func (s *Serializer) writeValue(b *strings.Builder, v models.Value, depth int) {
	switch v.Kind {
	case models.KindNull:
		b.WriteString("null")
	case models.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case models.KindNumber:
		b.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case models.KindString:
		writeQuoted(b, v.Str)
	case models.KindArray:
		s.writeArray(b, v, depth)
	case models.KindObject:
		s.writeObject(b, v, depth)
	}
}

func (s *Serializer) writeArray(b *strings.Builder, v models.Value, depth int) {
	if len(v.Elems) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, elem := range v.Elems {
		s.writeIndent(b, depth+1)
		s.writeValue(b, elem, depth+1)
		if i < len(v.Elems)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	s.writeIndent(b, depth)
	b.WriteByte(']')
}

func (s *Serializer) writeObject(b *strings.Builder, v models.Value, depth int) {
	if len(v.Members) == 0 {
		b.WriteString("{}")
		return
	}
	// The model is unordered; sorted keys keep the output deterministic.
	keys := v.Keys()
	b.WriteString("{\n")
	for i, k := range keys {
		s.writeIndent(b, depth+1)
		writeQuoted(b, k)
		b.WriteString(": ")
		s.writeValue(b, v.Members[k], depth+1)
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	s.writeIndent(b, depth)
	b.WriteByte('}')
}

func (s *Serializer) writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(s.indent)
	}
}

// writeQuoted writes s as a quoted JSON string literal. Quotes, backslashes,
// and the named control characters get their short escapes; remaining control
// characters become \u00xx. Everything else is copied verbatim.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			b.WriteString(`\u00`)
			b.WriteByte(hexDigit(c >> 4))
			b.WriteByte(hexDigit(c & 0x0F))
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func hexDigit(c byte) byte {
	if c < 10 {
		return '0' + c
	}
	return 'a' + (c - 10)
}
