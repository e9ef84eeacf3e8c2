// Package models defines the value tree produced by the parser: a closed
// tagged union with one variant per JSON type. The parser builds it bottom-up
// in a single pass and callers treat it as immutable afterwards.
package models

import "sort"

// Kind identifies which variant of the union a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. Exactly one variant is populated, selected by
// Kind:
//
//	KindBool   → Bool
//	KindNumber → Num (IEEE 754 double)
//	KindString → Str (escapes already decoded by the tokenizer)
//	KindArray  → Elems (order preserved)
//	KindObject → Members (keys unique; duplicate keys in source resolve
//	             last-write-wins; insertion order is not significant)
type Value struct {
	Kind    Kind
	Bool    bool
	Num     float64
	Str     string
	Elems   []Value
	Members map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Boolean returns a boolean value.
func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number returns a number value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// String returns a string value. The text must already be decoded.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Array returns an array value holding the given elements.
func Array(elems ...Value) Value { return Value{Kind: KindArray, Elems: elems} }

// Object returns an object value holding the given members.
func Object(members map[string]Value) Value {
	return Value{Kind: KindObject, Members: members}
}

// Keys returns the object's keys in sorted order. It returns nil for
// non-object values.
func (v Value) Keys() []string {
	if v.Kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.Members))
	for k := range v.Members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two values have the same structure and scalar
// contents. Object member order is irrelevant; array order is not.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber:
		return v.Num == o.Num
	case KindString:
		return v.Str == o.Str
	case KindArray:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Members) != len(o.Members) {
			return false
		}
		for k, mv := range v.Members {
			ov, ok := o.Members[k]
			if !ok || !mv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
