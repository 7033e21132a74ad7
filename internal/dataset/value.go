package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindObject
)

// Value is an immutable tagged-variant tree decoded from a reference JSON
// document. Objects remember the key order of the source document, so scans
// over map-shaped categories are deterministic across runs.
type Value struct {
	kind   Kind
	str    string
	num    float64
	b      bool
	list   []*Value
	keys   []string
	fields map[string]*Value
}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Str returns the string payload. Zero for non-string kinds.
func (v *Value) Str() string {
	if v == nil {
		return ""
	}
	return v.str
}

// Len returns the element count for lists and the key count for objects.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindObject:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th list element, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindList || i < 0 || i >= len(v.list) {
		return nil
	}
	return v.list[i]
}

// Keys returns object keys in document order.
func (v *Value) Keys() []string {
	if v == nil {
		return nil
	}
	return v.keys
}

// Field looks up an object field by key.
func (v *Value) Field(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	f, ok := v.fields[key]
	return f, ok
}

// Scalar renders a scalar value for display. Lists of scalars join with
// ", " so template fields like comma-separated trait lists come out flat.
// Non-scalar kinds render empty.
func (v *Value) Scalar() string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, el := range v.list {
			if el.Kind() == KindList || el.Kind() == KindObject {
				return ""
			}
			parts = append(parts, el.Scalar())
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// Dump pretty-prints the value as indented key/value JSON. Used as the
// formatter of last resort for categories without a registered template.
func (v *Value) Dump() string {
	var b strings.Builder
	v.dumpInto(&b, 0)
	return b.String()
}

func (v *Value) dumpInto(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind() {
	case KindObject:
		for _, k := range v.keys {
			f := v.fields[k]
			switch f.Kind() {
			case KindObject, KindList:
				fmt.Fprintf(b, "%s%s:\n", indent, k)
				f.dumpInto(b, depth+1)
			default:
				fmt.Fprintf(b, "%s%s: %s\n", indent, k, f.Scalar())
			}
		}
	case KindList:
		for _, el := range v.list {
			switch el.Kind() {
			case KindObject, KindList:
				el.dumpInto(b, depth)
			default:
				fmt.Fprintf(b, "%s- %s\n", indent, el.Scalar())
			}
		}
	default:
		fmt.Fprintf(b, "%s%s\n", indent, v.Scalar())
	}
}

// Decode parses a JSON document into a Value tree, preserving object key
// order. encoding/json's map decoding would randomize iteration order, so
// this walks the token stream instead.
func Decode(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing content after the first document.
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing content after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return &Value{kind: KindString, str: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t, err)
		}
		return &Value{kind: KindNumber, num: f}, nil
	case bool:
		return &Value{kind: KindBool, b: t}, nil
	case nil:
		return &Value{kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	v := &Value{kind: KindObject, fields: map[string]*Value{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		field, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if _, dup := v.fields[key]; !dup {
			v.keys = append(v.keys, key)
		}
		v.fields[key] = field
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeList(dec *json.Decoder) (*Value, error) {
	v := &Value{kind: KindList}
	for dec.More() {
		el, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		v.list = append(v.list, el)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}
