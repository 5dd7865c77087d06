package jobs

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Kind identifies the variant held by a metadata Value.
type Kind int

// Metadata value kinds. The set is closed: anything outside the JSON data
// model is rejected at the boundary.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a single JSON-compatible metadata value. Numbers are kept as
// their source lexemes so precision survives round-trips.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	a    []Value
	o    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a numeric value from an integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, n: json.Number(fmt.Sprintf("%d", n))}
}

// Float returns a numeric value from a float.
func Float(f float64) Value {
	raw, _ := json.Marshal(f)
	return Value{kind: KindNumber, n: json.Number(raw)}
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value.
func Array(items ...Value) Value { return Value{kind: KindArray, a: items} }

// Object returns an object value.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, o: fields} }

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// BoolValue returns the boolean and whether the value holds one.
func (v Value) BoolValue() (bool, bool) { return v.b, v.kind == KindBool }

// NumberValue returns the number and whether the value holds one.
func (v Value) NumberValue() (json.Number, bool) { return v.n, v.kind == KindNumber }

// StringValue returns the string and whether the value holds one.
func (v Value) StringValue() (string, bool) { return v.s, v.kind == KindString }

// ArrayValue returns the array and whether the value holds one.
func (v Value) ArrayValue() ([]Value, bool) { return v.a, v.kind == KindArray }

// ObjectValue returns the object and whether the value holds one.
func (v Value) ObjectValue() (map[string]Value, bool) { return v.o, v.kind == KindObject }

// MarshalJSON renders the value as its underlying JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return []byte(v.n), nil
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.a == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.a)
	case KindObject:
		if v.o == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.o)
	default:
		return nil, fmt.Errorf("unknown metadata value kind: %d", v.kind)
	}
}

// UnmarshalJSON parses any JSON value into the closed variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := parseValue(json.RawMessage(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func parseValue(raw json.RawMessage) (Value, error) {
	trimmed := trimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, fmt.Errorf("empty metadata value")
	}

	switch trimmed[0] {
	case 'n':
		return Null(), nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, err
		}
		return String(s), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Value{}, err
		}
		values := make([]Value, len(items))
		for i, item := range items {
			parsed, err := parseValue(item)
			if err != nil {
				return Value{}, err
			}
			values[i] = parsed
		}
		return Array(values...), nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return Value{}, err
		}
		values := make(map[string]Value, len(fields))
		for key, field := range fields {
			parsed, err := parseValue(field)
			if err != nil {
				return Value{}, err
			}
			values[key] = parsed
		}
		return Object(values), nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return Value{}, err
		}
		return Value{kind: KindNumber, n: n}, nil
	}
}

func trimSpace(raw json.RawMessage) json.RawMessage {
	start := 0
	for start < len(raw) && isSpace(raw[start]) {
		start++
	}
	end := len(raw)
	for end > start && isSpace(raw[end-1]) {
		end--
	}
	return raw[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Metadata is a string-keyed map of extraction process details, stored as
// JSONB on the job row.
type Metadata map[string]Value

// ParseMetadata validates and parses a raw JSON object into Metadata.
func ParseMetadata(raw []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("invalid extraction metadata: %w", err)
	}
	return m, nil
}

// ToMap converts the metadata into plain Go values, suitable for
// decode.FromMap projection into typed structs.
func (m Metadata) ToMap() map[string]any {
	result := make(map[string]any, len(m))
	for key, value := range m {
		result[key] = value.toAny()
	}
	return result
}

func (v Value) toAny() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if i, err := v.n.Int64(); err == nil {
			return i
		}
		f, _ := v.n.Float64()
		return f
	case KindString:
		return v.s
	case KindArray:
		items := make([]any, len(v.a))
		for i, item := range v.a {
			items[i] = item.toAny()
		}
		return items
	case KindObject:
		fields := make(map[string]any, len(v.o))
		for key, field := range v.o {
			fields[key] = field.toAny()
		}
		return fields
	default:
		return nil
	}
}

// Value implements driver.Valuer, serializing the metadata to JSONB.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner, parsing JSONB bytes into the metadata map.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Metadata", src)
	}

	parsed, err := ParseMetadata(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
