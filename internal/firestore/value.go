package firestore

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Value is one Firestore typed field. Exactly one member is set.
type Value struct {
	StringValue    *string  `json:"stringValue,omitempty"`
	IntegerValue   *string  `json:"integerValue,omitempty"`
	DoubleValue    *float64 `json:"doubleValue,omitempty"`
	BooleanValue   *bool    `json:"booleanValue,omitempty"`
	TimestampValue *string  `json:"timestampValue,omitempty"`
	NullValue      *string  `json:"nullValue,omitempty"`
}

// Encode converts a Go value to its Firestore field form. Floats are
// rounded to the nearest integer; unsupported types fall back to their
// fmt representation.
func Encode(v any) Value {
	switch x := v.(type) {
	case nil:
		null := "NULL_VALUE"
		return Value{NullValue: &null}
	case string:
		return Value{StringValue: &x}
	case bool:
		return Value{BooleanValue: &x}
	case int:
		s := strconv.FormatInt(int64(x), 10)
		return Value{IntegerValue: &s}
	case int64:
		s := strconv.FormatInt(x, 10)
		return Value{IntegerValue: &s}
	case float64:
		s := strconv.FormatInt(int64(math.Round(x)), 10)
		return Value{IntegerValue: &s}
	case float32:
		s := strconv.FormatInt(int64(math.Round(float64(x))), 10)
		return Value{IntegerValue: &s}
	case time.Time:
		s := x.UTC().Format(time.RFC3339)
		return Value{TimestampValue: &s}
	default:
		s := fmt.Sprintf("%v", x)
		return Value{StringValue: &s}
	}
}

// Decode converts a Firestore field back to a Go value. Member precedence
// follows the encode rules; an empty value decodes to nil.
func (v Value) Decode() any {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.IntegerValue != nil:
		n, err := strconv.ParseInt(*v.IntegerValue, 10, 64)
		if err != nil {
			return *v.IntegerValue
		}
		return n
	case v.DoubleValue != nil:
		return *v.DoubleValue
	case v.BooleanValue != nil:
		return *v.BooleanValue
	case v.TimestampValue != nil:
		t, err := time.Parse(time.RFC3339, *v.TimestampValue)
		if err != nil {
			return *v.TimestampValue
		}
		return t
	default:
		return nil
	}
}

// EncodeFields converts a flat Go map to Firestore document fields.
func EncodeFields(in map[string]any) map[string]Value {
	out := make(map[string]Value, len(in))
	for k, v := range in {
		out[k] = Encode(v)
	}
	return out
}

// DecodeFields converts Firestore document fields back to a flat Go map.
func DecodeFields(in map[string]Value) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v.Decode()
	}
	return out
}

// Text returns the field decoded as a string, or "" when it is not one.
func (v Value) Text() string {
	if v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}
