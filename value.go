package fbref

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind discriminates the representation of a statistic cell value.
type ValueKind int

// Value kinds.
const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindText
)

// Value is a tagged variant holding a single statistic cell value.
// Cells parse as integers, floats, or fall back to raw text; a Null value
// records a cell that was present but not parseable as a number where a
// number was expected.
type Value struct {
	Kind  ValueKind
	Int   int
	Float float64
	Text  string
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int64 is intentionally absent; FBref cell magnitudes fit int.

// IntValue returns an integer Value.
func IntValue(i int) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue returns a float Value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// ParseCell coerces raw cell text deterministically: a decimal point selects
// a float parse, otherwise an integer parse is attempted, and anything that
// fails both is retained as text.
func ParseCell(s string) Value {
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return FloatValue(f)
		}
		return TextValue(s)
	}
	if i, err := strconv.Atoi(s); err == nil {
		return IntValue(i)
	}
	return TextValue(s)
}

// ParseNumber parses cell text as a float after stripping a trailing percent
// sign. Returns a null Value when the text is empty or non-numeric.
func ParseNumber(s string) Value {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if cleaned == "" {
		return Null()
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return Null()
	}
	return FloatValue(f)
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Scalar returns the underlying Go value: int, float64, string, or nil.
func (v Value) Scalar() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindText:
		return v.Text
	default:
		return nil
	}
}

// String renders the value for display. Null renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// MarshalJSON encodes the value as its underlying scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Scalar())
}

// UnmarshalJSON decodes a scalar back into a tagged value. JSON numbers
// without a decimal point decode as integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = Null()
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*v = TextValue(text)
		return nil
	}
	if !strings.ContainsAny(s, ".eE") {
		var i int
		if err := json.Unmarshal(data, &i); err == nil {
			*v = IntValue(i)
			return nil
		}
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = FloatValue(f)
	return nil
}
