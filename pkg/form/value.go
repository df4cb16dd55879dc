package form

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value holds one response value: free text for single-value fields or an
// ordered choice list for checkbox groups. It marshals as a bare JSON string
// or string array so persisted aggregates keep the original wire shape.
type Value struct {
	text    string
	choices []string
	multi   bool
}

// Text builds a single-value Value.
func Text(s string) Value {
	return Value{text: s}
}

// Choices builds a multi-value Value preserving option order.
func Choices(options ...string) Value {
	return Value{choices: append([]string(nil), options...), multi: true}
}

// IsMulti reports whether the value carries a choice list.
func (v Value) IsMulti() bool { return v.multi }

// String returns the text content, or the choices joined with ", " for
// multi-value entries.
func (v Value) String() string {
	if v.multi {
		return strings.Join(v.choices, ", ")
	}
	return v.text
}

// List returns the choice list for multi-value entries and nil otherwise.
func (v Value) List() []string {
	if !v.multi {
		return nil
	}
	return append([]string(nil), v.choices...)
}

// Equal reports whether two values carry the same content.
func (v Value) Equal(o Value) bool {
	if v.multi != o.multi {
		return false
	}
	if !v.multi {
		return v.text == o.text
	}
	if len(v.choices) != len(o.choices) {
		return false
	}
	for i := range v.choices {
		if v.choices[i] != o.choices[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the value counts as absent for required checks:
// empty or whitespace-only text, or an empty choice list.
func (v Value) IsEmpty() bool {
	if v.multi {
		return len(v.choices) == 0
	}
	return strings.TrimSpace(v.text) == ""
}

// MarshalJSON encodes text values as JSON strings and choice lists as JSON
// string arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.multi {
		if v.choices == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.choices)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a JSON string or a JSON string array.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var choices []string
		if err := json.Unmarshal(data, &choices); err != nil {
			return fmt.Errorf("form: decode value list: %w", err)
		}
		*v = Value{choices: choices, multi: true}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("form: decode value: %w", err)
	}
	*v = Value{text: text}
	return nil
}
