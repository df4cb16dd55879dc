package form_test

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

func TestValueWireShape(t *testing.T) {
	raw, err := json.Marshal(map[string]form.Value{
		"1": form.Text("Alice"),
		"2": form.Choices("A", "B"),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Values persist as bare strings or string arrays, never wrapped.
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if _, ok := generic["1"].(string); !ok {
		t.Fatalf("text value encoded as %T, want string", generic["1"])
	}
	if _, ok := generic["2"].([]any); !ok {
		t.Fatalf("choice value encoded as %T, want array", generic["2"])
	}

	var decoded map[string]form.Value
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded["1"].Equal(form.Text("Alice")) {
		t.Fatalf("text round trip: %v", decoded["1"])
	}
	if !decoded["2"].Equal(form.Choices("A", "B")) {
		t.Fatalf("choices round trip: %v", decoded["2"])
	}
}

func TestValueStringAndEmpty(t *testing.T) {
	if got := form.Choices("A", "B").String(); got != "A, B" {
		t.Fatalf("String() = %q", got)
	}
	if !form.Text("   ").IsEmpty() {
		t.Fatal("whitespace text should be empty")
	}
	if !form.Choices().IsEmpty() {
		t.Fatal("empty choice list should be empty")
	}
	if form.Text("x").IsEmpty() || form.Choices("x").IsEmpty() {
		t.Fatal("non-empty values reported empty")
	}
}
