package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/form"
)

func fieldList(ids ...string) []form.Field {
	out := make([]form.Field, 0, len(ids))
	for _, id := range ids {
		out = append(out, form.Field{ID: id, Type: form.FieldTypeText, Label: id})
	}
	return out
}

func idsOf(fields []form.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.ID)
	}
	return out
}

func TestReorder_ListMove(t *testing.T) {
	cases := []struct {
		name     string
		src, dst int
		want     []string
	}{
		{"forward", 0, 2, []string{"B", "C", "A", "D"}},
		{"backward", 3, 0, []string{"D", "A", "B", "C"}},
		{"to end", 0, 3, []string{"B", "C", "D", "A"}},
		{"identity", 1, 1, []string{"A", "B", "C", "D"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := fieldList("A", "B", "C", "D")
			got, err := builder.Reorder(fields, tc.src, tc.dst)
			if err != nil {
				t.Fatalf("Reorder: %v", err)
			}
			if diff := cmp.Diff(tc.want, idsOf(got)); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
			// Input order is untouched.
			if diff := cmp.Diff([]string{"A", "B", "C", "D"}, idsOf(fields)); diff != "" {
				t.Fatalf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorder_OutOfRange(t *testing.T) {
	fields := fieldList("A", "B")
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := builder.Reorder(fields, pair[0], pair[1]); !errors.Is(err, builder.ErrIndexOutOfRange) {
			t.Fatalf("Reorder(%d, %d): expected ErrIndexOutOfRange, got %v", pair[0], pair[1], err)
		}
	}
}
