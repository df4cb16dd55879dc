package builder

import (
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// ErrIndexOutOfRange reports a reorder index outside the field list.
var ErrIndexOutOfRange = errors.New("builder: index out of range")

// Reorder removes the element at src and inserts it at dst in the shortened
// sequence — standard single-element list-move semantics, not a swap:
// moving index 0 to index 2 in [A B C D] yields [B C A D]. The input slice
// is not mutated. Out-of-range indices are a precondition violation;
// drag-and-drop surfaces clamp before calling.
func Reorder(fields []form.Field, src, dst int) ([]form.Field, error) {
	if src < 0 || src >= len(fields) || dst < 0 || dst >= len(fields) {
		return nil, ErrIndexOutOfRange
	}

	out := make([]form.Field, 0, len(fields))
	out = append(out, fields[:src]...)
	out = append(out, fields[src+1:]...)

	out = append(out, form.Field{})
	copy(out[dst+1:], out[dst:])
	out[dst] = fields[src]
	return out, nil
}
