package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// Reduce applies one action to a session and returns the resulting session.
// It is pure: inputs are never mutated and the output shares no slices with
// them. Every transition is total — unknown actions and unresolvable targets
// return the input state unchanged rather than failing. Mutating actions
// append the new document to the history at HistoryIndex+1, discarding any
// redo tail; Undo and Redo only move the index and restore a snapshot.
func Reduce(s Session, action Action) Session {
	switch a := action.(type) {
	case Undo:
		if !s.CanUndo() {
			return s
		}
		next := s
		next.HistoryIndex--
		next.CurrentForm = s.History[next.HistoryIndex].Clone()
		return next
	case Redo:
		if !s.CanRedo() {
			return s
		}
		next := s
		next.HistoryIndex++
		next.CurrentForm = s.History[next.HistoryIndex].Clone()
		return next
	case AddField:
		return record(s, addField(s.CurrentForm, a))
	case UpdateField:
		return record(s, updateField(s.CurrentForm, a))
	case DeleteField:
		return record(s, deleteField(s.CurrentForm, a))
	case ReorderFields:
		return record(s, reorderFields(s.CurrentForm, a))
	case SetForm:
		return record(s, a.Form.Clone())
	case AddStep:
		return record(s, addStep(s.CurrentForm))
	case UpdateFormSettings:
		return record(s, updateSettings(s.CurrentForm, a))
	default:
		return s
	}
}

// record builds the post-action session: the new document becomes current
// and is appended to the history, truncating entries past the index.
func record(s Session, f form.Form) Session {
	history := make([]form.Form, 0, s.HistoryIndex+2)
	history = append(history, s.History[:s.HistoryIndex+1]...)
	history = append(history, f.Clone())
	return Session{
		CurrentForm:  f,
		History:      history,
		HistoryIndex: s.HistoryIndex + 1,
	}
}

func addField(f form.Form, a AddField) form.Form {
	if _, exists := f.FieldByID(a.Field.ID); exists {
		return f.Clone()
	}
	out := f.Clone()
	out.Fields = append(out.Fields, a.Field.Clone())
	return out
}

func updateField(f form.Form, a UpdateField) form.Form {
	out := f.Clone()
	for i := range out.Fields {
		if out.Fields[i].ID != a.ID {
			continue
		}
		applyFieldPatch(&out.Fields[i], a.Patch)
		break
	}
	return out
}

func applyFieldPatch(field *form.Field, patch FieldPatch) {
	if patch.Type != nil {
		field.Type = *patch.Type
	}
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if patch.Placeholder != nil {
		field.Placeholder = *patch.Placeholder
	}
	if patch.HelpText != nil {
		field.HelpText = *patch.HelpText
	}
	if patch.Options != nil {
		field.Options = append([]string(nil), (*patch.Options)...)
	}
}

func deleteField(f form.Form, a DeleteField) form.Form {
	out := f.Clone()
	fields := out.Fields[:0]
	for _, field := range out.Fields {
		if field.ID != a.ID {
			fields = append(fields, field)
		}
	}
	out.Fields = fields
	return out
}

func reorderFields(f form.Form, a ReorderFields) form.Form {
	out := f.Clone()
	src := clamp(a.Source, len(out.Fields))
	dst := clamp(a.Destination, len(out.Fields))
	moved, err := Reorder(out.Fields, src, dst)
	if err != nil {
		return out
	}
	out.Fields = moved
	return out
}

func clamp(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

func addStep(f form.Form) form.Form {
	out := f.Clone()
	out.Steps = append(out.Steps, form.Step{
		ID:     uuid.NewString(),
		Name:   fmt.Sprintf("Step %d", len(out.Steps)+1),
		Fields: []string{},
	})
	return out
}

func updateSettings(f form.Form, a UpdateFormSettings) form.Form {
	out := f.Clone()
	if a.Title != nil {
		out.Title = *a.Title
	}
	if a.Description != nil {
		out.Description = *a.Description
	}
	return out
}
