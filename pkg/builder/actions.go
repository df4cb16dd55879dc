package builder

import "github.com/goliatone/go-formbuilder/pkg/form"

// Action is the closed set of mutations the reducer understands. The sealed
// marker keeps the union closed so Reduce can match exhaustively.
type Action interface {
	isAction()
}

// AddField appends a field to the document. A field whose id already exists
// on the form is ignored, preserving the id-uniqueness invariant.
type AddField struct {
	Field form.Field
}

// UpdateField merges a patch into the field with the matching id. Unknown
// ids are a no-op.
type UpdateField struct {
	ID    string
	Patch FieldPatch
}

// FieldPatch carries partial field updates. Nil pointers leave the
// corresponding attribute untouched; Options replaces the whole option list.
type FieldPatch struct {
	Type        *form.FieldType
	Label       *string
	Required    *bool
	Placeholder *string
	HelpText    *string
	Options     *[]string
}

// DeleteField removes the field with the matching id. Unknown ids are a
// no-op.
type DeleteField struct {
	ID string
}

// ReorderFields moves the field at Source to Destination using single-element
// list-move semantics. Indices are clamped to the valid range before the
// move so the action stays total.
type ReorderFields struct {
	Source      int
	Destination int
}

// SetForm replaces the whole document, as when loading a template.
type SetForm struct {
	Form form.Form
}

// AddStep appends a step with a generated id and the sequential default name
// "Step N".
type AddStep struct{}

// UpdateFormSettings merges top-level document updates. Nil pointers leave
// the corresponding attribute untouched.
type UpdateFormSettings struct {
	Title       *string
	Description *string
}

// Undo rewinds the document to the previous history snapshot, if any.
type Undo struct{}

// Redo re-applies the snapshot undone last, if any.
type Redo struct{}

func (AddField) isAction()           {}
func (UpdateField) isAction()        {}
func (DeleteField) isAction()        {}
func (ReorderFields) isAction()      {}
func (SetForm) isAction()            {}
func (AddStep) isAction()            {}
func (UpdateFormSettings) isAction() {}
func (Undo) isAction()               {}
func (Redo) isAction()               {}
