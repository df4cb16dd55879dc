// Package builder implements the document reducer: the action protocol that
// mutates a form under construction, the undo/redo history log, and the
// drag-and-drop reorder algorithm. Together with form.Validate and Reorder
// this is the entire contract a presentation layer needs from the core.
package builder
