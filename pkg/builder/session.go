package builder

import "github.com/goliatone/go-formbuilder/pkg/form"

// Session is the reducer-owned editing state: the live document plus the
// undo history. History always holds at least the initial snapshot and
// HistoryIndex stays within its bounds, so undo back to the empty document
// is always reachable.
type Session struct {
	CurrentForm  form.Form
	History      []form.Form
	HistoryIndex int
}

// NewSession starts an editing session over the given document and seeds the
// history with its snapshot.
func NewSession(f form.Form) Session {
	return Session{
		CurrentForm:  f.Clone(),
		History:      []form.Form{f.Clone()},
		HistoryIndex: 0,
	}
}

// CanUndo reports whether an earlier snapshot exists.
func (s Session) CanUndo() bool { return s.HistoryIndex > 0 }

// CanRedo reports whether an undone snapshot can be re-applied.
func (s Session) CanRedo() bool { return s.HistoryIndex < len(s.History)-1 }
