package collect

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// Phase is the fill-session state: values are collected while Filling,
// Submit moves through Validating, and a successful submission lands in the
// terminal Submitted phase.
type Phase string

const (
	PhaseFilling    Phase = "filling"
	PhaseValidating Phase = "validating"
	PhaseSubmitted  Phase = "submitted"
)

// ErrAlreadySubmitted reports an edit or submit on a terminal session.
var ErrAlreadySubmitted = errors.New("collect: response already submitted")

// ValidationError reports a failed submit attempt. Fields maps field id to
// the per-field failure; the session stays in Filling and nothing persists.
type ValidationError struct {
	Fields map[string]error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("collect: %d field(s) failed validation", len(e.Fields))
}

const defaultSaveDelay = 2 * time.Second

// Session collects one respondent's answers to a published form. SetValue
// records values and schedules the debounced progress save; Submit validates
// everything, persists exactly one ResponseRecord on success, clears saved
// progress and becomes terminal.
type Session struct {
	store     *storage.Store
	published form.Published
	values    map[string]form.Value
	errs      map[string]error
	phase     Phase
	saver     *progressSaver
	now       func() time.Time
	newID     func() string
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithSaveDelay overrides the progress-save quiet window (default 2s).
func WithSaveDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.saver = newProgressSaver(d, s.persistProgress)
		}
	}
}

// WithSavedProgress restores previously saved values, as when the filler
// accepts the restore prompt.
func WithSavedProgress(values map[string]form.Value) SessionOption {
	return func(s *Session) {
		for id, v := range values {
			s.values[id] = v
		}
	}
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithResponseIDGenerator overrides response-id generation, mainly for tests.
func WithResponseIDGenerator(gen func() string) SessionOption {
	return func(s *Session) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewSession starts a fill session for a published form.
func NewSession(store *storage.Store, published form.Published, options ...SessionOption) *Session {
	s := &Session{
		store:     store,
		published: published,
		values:    make(map[string]form.Value),
		errs:      make(map[string]error),
		phase:     PhaseFilling,
		now:       time.Now,
		newID:     newResponseID,
	}
	s.saver = newProgressSaver(defaultSaveDelay, s.persistProgress)
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func newResponseID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("resp_%d_%s", time.Now().UnixMilli(), token[:9])
}

// Phase reports the session state.
func (s *Session) Phase() Phase { return s.phase }

// Form returns the published form being filled.
func (s *Session) Form() form.Published { return s.published }

// Values returns a copy of the current response map.
func (s *Session) Values() map[string]form.Value {
	out := make(map[string]form.Value, len(s.values))
	for id, v := range s.values {
		out[id] = v
	}
	return out
}

// FieldErrors returns the per-field failures from the last submit attempt.
func (s *Session) FieldErrors() map[string]error {
	out := make(map[string]error, len(s.errs))
	for id, err := range s.errs {
		out[id] = err
	}
	return out
}

// SetValue records a value for a field, clears that field's stale error and
// schedules the debounced progress save. Terminal sessions reject edits.
func (s *Session) SetValue(ctx context.Context, fieldID string, value form.Value) error {
	if s.phase == PhaseSubmitted {
		return ErrAlreadySubmitted
	}
	s.values[fieldID] = value
	delete(s.errs, fieldID)
	s.saver.Note(context.WithoutCancel(ctx), s.Values())
	return nil
}

// Progress reports the percentage of fields with a non-empty value, rounded
// to the nearest whole number.
func (s *Session) Progress() int {
	total := len(s.published.Fields)
	if total == 0 {
		return 0
	}
	filled := 0
	for _, field := range s.published.Fields {
		if v, ok := s.values[field.ID]; ok && !v.IsEmpty() {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(total) * 100))
}

// Submit validates every field against the current response map. On any
// failure the session returns to Filling with per-field errors exposed and
// nothing persisted. On success it appends exactly one ResponseRecord,
// clears saved progress for the form, cancels any pending progress save and
// transitions to the terminal Submitted phase.
func (s *Session) Submit(ctx context.Context) (form.ResponseRecord, error) {
	if s.phase == PhaseSubmitted {
		return form.ResponseRecord{}, ErrAlreadySubmitted
	}

	s.phase = PhaseValidating
	if errs := form.ValidateAll(s.published.Form, s.values); errs != nil {
		s.errs = errs
		s.phase = PhaseFilling
		return form.ResponseRecord{}, &ValidationError{Fields: s.FieldErrors()}
	}
	s.errs = map[string]error{}

	rec := form.ResponseRecord{
		ID:        s.newID(),
		Timestamp: s.now().UTC(),
		FormTitle: s.published.Title,
		Responses: s.Values(),
		Status:    form.ResponseStatusCompleted,
	}
	if err := s.store.AppendResponse(ctx, s.published.ShareID, rec); err != nil {
		s.phase = PhaseFilling
		return form.ResponseRecord{}, err
	}

	s.saver.Close()
	if err := s.store.ClearProgress(ctx, s.published.ShareID); err != nil {
		// The response is already durable; a failed progress clear is a
		// stale-cache nuisance, not a submission failure.
		s.phase = PhaseSubmitted
		return rec, nil
	}
	s.phase = PhaseSubmitted
	return rec, nil
}

// Close tears the session down, cancelling any pending progress save.
func (s *Session) Close() {
	s.saver.Close()
}

// DiscardProgress removes saved progress for the form, as when the filler
// declines the restore prompt.
func DiscardProgress(ctx context.Context, store *storage.Store, shareID string) error {
	return store.ClearProgress(ctx, shareID)
}

func (s *Session) persistProgress(ctx context.Context, values map[string]form.Value) {
	// Best-effort: a failed autosave must not disturb the fill session, and
	// the storage layer already logs the failure.
	_ = s.store.SaveProgress(ctx, s.published.ShareID, values)
}
