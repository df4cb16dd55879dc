package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/form"
)

// Store exposes typed operations over the five persisted key spaces:
//
//	formBuilderForms    formID  -> form.Form (drafts, explicit saves)
//	customFormTemplates key     -> template snapshot (owned by pkg/template)
//	sharedForms         shareID -> form.Published
//	formResponses       formID  -> []form.ResponseRecord (append-only)
//	formFillerProgress  formID  -> map[fieldID]form.Value
//
// Every mutation reads the full aggregate, merges the change and writes it
// back, so entries for unrelated forms are never lost.
type Store struct {
	gw      Gateway
	log     logging.Logger
	shareID func() string
}

// Option customises a Store.
type Option func(*Store)

// WithLogger injects the logger used for non-fatal storage notices.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithShareIDGenerator overrides share-id generation, mainly for tests.
func WithShareIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.shareID = gen
		}
	}
}

// NewStore wraps a gateway with typed aggregate operations.
func NewStore(gw Gateway, options ...Option) *Store {
	s := &Store{
		gw:      gw,
		log:     logging.Nop(),
		shareID: newShareID,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// newShareID produces a fresh "form_"-prefixed random id. Collisions are
// astronomically unlikely; Publish still re-rolls on a hit.
func newShareID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "form_" + token[:9]
}

// SaveDraft upserts the form into the drafts aggregate. Drafts are saved
// explicitly, never automatically.
func (s *Store) SaveDraft(ctx context.Context, f form.Form) error {
	drafts := map[string]form.Form{}
	if err := s.gw.Read(ctx, BucketDrafts, &drafts); err != nil {
		s.log.Warn(ctx, "draft save failed", "form", f.ID, "err", err)
		return err
	}
	drafts[f.ID] = f.Clone()
	if err := s.gw.Write(ctx, BucketDrafts, drafts); err != nil {
		s.log.Warn(ctx, "draft save failed", "form", f.ID, "err", err)
		return err
	}
	s.log.Debug(ctx, "draft saved", "form", f.ID)
	return nil
}

// Draft loads one draft by form id.
func (s *Store) Draft(ctx context.Context, formID string) (form.Form, bool, error) {
	drafts := map[string]form.Form{}
	if err := s.gw.Read(ctx, BucketDrafts, &drafts); err != nil {
		return form.Form{}, false, err
	}
	f, ok := drafts[formID]
	return f, ok, nil
}

// Drafts loads the whole draft aggregate.
func (s *Store) Drafts(ctx context.Context) (map[string]form.Form, error) {
	drafts := map[string]form.Form{}
	if err := s.gw.Read(ctx, BucketDrafts, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// Publish snapshots the form under a fresh share id and stores it in the
// shared aggregate. Authored text is sanitized on the way out. The snapshot
// is independent of the draft: later edits do not update it, and publishing
// again produces a new share id.
func (s *Store) Publish(ctx context.Context, f form.Form) (form.Published, error) {
	shared := map[string]form.Published{}
	if err := s.gw.Read(ctx, BucketShared, &shared); err != nil {
		s.log.Warn(ctx, "publish failed", "form", f.ID, "err", err)
		return form.Published{}, err
	}

	id := s.shareID()
	for {
		if _, taken := shared[id]; !taken {
			break
		}
		id = s.shareID()
	}

	published := form.Published{Form: form.Sanitize(f), ShareID: id}
	shared[id] = published
	if err := s.gw.Write(ctx, BucketShared, shared); err != nil {
		s.log.Warn(ctx, "publish failed", "form", f.ID, "err", err)
		return form.Published{}, err
	}
	s.log.Info(ctx, "form published", "form", f.ID, "share", id)
	return published, nil
}

// Shared loads one published form by share id.
func (s *Store) Shared(ctx context.Context, shareID string) (form.Published, bool, error) {
	shared := map[string]form.Published{}
	if err := s.gw.Read(ctx, BucketShared, &shared); err != nil {
		return form.Published{}, false, err
	}
	p, ok := shared[shareID]
	return p, ok, nil
}

// SharedForms loads the whole published aggregate.
func (s *Store) SharedForms(ctx context.Context) (map[string]form.Published, error) {
	shared := map[string]form.Published{}
	if err := s.gw.Read(ctx, BucketShared, &shared); err != nil {
		return nil, err
	}
	return shared, nil
}

// AppendResponse appends one record to the form's response list. Records are
// never mutated or removed once stored.
func (s *Store) AppendResponse(ctx context.Context, formID string, rec form.ResponseRecord) error {
	responses := map[string][]form.ResponseRecord{}
	if err := s.gw.Read(ctx, BucketResponses, &responses); err != nil {
		s.log.Warn(ctx, "response append failed", "form", formID, "err", err)
		return err
	}
	responses[formID] = append(responses[formID], rec)
	if err := s.gw.Write(ctx, BucketResponses, responses); err != nil {
		s.log.Warn(ctx, "response append failed", "form", formID, "err", err)
		return err
	}
	s.log.Debug(ctx, "response stored", "form", formID, "response", rec.ID)
	return nil
}

// Responses loads the ordered response list for one form.
func (s *Store) Responses(ctx context.Context, formID string) ([]form.ResponseRecord, error) {
	responses := map[string][]form.ResponseRecord{}
	if err := s.gw.Read(ctx, BucketResponses, &responses); err != nil {
		return nil, err
	}
	return responses[formID], nil
}

// AllResponses loads the whole response aggregate, keyed by form id.
func (s *Store) AllResponses(ctx context.Context) (map[string][]form.ResponseRecord, error) {
	responses := map[string][]form.ResponseRecord{}
	if err := s.gw.Read(ctx, BucketResponses, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// SaveProgress upserts the in-progress response values for one form.
func (s *Store) SaveProgress(ctx context.Context, formID string, values map[string]form.Value) error {
	progress := map[string]map[string]form.Value{}
	if err := s.gw.Read(ctx, BucketProgress, &progress); err != nil {
		s.log.Warn(ctx, "progress save failed", "form", formID, "err", err)
		return err
	}
	copied := make(map[string]form.Value, len(values))
	for k, v := range values {
		copied[k] = v
	}
	progress[formID] = copied
	if err := s.gw.Write(ctx, BucketProgress, progress); err != nil {
		s.log.Warn(ctx, "progress save failed", "form", formID, "err", err)
		return err
	}
	return nil
}

// Progress loads saved fill progress for one form, if any.
func (s *Store) Progress(ctx context.Context, formID string) (map[string]form.Value, bool, error) {
	progress := map[string]map[string]form.Value{}
	if err := s.gw.Read(ctx, BucketProgress, &progress); err != nil {
		return nil, false, err
	}
	values, ok := progress[formID]
	return values, ok, nil
}

// ClearProgress removes saved fill progress for one form.
func (s *Store) ClearProgress(ctx context.Context, formID string) error {
	progress := map[string]map[string]form.Value{}
	if err := s.gw.Read(ctx, BucketProgress, &progress); err != nil {
		return err
	}
	if _, ok := progress[formID]; !ok {
		return nil
	}
	delete(progress, formID)
	return s.gw.Write(ctx, BucketProgress, progress)
}

// ShareURL renders the fill link for a share id, e.g.
// https://forms.example/?form=form_ab12cd34e.
func ShareURL(origin, shareID string) string {
	return fmt.Sprintf("%s/?form=%s", strings.TrimRight(origin, "/"), shareID)
}

// ResponsesURL renders the responses-view link for an origin.
func ResponsesURL(origin string) string {
	return strings.TrimRight(origin, "/") + "/?responses=true"
}
