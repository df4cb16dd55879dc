package template

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// ErrEmptyName reports a template save with a blank name.
var ErrEmptyName = errors.New("template: name is required")

// Template is a named, reusable field-set snapshot, keyed by the slugified
// form of its name.
type Template struct {
	Key    string       `json:"key,omitempty"`
	Name   string       `json:"name"`
	Fields []form.Field `json:"fields"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	out := t
	if t.Fields != nil {
		out.Fields = make([]form.Field, len(t.Fields))
		for i, f := range t.Fields {
			out.Fields[i] = f.Clone()
		}
	}
	return out
}

var whitespace = regexp.MustCompile(`\s+`)

// Slugify normalises a template name into its storage key: lower-cased with
// whitespace runs collapsed to underscores.
func Slugify(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// Store owns the template catalog: builtin seeds plus custom templates
// persisted through the gateway. It is the single mapping template lookups
// go through — nothing else mutates the catalog.
type Store struct {
	gw        storage.Gateway
	templates map[string]Template
}

// Option customises a Store.
type Option func(*Store)

// WithSeeds adds extra builtin templates on top of the defaults, e.g. ones
// parsed from seed files via LoadFS.
func WithSeeds(seeds ...Template) Option {
	return func(s *Store) {
		for _, seed := range seeds {
			key := seed.Key
			if key == "" {
				key = Slugify(seed.Name)
			}
			if key == "" {
				continue
			}
			seed.Key = key
			s.templates[key] = seed.Clone()
		}
	}
}

// NewStore builds a catalog seeded with the builtin templates. Call LoadAll
// to merge persisted custom templates over the seeds.
func NewStore(gw storage.Gateway, options ...Option) *Store {
	s := &Store{
		gw:        gw,
		templates: builtinTemplates(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// LoadAll merges persisted custom templates into the catalog. Custom entries
// win over seeds with the same key.
func (s *Store) LoadAll(ctx context.Context) error {
	stored := map[string]Template{}
	if err := s.gw.Read(ctx, storage.BucketTemplates, &stored); err != nil {
		return err
	}
	for key, tpl := range stored {
		tpl.Key = key
		s.templates[key] = tpl.Clone()
	}
	return nil
}

// Save snapshots the fields under the slugified name and persists the custom
// aggregate. A colliding key silently overwrites the prior template — the
// catalog's named collision policy. The returned key addresses the template
// in Get.
func (s *Store) Save(ctx context.Context, name string, fields []form.Field) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	key := Slugify(name)
	tpl := Template{Key: key, Name: name, Fields: fields}
	tpl = tpl.Clone()

	stored := map[string]Template{}
	if err := s.gw.Read(ctx, storage.BucketTemplates, &stored); err != nil {
		return "", err
	}
	stored[key] = tpl
	if err := s.gw.Write(ctx, storage.BucketTemplates, stored); err != nil {
		return "", err
	}

	s.templates[key] = tpl
	return key, nil
}

// Get returns the template stored under key, if any.
func (s *Store) Get(key string) (Template, bool) {
	tpl, ok := s.templates[key]
	if !ok {
		return Template{}, false
	}
	return tpl.Clone(), true
}

// All returns the catalog keyed by slug.
func (s *Store) All() map[string]Template {
	out := make(map[string]Template, len(s.templates))
	for key, tpl := range s.templates {
		out[key] = tpl.Clone()
	}
	return out
}

// Keys returns the catalog keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.templates))
	for key := range s.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Apply seeds a form from a template: title and fields come from the
// template, everything else — id, description, steps — stays as it was.
// The result is the payload for a builder.SetForm action.
func Apply(current form.Form, tpl Template) form.Form {
	out := current.Clone()
	out.Title = tpl.Name
	tpl = tpl.Clone()
	out.Fields = tpl.Fields
	return out
}
