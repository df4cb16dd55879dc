package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

func sampleForm(id, title string) form.Form {
	return form.Form{
		ID:    id,
		Title: title,
		Fields: []form.Field{
			{ID: "1", Type: form.FieldTypeText, Label: "Name", Required: true},
		},
	}
}

func TestStore_DraftsReadMergeWrite(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())

	require.NoError(t, store.SaveDraft(ctx, sampleForm("f1", "First")))
	require.NoError(t, store.SaveDraft(ctx, sampleForm("f2", "Second")))

	// Re-saving one draft must not clobber the other.
	updated := sampleForm("f1", "First, edited")
	require.NoError(t, store.SaveDraft(ctx, updated))

	drafts, err := store.Drafts(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
	assert.Equal(t, "First, edited", drafts["f1"].Title)
	assert.Equal(t, "Second", drafts["f2"].Title)

	got, ok, err := store.Draft(ctx, "f2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Second", got.Title)

	_, ok, err = store.Draft(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PublishSnapshotsIndependently(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())

	draft := sampleForm("f1", "Survey")
	published, err := store.Publish(ctx, draft)
	require.NoError(t, err)
	assert.Regexp(t, `^form_[0-9a-f]{9}$`, published.ShareID)

	// Later draft edits must not leak into the published snapshot.
	draft.Title = "Survey v2"
	draft.Fields[0].Label = "Full Name"

	shared, ok, err := store.Shared(ctx, published.ShareID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Survey", shared.Form.Title)
	assert.Equal(t, "Name", shared.Form.Fields[0].Label)

	// Publishing again mints a new share id alongside the old snapshot.
	second, err := store.Publish(ctx, draft)
	require.NoError(t, err)
	assert.NotEqual(t, published.ShareID, second.ShareID)

	all, err := store.SharedForms(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_PublishSanitizes(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())

	draft := sampleForm("f1", "<b>Survey</b>")
	draft.Fields[0].Label = "<i>Name</i>"

	published, err := store.Publish(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Survey", published.Form.Title)
	assert.Equal(t, "Name", published.Form.Fields[0].Label)
}

func TestStore_PublishRerollsOnCollision(t *testing.T) {
	ctx := context.Background()
	ids := []string{"form_collided1", "form_collided1", "form_fresh0001"}
	store := storage.NewStore(storage.NewMemory(), storage.WithShareIDGenerator(func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}))

	first, err := store.Publish(ctx, sampleForm("f1", "A"))
	require.NoError(t, err)
	assert.Equal(t, "form_collided1", first.ShareID)

	second, err := store.Publish(ctx, sampleForm("f2", "B"))
	require.NoError(t, err)
	assert.Equal(t, "form_fresh0001", second.ShareID)
}

func TestStore_ResponsesAppendOnly(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())

	ts := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	recA := form.ResponseRecord{
		ID: "resp_1", Timestamp: ts, FormTitle: "Survey",
		Responses: map[string]form.Value{"1": form.Text("Alice")},
		Status:    form.ResponseStatusCompleted,
	}
	recB := recA
	recB.ID = "resp_2"
	recB.Responses = map[string]form.Value{"1": form.Text("Bob")}

	require.NoError(t, store.AppendResponse(ctx, "form_abc", recA))
	require.NoError(t, store.AppendResponse(ctx, "form_abc", recB))
	require.NoError(t, store.AppendResponse(ctx, "form_xyz", recA))

	got, err := store.Responses(ctx, "form_abc")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "resp_1", got[0].ID)
	assert.Equal(t, "resp_2", got[1].ID)
	assert.True(t, got[0].Responses["1"].Equal(form.Text("Alice")))
	assert.True(t, got[0].Timestamp.Equal(ts))

	all, err := store.AllResponses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Len(t, all["form_xyz"], 1)
}

func TestStore_ProgressLifecycle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())

	_, ok, err := store.Progress(ctx, "form_abc")
	require.NoError(t, err)
	assert.False(t, ok)

	values := map[string]form.Value{
		"1": form.Text("Alice"),
		"2": form.Choices("A", "B"),
	}
	require.NoError(t, store.SaveProgress(ctx, "form_abc", values))
	require.NoError(t, store.SaveProgress(ctx, "form_xyz", map[string]form.Value{"1": form.Text("Bob")}))

	got, ok, err := store.Progress(ctx, "form_abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got["1"].Equal(form.Text("Alice")))
	assert.True(t, got["2"].Equal(form.Choices("A", "B")))

	require.NoError(t, store.ClearProgress(ctx, "form_abc"))
	_, ok, err = store.Progress(ctx, "form_abc")
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing one form leaves the other untouched, and clearing an absent
	// entry is a no-op.
	_, ok, err = store.Progress(ctx, "form_xyz")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, store.ClearProgress(ctx, "form_abc"))
}

func TestShareURLs(t *testing.T) {
	assert.Equal(t, "https://forms.example/?form=form_ab12cd34e",
		storage.ShareURL("https://forms.example", "form_ab12cd34e"))
	assert.Equal(t, "https://forms.example/?form=form_ab12cd34e",
		storage.ShareURL("https://forms.example/", "form_ab12cd34e"))
	assert.Equal(t, "https://forms.example/?responses=true",
		storage.ResponsesURL("https://forms.example"))
}
