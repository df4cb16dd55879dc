package storage

import (
	"context"
	"errors"
)

// Bucket names for the five persisted aggregates. Each bucket holds one
// JSON document: a string-keyed mapping as described on Store.
const (
	BucketDrafts    = "formBuilderForms"
	BucketTemplates = "customFormTemplates"
	BucketShared    = "sharedForms"
	BucketResponses = "formResponses"
	BucketProgress  = "formFillerProgress"
)

// ErrStorage reports that the durable store is unavailable or rejected a
// write (quota, I/O). Callers treat it as a non-fatal notice: the in-memory
// document always survives a storage failure.
var ErrStorage = errors.New("storage: backend failure")

// Gateway is the abstract key-value store the engine persists through.
// Values are JSON-serializable aggregates keyed by bucket name. Read leaves
// into untouched when the bucket has never been written; callers initialise
// their aggregate first. Implementations wrap backend failures in
// ErrStorage.
//
// Aggregates are read-merge-written: callers always Read the full bucket,
// merge their change, and Write it back, never blind-overwrite, so
// unrelated entries survive. Access is single-threaded per the engine's
// event-driven model; gateways still guard their own state for the sake of
// the debounced progress saver, which fires from a timer goroutine.
type Gateway interface {
	Read(ctx context.Context, bucket string, into any) error
	Write(ctx context.Context, bucket string, value any) error
}
