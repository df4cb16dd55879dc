// Package storage implements the persistence and sharing gateway: an
// abstract JSON key-value Gateway with in-memory and sqlite backends, and a
// typed Store handling drafts, published snapshots, collected responses and
// fill progress with read-merge-write semantics.
package storage
