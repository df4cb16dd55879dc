// Package form defines the form document model shared by the builder, the
// persistence layer and the response collector: fields, steps, response
// values and records, the closed field-type catalog, and the per-field
// validation engine.
package form
