// Package template manages named, reusable field-set snapshots: builtin
// seeds, YAML/JSON seed files, and custom templates persisted through the
// storage gateway under slug keys.
package template
