// Package collect implements the response collector: a per-fill session
// state machine that validates submissions against a published form,
// persists completed response records, and auto-saves fill progress behind
// a debounce window.
package collect
