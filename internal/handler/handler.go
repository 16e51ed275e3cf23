// Package handler is the HTTP layer: the first entry point for the
// directory operations after the router.
//
// Request payload types declare their input sources with struct tags
// (json body, `param`, `query`, `form`, `header`, `cookie`, `file`) and
// their constraints with `validate` tags. The generic Handle pipeline
// binds and validates the payload, runs the typed operation, and writes
// the result as JSON with the declared success status. Handlers never see
// a partially bound payload.
package handler
