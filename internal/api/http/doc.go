// Package http provides the REST surface over the virtual filesystem.
//
// Every navigation operation is scoped to a session created via
// POST /sessions; sessions share one immutable tree and own independent
// cursors. Navigation failures map to 404 (unresolved path), 400 (kind
// mismatch, bad input) or 422 (payload decode) and never to 500.
package http
