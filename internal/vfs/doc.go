// Package vfs implements the in-memory virtual filesystem core.
//
// The tree is built once by the loader and is immutable afterwards, which
// makes it safe to share read-only across any number of navigation contexts
// without locking.
//
// Components:
//   - Node: sum type over *Dir and *File
//   - Resolve: pure path-to-node resolution
//   - NavContext: per-session cursor with query operations
//   - Tree: root ownership plus tree-wide walks
//
// Path semantics follow POSIX-ish rules: paths starting with "/" resolve
// from the root, "." and empty segments are no-ops, ".." ascends and is a
// no-op at the root. There are no symlinks, mounts or globs in resolution.
//
// Example Usage:
//
//	nav := vfs.NewContext(tree)
//	if err := nav.ChangeDir("home/user"); err != nil { ... }
//	names, err := nav.List("")
package vfs
