package vfs

import "errors"

// Navigation and query failures are ordinary result values. They never
// abort the process and never corrupt a cursor or the tree.
var (
	// ErrNotFound indicates a path that does not resolve to any node.
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotADirectory indicates a directory operation on a file node.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotAFile indicates a file operation on a directory node.
	ErrNotAFile = errors.New("not a file")

	// ErrDecode indicates a payload that fails to decode per its
	// declared encoding.
	ErrDecode = errors.New("content decode failed")

	// ErrBadPattern indicates an invalid glob pattern.
	ErrBadPattern = errors.New("bad pattern")
)
