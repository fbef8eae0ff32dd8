package vfsdoc

import "errors"

// Loader failures are fatal to construction and surface whole to the
// caller; a partially built tree is never handed out.
var (
	// ErrIO indicates an unreadable or missing source.
	ErrIO = errors.New("source unreadable")

	// ErrFormat indicates a syntactically malformed document or a
	// top-level shape that cannot represent the namespace root.
	ErrFormat = errors.New("malformed document")

	// ErrStructure indicates a well-formed document violating structural
	// constraints: a missing name attribute, a duplicate sibling name, or
	// in strict mode an unknown element kind.
	ErrStructure = errors.New("invalid document structure")
)
