package vfs

import (
	"fmt"
	"strings"
)

// Resolve maps a path string to a node, starting from start for relative
// paths and from the root for absolute ones.
//
// Segments are consumed strictly left to right with no backtracking. Empty
// and "." segments are no-ops, ".." ascends and stays in place at the root.
// A named segment requires the current node to be a directory containing a
// child of that exact name; both "no such entry" and "cannot descend
// through a file" report ErrNotFound, with the reason in the message.
//
// The empty path resolves to start unchanged; "/" resolves to the root.
func Resolve(start Node, path string) (Node, error) {
	cur := start
	if strings.HasPrefix(path, "/") {
		cur = rootOf(start)
	}
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			// no-op
		case "..":
			if parent := cur.Parent(); parent != nil {
				cur = parent
			}
		default:
			dir, ok := cur.(*Dir)
			if !ok {
				return nil, fmt.Errorf("%s: %q is a file, cannot descend: %w", path, cur.Name(), ErrNotFound)
			}
			child, ok := dir.Child(seg)
			if !ok {
				return nil, fmt.Errorf("%s: no entry %q in %s: %w", path, seg, dir.Path(), ErrNotFound)
			}
			cur = child
		}
	}
	return cur, nil
}
