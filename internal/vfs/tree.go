package vfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Tree owns the root of a loaded namespace. It is immutable after the
// loader hands it over.
type Tree struct {
	root *Dir
}

// NewTree wraps a constructed root directory.
func NewTree(root *Dir) *Tree {
	return &Tree{root: root}
}

// Root returns the root directory.
func (t *Tree) Root() *Dir { return t.root }

// Resolve resolves a path from the root.
func (t *Tree) Resolve(path string) (Node, error) {
	return Resolve(t.root, path)
}

// Walk visits n and every node below it in pre-order, directories before
// their children, children in name order.
func Walk(n Node, visit func(Node)) {
	visit(n)
	dir, ok := n.(*Dir)
	if !ok {
		return
	}
	for _, entry := range dir.Entries() {
		child, _ := dir.Child(entry.Name)
		Walk(child, visit)
	}
}

// Stats summarizes a subtree for diagnostic output.
type Stats struct {
	Files int `json:"files"`
	Dirs  int `json:"dirs"`
}

// Describe counts files and directories in the subtree rooted at n,
// including n itself. Pure pre-order walk, no side effects.
func Describe(n Node) Stats {
	var stats Stats
	Walk(n, func(node Node) {
		if node.Kind() == KindDir {
			stats.Dirs++
		} else {
			stats.Files++
		}
	})
	return stats
}

// Glob returns the canonical paths under base whose path relative to base
// matches the doublestar pattern ("**" spans directories). Results are
// sorted; base itself is never a match.
func Glob(base Node, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%q: %w", pattern, ErrBadPattern)
	}
	prefix := base.Path()
	if prefix != "/" {
		prefix += "/"
	}
	var matches []string
	Walk(base, func(n Node) {
		path := n.Path()
		rel, ok := strings.CutPrefix(path, prefix)
		if !ok || rel == "" {
			return
		}
		// Pattern validated above, so Match cannot fail here.
		if matched, _ := doublestar.Match(pattern, rel); matched {
			matches = append(matches, path)
		}
	})
	sort.Strings(matches)
	return matches, nil
}
