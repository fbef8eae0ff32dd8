package vfs

import "fmt"

// NavContext is a per-session cursor over a shared immutable tree. Each
// session owns its context exclusively; the tree itself needs no locking.
type NavContext struct {
	tree *Tree
	cwd  *Dir
}

// NewContext creates a context with the cursor at the root.
func NewContext(tree *Tree) *NavContext {
	return &NavContext{tree: tree, cwd: tree.Root()}
}

// Tree returns the underlying shared tree.
func (nc *NavContext) Tree() *Tree { return nc.tree }

// Pwd returns the canonical path of the cursor.
func (nc *NavContext) Pwd() string { return nc.cwd.Path() }

// Cwd returns the cursor directory.
func (nc *NavContext) Cwd() *Dir { return nc.cwd }

// ChangeDir resolves path against the cursor and moves the cursor there.
// The cursor is untouched on any failure.
func (nc *NavContext) ChangeDir(path string) error {
	node, err := Resolve(nc.cwd, path)
	if err != nil {
		return err
	}
	dir, ok := node.(*Dir)
	if !ok {
		return fmt.Errorf("%s: %w", node.Path(), ErrNotADirectory)
	}
	nc.cwd = dir
	return nil
}

// resolve resolves path against the cursor, with the empty path meaning
// the cursor itself.
func (nc *NavContext) resolve(path string) (Node, error) {
	if path == "" {
		return nc.cwd, nil
	}
	return Resolve(nc.cwd, path)
}

// List returns the sorted child names of the directory at path (the cursor
// when path is empty). Directory entries carry a trailing "/" marker for
// display; the sort key is the bare name.
func (nc *NavContext) List(path string) ([]string, error) {
	node, err := nc.resolve(path)
	if err != nil {
		return nil, err
	}
	dir, ok := node.(*Dir)
	if !ok {
		return nil, fmt.Errorf("%s: %w", node.Path(), ErrNotADirectory)
	}
	entries := dir.Entries()
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
		if entry.Kind == KindDir {
			names[i] += "/"
		}
	}
	return names, nil
}

// ReadFile returns the decoded payload of the file at path.
func (nc *NavContext) ReadFile(path string) ([]byte, error) {
	node, err := nc.resolve(path)
	if err != nil {
		return nil, err
	}
	file, ok := node.(*File)
	if !ok {
		return nil, fmt.Errorf("%s: %w", node.Path(), ErrNotAFile)
	}
	return file.Content().Bytes()
}

// Describe counts files and directories below path (the cursor when path
// is empty), the node itself included.
func (nc *NavContext) Describe(path string) (Stats, error) {
	node, err := nc.resolve(path)
	if err != nil {
		return Stats{}, err
	}
	return Describe(node), nil
}

// Glob matches pattern against paths below the directory at path.
func (nc *NavContext) Glob(path, pattern string) ([]string, error) {
	node, err := nc.resolve(path)
	if err != nil {
		return nil, err
	}
	if _, ok := node.(*Dir); !ok {
		return nil, fmt.Errorf("%s: %w", node.Path(), ErrNotADirectory)
	}
	return Glob(node, pattern)
}
