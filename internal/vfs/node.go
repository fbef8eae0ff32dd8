package vfs

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the two node kinds.
type Kind uint8

const (
	// KindDir marks a directory node.
	KindDir Kind = iota
	// KindFile marks a file node.
	KindFile
)

// String returns the kind as a display word.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is a single entry in the virtual tree, either a *Dir or a *File.
type Node interface {
	// Name returns the entry name. The root's name is empty.
	Name() string
	// Parent returns the enclosing directory, nil for the root.
	Parent() *Dir
	// Kind returns the node kind.
	Kind() Kind
	// Path returns the canonical absolute path, "/" for the root.
	Path() string
}

// Dir is a directory node owning its children by name.
type Dir struct {
	name     string
	parent   *Dir
	children map[string]Node
}

// File is a file node carrying an encoded payload.
type File struct {
	name    string
	parent  *Dir
	content Content
}

// NewRoot creates an empty root directory.
func NewRoot() *Dir {
	return &Dir{children: make(map[string]Node)}
}

// Name returns the directory name.
func (d *Dir) Name() string { return d.name }

// Parent returns the enclosing directory, nil for the root.
func (d *Dir) Parent() *Dir { return d.parent }

// Kind returns KindDir.
func (d *Dir) Kind() Kind { return KindDir }

// Path returns the canonical path of the directory.
func (d *Dir) Path() string { return nodePath(d) }

// Child looks up a direct child by exact name.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Len returns the number of direct children.
func (d *Dir) Len() int { return len(d.children) }

// Entry describes a direct child for enumeration.
type Entry struct {
	Name string
	Kind Kind
}

// Entries returns the direct children sorted lexicographically by name.
func (d *Dir) Entries() []Entry {
	entries := make([]Entry, 0, len(d.children))
	for name, child := range d.children {
		entries = append(entries, Entry{Name: name, Kind: child.Kind()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// AddDir creates a child directory. Sibling names must be unique.
func (d *Dir) AddDir(name string) (*Dir, error) {
	if err := d.reserve(name); err != nil {
		return nil, err
	}
	child := &Dir{name: name, parent: d, children: make(map[string]Node)}
	d.children[name] = child
	return child, nil
}

// AddFile creates a child file with the given payload.
func (d *Dir) AddFile(name string, content Content) (*File, error) {
	if err := d.reserve(name); err != nil {
		return nil, err
	}
	child := &File{name: name, parent: d, content: content}
	d.children[name] = child
	return child, nil
}

func (d *Dir) reserve(name string) error {
	if name == "" {
		return fmt.Errorf("empty entry name in %s", d.Path())
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("entry name %q contains a separator", name)
	}
	if _, exists := d.children[name]; exists {
		return fmt.Errorf("duplicate entry %q in %s", name, d.Path())
	}
	return nil
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Parent returns the enclosing directory.
func (f *File) Parent() *Dir { return f.parent }

// Kind returns KindFile.
func (f *File) Kind() Kind { return KindFile }

// Path returns the canonical path of the file.
func (f *File) Path() string { return nodePath(f) }

// Content returns the encoded payload.
func (f *File) Content() Content { return f.content }

// nodePath renders the canonical path by walking parent references to the
// root and joining names with "/". The root's own name never appears.
func nodePath(n Node) string {
	if n.Parent() == nil {
		return "/"
	}
	var names []string
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		names = append(names, cur.Name())
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

// rootOf walks parent references up to the tree root.
func rootOf(n Node) Node {
	cur := n
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	return cur
}
