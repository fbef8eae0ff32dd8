package vfsdoc

import (
	"fmt"

	"github.com/vfsemu/vfsemu/internal/vfs"
)

// node is the decoded, format-neutral shape every parser produces before
// the tree is built. JSON and YAML documents decode straight into it.
type node struct {
	Type     string `json:"type" yaml:"type"`
	Name     string `json:"name" yaml:"name"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Content  string `json:"content,omitempty" yaml:"content,omitempty"`
	Children []node `json:"children,omitempty" yaml:"children,omitempty"`
}

const (
	typeDir  = "dir"
	typeFile = "file"
)

// build turns a decoded root into a tree, enforcing the structural
// invariants. The root node stands for the synthetic empty-named root
// directory; its own name and content are ignored.
func build(root node, opts Options) (*vfs.Tree, error) {
	if root.Type != "" && root.Type != typeDir {
		return nil, fmt.Errorf("top-level element is a %q, not a directory: %w", root.Type, ErrFormat)
	}
	dir := vfs.NewRoot()
	if err := populate(dir, root.Children, opts); err != nil {
		return nil, err
	}
	return vfs.NewTree(dir), nil
}

func populate(dir *vfs.Dir, children []node, opts Options) error {
	for _, child := range children {
		switch child.Type {
		case typeDir:
			if child.Name == "" {
				return fmt.Errorf("directory without name in %s: %w", dir.Path(), ErrStructure)
			}
			sub, err := dir.AddDir(child.Name)
			if err != nil {
				return fmt.Errorf("%v: %w", err, ErrStructure)
			}
			if err := populate(sub, child.Children, opts); err != nil {
				return err
			}
		case typeFile:
			if child.Name == "" {
				return fmt.Errorf("file without name in %s: %w", dir.Path(), ErrStructure)
			}
			encoding, err := vfs.ParseEncoding(child.Encoding)
			if err != nil {
				return fmt.Errorf("file %q: %v: %w", child.Name, err, ErrStructure)
			}
			if len(child.Children) > 0 {
				return fmt.Errorf("file %q declares children: %w", child.Name, ErrStructure)
			}
			if _, err := dir.AddFile(child.Name, vfs.NewContent(encoding, child.Content)); err != nil {
				return fmt.Errorf("%v: %w", err, ErrStructure)
			}
		default:
			if opts.Strict {
				return fmt.Errorf("unknown element %q in %s: %w", child.Type, dir.Path(), ErrStructure)
			}
			// Lenient mode: unrecognized declarations are dropped.
		}
	}
	return nil
}
