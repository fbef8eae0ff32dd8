package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds the tree used across the package tests:
//
//	/
//	├── bin/
//	│   └── ls            (base64 "binary")
//	├── home/
//	│   └── user/
//	│       ├── notes/
//	│       └── readme.txt  ("hi")
//	└── motd              ("welcome")
func fixture(t *testing.T) *Tree {
	t.Helper()
	root := NewRoot()

	bin, err := root.AddDir("bin")
	require.NoError(t, err)
	_, err = bin.AddFile("ls", NewContent(EncodingBase64, "YmluYXJ5"))
	require.NoError(t, err)

	home, err := root.AddDir("home")
	require.NoError(t, err)
	user, err := home.AddDir("user")
	require.NoError(t, err)
	_, err = user.AddDir("notes")
	require.NoError(t, err)
	_, err = user.AddFile("readme.txt", NewContent(EncodingText, "hi"))
	require.NoError(t, err)

	_, err = root.AddFile("motd", NewContent(EncodingText, "welcome"))
	require.NoError(t, err)

	return NewTree(root)
}

func TestCanonicalPaths(t *testing.T) {
	tree := fixture(t)

	assert.Equal(t, "/", tree.Root().Path())

	node, err := tree.Resolve("/home/user/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/readme.txt", node.Path())
	assert.Equal(t, "readme.txt", node.Name())
	assert.Equal(t, KindFile, node.Kind())

	node, err = tree.Resolve("/home/user")
	require.NoError(t, err)
	assert.Equal(t, "/home/user", node.Path())
	assert.Equal(t, KindDir, node.Kind())
}

func TestUniquePaths(t *testing.T) {
	tree := fixture(t)

	seen := make(map[string]bool)
	Walk(tree.Root(), func(n Node) {
		assert.False(t, seen[n.Path()], "duplicate canonical path %s", n.Path())
		seen[n.Path()] = true
	})
	assert.Len(t, seen, 8)
}

func TestEntriesSorted(t *testing.T) {
	tree := fixture(t)

	entries := tree.Root().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []Entry{
		{Name: "bin", Kind: KindDir},
		{Name: "home", Kind: KindDir},
		{Name: "motd", Kind: KindFile},
	}, entries)
}

func TestDuplicateSibling(t *testing.T) {
	root := NewRoot()
	_, err := root.AddDir("dup")
	require.NoError(t, err)

	_, err = root.AddFile("dup", NewContent(EncodingText, ""))
	assert.Error(t, err)

	_, err = root.AddDir("dup")
	assert.Error(t, err)

	// Failed inserts leave the directory unchanged.
	assert.Equal(t, 1, root.Len())
}

func TestInvalidEntryNames(t *testing.T) {
	root := NewRoot()

	_, err := root.AddDir("")
	assert.Error(t, err)

	_, err = root.AddFile("a/b", NewContent(EncodingText, ""))
	assert.Error(t, err)
}

func TestParentLinks(t *testing.T) {
	tree := fixture(t)

	node, err := tree.Resolve("/home/user/notes")
	require.NoError(t, err)

	parent := node.Parent()
	require.NotNil(t, parent)
	assert.Equal(t, "/home/user", parent.Path())
	assert.Nil(t, tree.Root().Parent())
}
