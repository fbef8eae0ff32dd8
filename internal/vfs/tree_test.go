package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkOrder(t *testing.T) {
	tree := fixture(t)

	var paths []string
	Walk(tree.Root(), func(n Node) { paths = append(paths, n.Path()) })

	assert.Equal(t, []string{
		"/",
		"/bin",
		"/bin/ls",
		"/home",
		"/home/user",
		"/home/user/notes",
		"/home/user/readme.txt",
		"/motd",
	}, paths)
}

func TestGlob(t *testing.T) {
	tree := fixture(t)

	matches, err := Glob(tree.Root(), "**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/user/readme.txt"}, matches)

	matches, err = Glob(tree.Root(), "*")
	require.NoError(t, err)
	assert.Equal(t, []string{"/bin", "/home", "/motd"}, matches)

	matches, err = Glob(tree.Root(), "home/**")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/home/user",
		"/home/user/notes",
		"/home/user/readme.txt",
	}, matches)
}

func TestGlobRelativeBase(t *testing.T) {
	tree := fixture(t)
	base, err := tree.Resolve("/home")
	require.NoError(t, err)

	matches, err := Glob(base, "user/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/user/notes", "/home/user/readme.txt"}, matches)
}

func TestGlobBadPattern(t *testing.T) {
	tree := fixture(t)

	_, err := Glob(tree.Root(), "[")
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestStat(t *testing.T) {
	nav := NewContext(fixture(t))

	info, err := nav.Stat("/home/user/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "readme.txt", info.Name)
	assert.Equal(t, "file", info.Kind)
	assert.Equal(t, 2, info.Size)
	assert.Equal(t, "text", info.Encoding)
	assert.NotEmpty(t, info.MIME)

	info, err = nav.Stat("/home")
	require.NoError(t, err)
	assert.Equal(t, "directory", info.Kind)
	assert.Equal(t, 1, info.Entries)
	assert.Empty(t, info.MIME)

	_, err = nav.Stat("/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
