package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfsemu/vfsemu/internal/infrastructure/monitoring"
	"github.com/vfsemu/vfsemu/internal/vfs"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	root := vfs.NewRoot()
	home, err := root.AddDir("home")
	require.NoError(t, err)
	_, err = home.AddDir("user")
	require.NoError(t, err)
	return NewManager(vfs.NewTree(root)).WithMetrics(monitoring.NewMetrics())
}

func TestCreateAndGet(t *testing.T) {
	m := testManager(t)

	s := m.Create()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "/", s.Nav.Pwd())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestSessionIsolation(t *testing.T) {
	m := testManager(t)

	a := m.Create()
	b := m.Create()
	require.NoError(t, a.Nav.ChangeDir("/home/user"))

	assert.Equal(t, "/home/user", a.Nav.Pwd())
	assert.Equal(t, "/", b.Nav.Pwd())
}

func TestDelete(t *testing.T) {
	m := testManager(t)

	s := m.Create()
	assert.Equal(t, 1, m.Count())

	assert.True(t, m.Delete(s.ID))
	assert.Equal(t, 0, m.Count())
	assert.False(t, m.Delete(s.ID))
}

func TestList(t *testing.T) {
	m := testManager(t)

	first := m.Create()
	second := m.Create()
	require.NoError(t, second.Nav.ChangeDir("/home"))

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "/", list[0].Cwd)
	assert.Equal(t, "/home", list[1].Cwd)
}
