package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "startup.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunScript(t *testing.T) {
	sh, out := testShell(t)
	path := writeScript(t, `
# startup commands
cd home/user
pwd

cat readme.txt
`)

	require.NoError(t, sh.RunScript(path))

	// Commands are echoed with a "$ " prefix, comments are not.
	assert.Contains(t, out.String(), "$ cd home/user\n")
	assert.Contains(t, out.String(), "/home/user\n")
	assert.Contains(t, out.String(), "hi\n")
	assert.NotContains(t, out.String(), "startup commands")
	assert.Equal(t, "/home/user", sh.Nav().Pwd())
}

func TestRunScriptStopsOnError(t *testing.T) {
	sh, _ := testShell(t)
	path := writeScript(t, `pwd
cd /nope
pwd
`)

	err := sh.RunScript(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "line 2")

	// The failing cd left the cursor alone and the rest did not run.
	assert.Equal(t, "/", sh.Nav().Pwd())
}

func TestRunScriptMissingFile(t *testing.T) {
	sh, _ := testShell(t)
	err := sh.RunScript(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestRunScriptExit(t *testing.T) {
	sh, out := testShell(t)
	path := writeScript(t, `exit
pwd
`)

	require.NoError(t, sh.RunScript(path))
	assert.False(t, sh.Running())
	assert.NotContains(t, out.String(), "$ pwd")
}
