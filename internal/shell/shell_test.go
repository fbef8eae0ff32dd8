package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfsemu/vfsemu/internal/infrastructure/logging"
	"github.com/vfsemu/vfsemu/internal/vfs"
)

func testTree(t *testing.T) *vfs.Tree {
	t.Helper()
	root := vfs.NewRoot()
	home, err := root.AddDir("home")
	require.NoError(t, err)
	user, err := home.AddDir("user")
	require.NoError(t, err)
	_, err = user.AddFile("readme.txt", vfs.NewContent(vfs.EncodingText, "hi"))
	require.NoError(t, err)
	_, err = root.AddDir("tmp")
	require.NoError(t, err)
	return vfs.NewTree(root)
}

func testShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	nav := vfs.NewContext(testTree(t))
	sh := New(nav, &out, Info{VFSPath: "test.xml"}, logging.NewNop())
	return sh, &out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line string
		cmd  string
		args []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"pwd", "pwd", nil},
		{"cd /home/user", "cd", []string{"/home/user"}},
		{`cat "my file.txt"`, "cat", []string{"my file.txt"}},
		{`echo 'single quoted' plain`, "echo", []string{"single quoted", "plain"}},
		{`echo "it's fine"`, "echo", []string{"it's fine"}},
		{`echo "unterminated`, "echo", []string{"unterminated"}},
		{`echo ""`, "echo", []string{""}},
	}
	for _, tt := range tests {
		cmd, args := Split(tt.line)
		assert.Equal(t, tt.cmd, cmd, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}
}

func TestExecutePwdCdLs(t *testing.T) {
	sh, out := testShell(t)

	require.NoError(t, sh.Execute("pwd"))
	assert.Equal(t, "/\n", out.String())
	out.Reset()

	require.NoError(t, sh.Execute("cd home/user"))
	require.NoError(t, sh.Execute("pwd"))
	assert.Equal(t, "/home/user\n", out.String())
	out.Reset()

	require.NoError(t, sh.Execute("ls /"))
	assert.Equal(t, "home/  tmp/\n", out.String())
}

func TestExecuteCat(t *testing.T) {
	sh, out := testShell(t)

	require.NoError(t, sh.Execute("cat /home/user/readme.txt"))
	assert.Equal(t, "hi\n", out.String())

	err := sh.Execute("cat /home")
	assert.ErrorIs(t, err, vfs.ErrNotAFile)

	err = sh.Execute("cat")
	assert.Error(t, err)
}

func TestExecuteUnknownCommand(t *testing.T) {
	sh, _ := testShell(t)

	err := sh.Execute("frobnicate")
	assert.ErrorContains(t, err, "unknown command")

	// The shell survives and keeps its cursor.
	require.NoError(t, sh.Execute("pwd"))
}

func TestExecuteCaseInsensitiveCommand(t *testing.T) {
	sh, out := testShell(t)

	require.NoError(t, sh.Execute("PWD"))
	assert.Equal(t, "/\n", out.String())
}

func TestExecuteVFSInfo(t *testing.T) {
	sh, out := testShell(t)

	require.NoError(t, sh.Execute("vfsinfo"))
	assert.Contains(t, out.String(), "Source: test.xml")
	assert.Contains(t, out.String(), "Directories: 4")
	assert.Contains(t, out.String(), "Files: 1")
}

func TestExecuteFind(t *testing.T) {
	sh, out := testShell(t)

	require.NoError(t, sh.Execute("find **/*.txt"))
	assert.Equal(t, "/home/user/readme.txt\n", out.String())
}

func TestExecuteEcho(t *testing.T) {
	sh, out := testShell(t)

	require.NoError(t, sh.Execute(`echo hello "virtual world"`))
	assert.Equal(t, "hello virtual world\n", out.String())
}

func TestRunLoop(t *testing.T) {
	sh, out := testShell(t)

	input := strings.Join([]string{
		"cd home",
		"pwd",
		"nosuchcmd",
		"pwd",
		"exit",
	}, "\n")
	require.NoError(t, sh.Run(strings.NewReader(input)))

	// Prompt tracks the cursor, errors are printed inline, exit stops
	// the loop.
	assert.Contains(t, out.String(), "/home$ ")
	assert.Contains(t, out.String(), "Error: unknown command")
	assert.Contains(t, out.String(), "Exiting VFS emulator...")
	assert.False(t, sh.Running())
}

func TestRunLoopEOF(t *testing.T) {
	sh, _ := testShell(t)
	require.NoError(t, sh.Run(strings.NewReader("pwd\n")))
}
