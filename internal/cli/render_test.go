package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	// An empty config dir keeps the user's real config out of the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "render", "--format", "term", "<r>ERROR<!a>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mERROR\x1b[0m\n", out)
}

func TestRenderCommandPlainFormat(t *testing.T) {
	out, _, err := execute(t, "render", "--format", "text", "<r>ERROR<!a>")
	require.NoError(t, err)
	assert.Equal(t, "ERROR\n", out)
}

func TestRenderCommandCustomBrackets(t *testing.T) {
	out, _, err := execute(t, "render", "--format", "term", "--brackets", "{}", "{g}ok{!a}")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mok\x1b[0m\n", out)
}

func TestRenderCommandDiagnostics(t *testing.T) {
	_, errOut, err := execute(t, "render", "--format", "term", "oops > here")
	require.Error(t, err)
	assert.Contains(t, errOut, "Unmatched closed tag bracket")
	assert.Contains(t, errOut, "Hint: Use backslashes to escape tag brackets.")
}

func TestModesCommand(t *testing.T) {
	out, _, err := execute(t, "modes")
	require.NoError(t, err)
	assert.Contains(t, out, "RED")
	assert.Contains(t, out, "BOLD")
	assert.Contains(t, out, "RESET_ALL")
}

func TestRootWithoutCommandFails(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no command specified"))
}
