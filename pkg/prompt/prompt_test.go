package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/term"
)

// testEngine returns an engine fed by the scripted input whose exit calls
// are recorded instead of terminating the test process.
func testEngine(input string) (*Engine, *bytes.Buffer, *[]int) {
	out := &bytes.Buffer{}
	exits := &[]int{}
	e := New(strings.NewReader(input), out)
	e.exit = func(code int) { *exits = append(*exits, code) }
	return e, out, exits
}

func TestInputValid(t *testing.T) {
	e, out, _ := testEngine("hello\n")
	got, cmd, err := e.Input("Q: ", "<c>", nil, Options{ValidMark: "<g>"})
	require.NoError(t, err)
	require.Nil(t, cmd)
	assert.Equal(t, "hello", got)

	// One in-place mark: cursor up one line, right by the visible prompt
	// width, then the marked text.
	assert.Equal(t, 1, strings.Count(out.String(), term.CursorUpSeq(1)))
	assert.Contains(t, out.String(), term.CursorRightSeq(3))
	assert.Contains(t, out.String(), "hello")
}

func TestPromptBracketsMustBeEscaped(t *testing.T) {
	// Prompts are format strings, so a bare bracket is a mismatch; the
	// escaped form renders as the literal character.
	e, out, _ := testEngine("x\n")
	_, _, err := e.Input("> ", "", nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBracketMismatch))

	got, _, err := e.Input(`\> `, "", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "x", got)
	assert.Contains(t, out.String(), "> ")
}

func TestInputRetriesEmptyLines(t *testing.T) {
	e, out, _ := testEngine("\n\nok\n")
	got, cmd, err := e.Input(`\> `, "", nil, Options{})
	require.NoError(t, err)
	require.Nil(t, cmd)
	assert.Equal(t, "ok", got)
	// The prompt is shown again for every silent retry.
	assert.Equal(t, 3, strings.Count(out.String(), "> "))
}

func TestInputAllowEmpty(t *testing.T) {
	e, _, _ := testEngine("\n")
	got, cmd, err := e.Input(`\> `, "", nil, Options{AllowEmpty: true})
	require.NoError(t, err)
	require.Nil(t, cmd)
	assert.Equal(t, "", got)
}

func TestInputValidatorRetry(t *testing.T) {
	validate := func(s string) string {
		if s == "bad" {
			return "<r>no good"
		}
		return ""
	}
	e, out, _ := testEngine("bad\ngood\n")
	got, cmd, err := e.Input(`\> `, "", validate, Options{InvalidMark: "<r>"})
	require.NoError(t, err)
	require.Nil(t, cmd)
	assert.Equal(t, "good", got)
	assert.Contains(t, out.String(), "no good")
	// Two marks: the rejected line and the accepted one would be two, but
	// no ValidMark is configured, so only the invalid mark moved the cursor.
	assert.Equal(t, 1, strings.Count(out.String(), term.CursorUpSeq(1)))
}

func TestInputFold(t *testing.T) {
	e, out, _ := testEngine("MiXeD\n")
	got, _, err := e.Input(`\> `, "", nil, Options{ValidMark: "<g>", Fold: FoldLower})
	require.NoError(t, err)
	assert.Equal(t, "MiXeD", got)
	assert.Contains(t, out.String(), "mixed")
}

func TestCommandMatch(t *testing.T) {
	e, out, _ := testEngine("/help colors now\n")
	got, cmd, err := e.Input(`\> `, "", nil, Options{
		Commands:    []string{"/help", "/quit"},
		CommandMark: "<b>",
	})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "", got)
	assert.Equal(t, "/help", cmd.Name)
	assert.Equal(t, "/help colors now", cmd.Input)
	assert.Equal(t, []string{"/help", "colors", "now"}, cmd.Args)
	assert.Equal(t, "colors now", cmd.Rest)
	assert.Equal(t, 1, strings.Count(out.String(), term.CursorUpSeq(1)))
}

func TestCommandCaseFold(t *testing.T) {
	e, _, _ := testEngine("/QUIT\n")
	_, cmd, err := e.Input(`\> `, "", nil, Options{
		Commands:     []string{"/quit"},
		FoldSpecials: true,
	})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	// The canonical spelling is reported, not the typed one.
	assert.Equal(t, "/quit", cmd.Name)
}

func TestExitCode(t *testing.T) {
	cleanups := 0
	e, _, exits := testEngine("quit\n")
	_, cmd, err := e.Input(`\> `, "", nil, Options{
		ExitCodes:  []string{"quit"},
		BeforeExit: func() { cleanups++ },
	})
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, cleanups, "cleanup callback must run exactly once")
	assert.Equal(t, []int{0}, *exits)
}

func TestEmptyExitCodeDisablesRetry(t *testing.T) {
	e, _, exits := testEngine("\n")
	_, _, err := e.Input(`\> `, "", nil, Options{ExitCodes: []string{""}})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, *exits)
}

func TestInputYN(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		ignoreCase bool
		want       bool
	}{
		{"yes exact", "y\n", false, true},
		{"no exact", "n\n", false, false},
		{"yes folded", "Y\n", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out, _ := testEngine(tt.input)
			got, cmd, err := e.InputYN("? ", "", "y", "n", tt.ignoreCase, Options{
				YesMark: "<g>",
				NoMark:  "<r>",
			})
			require.NoError(t, err)
			require.Nil(t, cmd)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, strings.Count(out.String(), term.CursorUpSeq(1)),
				"exactly one in-place mark")
		})
	}
}

func TestInputYNInvalidThenValid(t *testing.T) {
	e, out, _ := testEngine("maybe\nn\n")
	got, _, err := e.InputYN("? ", "", "y", "n", false, Options{})
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "Invalid input. Enter 'y' or 'n'.")
}

func TestInputYNCaseSensitive(t *testing.T) {
	e, _, _ := testEngine("Y\ny\n")
	got, _, err := e.InputYN("? ", "", "y", "n", false, Options{})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestInputInt(t *testing.T) {
	e, out, _ := testEngine("abc\n42\n7\n")
	got, cmd, err := e.InputInt(IntRange{Min: Bound(1), Max: Bound(10)}, "n: ", "", nil, Options{})
	require.NoError(t, err)
	require.Nil(t, cmd)
	assert.Equal(t, 7, got)
	assert.Contains(t, out.String(), "Input must be an integer.")
	assert.Contains(t, out.String(), "Input integer out of range (1–10).")
}

func TestInputIntOpenRange(t *testing.T) {
	e, _, _ := testEngine("-5\n")
	got, _, err := e.InputInt(IntRange{Max: Bound(0)}, "n: ", "", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, -5, got)
}

func TestInputIntValidator(t *testing.T) {
	validate := func(n int) string {
		if n%2 != 0 {
			return "<r>even numbers only"
		}
		return ""
	}
	e, out, _ := testEngine("3\n4\n")
	got, _, err := e.InputInt(IntRange{}, "n: ", "", validate, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Contains(t, out.String(), "even numbers only")
}

func TestInputIntBadRange(t *testing.T) {
	e, _, _ := testEngine("")
	_, _, err := e.InputInt(IntRange{Min: Bound(5), Max: Bound(1)}, "n: ", "", nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptConfig))
}

func TestInputIntCustomRangeMessage(t *testing.T) {
	e, out, _ := testEngine("99\n5\n")
	opts := Options{OutOfRangeMsg: `Pick * to *, not \*`}
	got, _, err := e.InputInt(IntRange{Min: Bound(1), Max: Bound(10)}, "n: ", "", nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Contains(t, out.String(), "Pick 1 to 10, not *")
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "a 1 b 2", substitute("a * b *", "1", "2"))
	assert.Equal(t, "* 1", substitute(`\* *`, "1"))
	assert.Equal(t, "none", substitute("none", "1"))
}
