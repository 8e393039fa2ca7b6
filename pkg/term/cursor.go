// Package term provides low-level terminal control: cursor movement,
// resets, screen clearing and positioned printing, plus detection of
// whether styled output is appropriate for the current terminal.
package term

import (
	"fmt"
	"io"

	"github.com/jhoelz/fancyio/pkg/sgr"
)

// Cursor movement sequences. A count of zero or less yields the empty
// string so callers can pass computed offsets unconditionally.
func CursorUpSeq(n int) string    { return moveSeq(n, 'A') }
func CursorDownSeq(n int) string  { return moveSeq(n, 'B') }
func CursorRightSeq(n int) string { return moveSeq(n, 'C') }
func CursorLeftSeq(n int) string  { return moveSeq(n, 'D') }

func moveSeq(n int, direction byte) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%s[%d%c", sgr.ESC, n, direction)
}

// ClearScreenSeq clears the screen and homes the cursor.
func ClearScreenSeq() string {
	return sgr.ESC + "[2J" + sgr.ESC + "[H"
}

// ResetAll writes a reset-all sequence so following output inherits no
// colors or styles.
func ResetAll(w io.Writer) {
	fmt.Fprint(w, sgr.ResetAll.Esc.Sequence())
}

// LineBreaks writes n empty lines.
func LineBreaks(w io.Writer, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprintln(w)
	}
}
