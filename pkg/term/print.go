package term

import (
	"fmt"
	"io"
	"strings"
)

// PrintShifted writes text shifted right by the given number of columns.
// Every line of a multi-line text is shifted, using relative cursor
// movement so the shift works wherever the cursor currently is.
func PrintShifted(w io.Writer, shift int, text string) {
	if shift <= 0 {
		fmt.Fprint(w, text)
		return
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		fmt.Fprint(w, CursorRightSeq(shift))
		fmt.Fprint(w, line)
		if i < len(lines)-1 {
			fmt.Fprintln(w)
		}
	}
}

// PrintIndented writes text with every line prefixed by indent. Lines that
// are entirely whitespace stay empty. skipFirst leaves the first line
// unprefixed, for continuing output on an already-indented line.
func PrintIndented(w io.Writer, indent string, skipFirst bool, text string) {
	if indent == "" {
		fmt.Fprint(w, text)
		return
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		prefix := indent
		if i == 0 && skipFirst {
			prefix = ""
		}
		if strings.TrimSpace(line) != "" {
			fmt.Fprint(w, prefix+line)
		}
		if i < len(lines)-1 {
			fmt.Fprintln(w)
		}
	}
}
