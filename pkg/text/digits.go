package text

import "strconv"

// GroupDigits renders n with thousands separators as a format string,
// alternating a digit tag and a separator tag so the groups and the
// separators can carry different styles. The result still needs to go
// through the markup compiler.
func GroupDigits(n int64, sep string, digitTag, sepTag string) string {
	s := strconv.FormatInt(n, 10)
	neg := ""
	if s[0] == '-' {
		neg, s = "-", s[1:]
	}

	out := digitTag + neg
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	out += s[:first]
	for i := first; i < len(s); i += 3 {
		out += "<!a>" + sepTag + sep + "<!a>" + digitTag + s[i:i+3]
	}
	return out + "<!a>"
}
