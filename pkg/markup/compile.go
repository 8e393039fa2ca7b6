package markup

import (
	"regexp"
	"strings"
)

// Options controls one compilation of a format string.
type Options struct {
	// Brackets is the tag delimiter pair; the zero value means "<>".
	Brackets Brackets
	// StartReset and EndReset prepend/append an implicit reset-all tag.
	StartReset bool
	EndReset   bool
}

// Render compiles a format string with default options.
func Render(text string) (string, error) {
	return Compile(text, Options{})
}

// Compile turns a format string into plain text interleaved with rendered
// escape sequences. Backslash-escaped brackets come out as literal bracket
// characters. The only errors are bracket mismatches and malformed tags.
func Compile(text string, opts Options) (string, error) {
	brackets := opts.Brackets.OrDefault()

	// Hide escaped brackets behind sentinels so they take no part in tag
	// parsing.
	text = strings.ReplaceAll(text, `\`+string(brackets.Open), string(sentinelOpen))
	text = strings.ReplaceAll(text, `\`+string(brackets.Close), string(sentinelClose))

	if err := checkBrackets(text, brackets); err != nil {
		log.Debug().Err(err).Msg("format string failed bracket validation")
		return "", err
	}

	if opts.StartReset {
		text = string(brackets.Open) + "!a" + string(brackets.Close) + text
	}
	if opts.EndReset {
		text += string(brackets.Open) + "!a" + string(brackets.Close)
	}

	re := tagPattern(brackets)
	tags := re.FindAllString(text, -1)
	spans := re.Split(text, -1)

	// Tags strictly interleave with literal spans; there is always exactly
	// one more span than tags.
	var out strings.Builder
	for i, raw := range tags {
		tag, err := ParseTag(raw, brackets)
		if err != nil {
			return "", err
		}
		out.WriteString(spans[i])
		out.WriteString(tag.FullSeq)
	}
	out.WriteString(spans[len(spans)-1])

	result := strings.ReplaceAll(out.String(), string(sentinelOpen), string(brackets.Open))
	result = strings.ReplaceAll(result, string(sentinelClose), string(brackets.Close))
	return result, nil
}

// Strip removes every tag from a format string without compiling it, and
// restores escaped brackets to literal characters. The result is what the
// compiled string looks like on screen.
func Strip(text string, brackets Brackets) string {
	brackets = brackets.OrDefault()
	text = strings.ReplaceAll(text, `\`+string(brackets.Open), string(sentinelOpen))
	text = strings.ReplaceAll(text, `\`+string(brackets.Close), string(sentinelClose))
	text = tagPattern(brackets).ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, string(sentinelOpen), string(brackets.Open))
	return strings.ReplaceAll(text, string(sentinelClose), string(brackets.Close))
}

// HasTags reports whether text contains at least one tag.
func HasTags(text string, brackets Brackets) bool {
	return tagPattern(brackets.OrDefault()).MatchString(text)
}

func tagPattern(brackets Brackets) *regexp.Regexp {
	return regexp.MustCompile(
		regexp.QuoteMeta(string(brackets.Open)) + ".*?" + regexp.QuoteMeta(string(brackets.Close)))
}
