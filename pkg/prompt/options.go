package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/markup"
)

// InputMap prompts until the line matches a key of options and returns the
// mapped value. The matched key is re-marked in its canonical spelling
// with the tag from optionMarks, falling back to ValidMark. A custom
// InvalidMsg may carry one '*' placeholder for the rejected input. An
// empty-string key makes the empty line a valid answer.
func InputMap[T any](e *Engine, options map[string]T, promptFormat, inputTag string, ignoreCase bool, validate func(T) string, optionMarks map[string]string, opts Options) (T, *Command, error) {
	var zero T
	if len(options) == 0 {
		return zero, nil, errors.New(errors.ErrPromptConfig, "options map is empty")
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	emptyAnswers := []string(nil)
	if _, ok := options[""]; ok {
		emptyAnswers = []string{""}
	}

	s, err := e.newSession(promptFormat, inputTag, opts, emptyAnswers)
	if err != nil {
		return zero, nil, err
	}
	for {
		line, cmd, exited, err := s.next()
		if err != nil || cmd != nil || exited {
			return zero, cmd, err
		}
		key, ok := matchKey(line, keys, ignoreCase)
		if ok {
			value := options[key]
			msg := ""
			if validate != nil {
				msg = validate(value)
			}
			if msg == "" {
				if err := s.mark(markFor(key, optionMarks, opts.ValidMark), key); err != nil {
					return zero, nil, err
				}
				return value, nil, nil
			}
			if err := s.fail(line, msg); err != nil {
				return zero, nil, err
			}
			continue
		}
		if err := s.fail(line, mapInvalidMsg(opts.InvalidMsg, line, keys)); err != nil {
			return zero, nil, err
		}
	}
}

// InputOptions prompts until the line matches the stripped text of one of
// the option display strings and returns the value at the same index. The
// matched display string itself, markup included, is re-rendered over the
// input. Display strings without markup inherit the input tag.
func InputOptions[T any](e *Engine, optionFormats []string, returns []T, promptFormat, inputTag string, ignoreCase bool, opts Options) (T, *Command, error) {
	var zero T
	if len(optionFormats) == 0 {
		return zero, nil, errors.New(errors.ErrPromptConfig, "option list is empty")
	}
	if len(optionFormats) != len(returns) {
		return zero, nil, errors.Newf(errors.ErrPromptConfig,
			"%d option formats but %d return values", len(optionFormats), len(returns))
	}

	brackets := opts.Brackets.OrDefault()
	stripped := make([]string, len(optionFormats))
	for i, f := range optionFormats {
		stripped[i] = markup.Strip(f, brackets)
	}

	emptyAnswers := []string(nil)
	for _, s := range stripped {
		if s == "" {
			emptyAnswers = []string{""}
			break
		}
	}

	s, err := e.newSession(promptFormat, inputTag, opts, emptyAnswers)
	if err != nil {
		return zero, nil, err
	}
	for {
		line, cmd, exited, err := s.next()
		if err != nil || cmd != nil || exited {
			return zero, cmd, err
		}
		if i, ok := matchIndex(line, stripped, ignoreCase); ok {
			if err := s.markOption(optionFormats[i], inputTag); err != nil {
				return zero, nil, err
			}
			return returns[i], nil, nil
		}
		msg := opts.InvalidMsg
		if msg == "" {
			msg = fmt.Sprintf("<r>Invalid input. Choose one of these options: %s.<!a>", quoteList(stripped))
		} else {
			msg = substitute(msg, line)
		}
		if err := s.fail(line, msg); err != nil {
			return zero, nil, err
		}
	}
}

func matchKey(line string, keys []string, ignoreCase bool) (string, bool) {
	for _, k := range keys {
		if equal(line, k, ignoreCase) {
			return k, true
		}
	}
	return "", false
}

func matchIndex(line string, candidates []string, ignoreCase bool) (int, bool) {
	for i, c := range candidates {
		if equal(line, c, ignoreCase) {
			return i, true
		}
	}
	return 0, false
}

func markFor(key string, optionMarks map[string]string, fallback string) string {
	if tag, ok := optionMarks[key]; ok {
		return tag
	}
	return fallback
}

func mapInvalidMsg(custom, line string, keys []string) string {
	if custom != "" {
		return substitute(custom, line)
	}
	return fmt.Sprintf("<i,r>Invalid input. Choose one of these options: %s.<!a>", quoteList(keys))
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
