package text

import (
	"strings"

	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

// CenterStyled centers s and applies the combi. With styleAll the filler is
// styled together with the value; otherwise only the value is wrapped and
// the filler stays plain.
func CenterStyled(s string, width int, filler string, align Alignment, c sgr.Combi, styleAll bool) string {
	length := len([]rune(s))
	if width <= length {
		return sgr.Stylize(s, c, false)
	}
	left, right := padding(length, width, align)
	if styleAll {
		return sgr.Stylize(strings.Repeat(filler, left)+s+strings.Repeat(filler, right), c, false)
	}
	return strings.Repeat(filler, left) + sgr.Stylize(s, c, false) + strings.Repeat(filler, right)
}

// PadRightStyled pads s on the right and applies the combi, to the whole
// field or just the value.
func PadRightStyled(s string, width int, filler string, c sgr.Combi, styleAll bool) string {
	spaces := width - len([]rune(s))
	if spaces <= 0 {
		return sgr.Stylize(s, c, false)
	}
	if styleAll {
		return sgr.Stylize(s+strings.Repeat(filler, spaces), c, false)
	}
	return sgr.Stylize(s, c, false) + strings.Repeat(filler, spaces)
}

// PadLeftStyled pads s on the left and applies the combi, to the whole
// field or just the value.
func PadLeftStyled(s string, width int, filler string, c sgr.Combi, styleAll bool) string {
	spaces := width - len([]rune(s))
	if spaces <= 0 {
		return sgr.Stylize(s, c, false)
	}
	if styleAll {
		return sgr.Stylize(strings.Repeat(filler, spaces)+s, c, false)
	}
	return strings.Repeat(filler, spaces) + sgr.Stylize(s, c, false)
}

// CenterMarkup compiles a format string and centers the result by its
// visible width, so the invisible escape bytes do not skew the filler.
func CenterMarkup(format string, width int, filler string, align Alignment, opts markup.Options) (string, error) {
	rendered, err := markup.Compile(format, opts)
	if err != nil {
		return "", err
	}
	length := len([]rune(sgr.StripEscapes(rendered)))
	if width <= length {
		return rendered, nil
	}
	left, right := padding(length, width, align)
	return strings.Repeat(filler, left) + rendered + strings.Repeat(filler, right), nil
}
