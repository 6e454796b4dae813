package snapshot

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggsnap/ui"
)

// Identifier appends the constrained dimensions of size to id:
// "<id>_w<W>_h<H>", omitting a segment whose component is zero.
func Identifier(id string, size ui.Size) string {
	var b strings.Builder
	b.WriteString(id)
	if size.W != 0 {
		b.WriteString("_w")
		b.WriteString(formatDim(size.W))
	}
	if size.H != 0 {
		b.WriteString("_h")
		b.WriteString(formatDim(size.H))
	}
	return b.String()
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// keySanitizer folds accents away and replaces anything that is not safe in
// a file name with '_'.
var keySanitizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '_' || r == '.' || r == '@':
			return r
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		default:
			return '_'
		}
	}),
	norm.NFC,
)

// SanitizeKey turns an arbitrary name into a single file-name-safe path
// segment. Leading dots are replaced so keys never name hidden files.
func SanitizeKey(s string) string {
	out, _, err := transform.String(keySanitizer, s)
	if err != nil {
		out = s
	}
	if out == "" {
		return "_"
	}
	if out[0] == '.' {
		out = "_" + out[1:]
	}
	return out
}

// referenceKey builds the store key for an identifier within a test:
// sanitized test-name segments, then the identifier with an "@<scale>x"
// suffix for non-1x devices.
func referenceKey(testName, identifier string, scale float64) string {
	var parts []string
	for _, seg := range strings.Split(testName, "/") {
		if seg != "" {
			parts = append(parts, SanitizeKey(seg))
		}
	}
	name := SanitizeKey(identifier)
	if scale > 0 && scale != 1 {
		name += "@" + formatDim(scale) + "x"
	}
	return strings.Join(append(parts, name), "/")
}
