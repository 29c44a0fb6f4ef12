package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds a string for use as a comparison key: NFKC
// normalisation followed by lowercasing. NFKC matters for the CJK languages
// we support, where full-width latin forms ("ＢＥＲＴ") would otherwise never
// compare equal to their ASCII spelling.
func NormalizeKey(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}
