package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose under NFD.
var foldReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "ae",
	"ø", "o", "Ø", "o",
	"ß", "ss",
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
)

// GenerateSlug lower-cases s, folds accented letters to ASCII and joins the
// remaining alphanumeric runs with single hyphens.
func GenerateSlug(s string) string {
	s = foldReplacer.Replace(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
