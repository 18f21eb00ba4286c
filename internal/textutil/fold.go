package textutil

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// FoldKey returns a case-folded NFC form of value for equality checks.
func FoldKey(value string) string {
	return folder.String(norm.NFC.String(value))
}

// SortKey transliterates value to ASCII, lowercases it and keeps only
// letters and digits, with single spaces between words.
func SortKey(value string) string {
	ascii := unidecode.Unidecode(norm.NFC.String(value))
	var b strings.Builder
	b.Grow(len(ascii))
	space := false
	for _, r := range strings.ToLower(ascii) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}
