package significance

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining diacritical marks (NFD, remove Mn, NFC)
// so accented text still trips the lexicon prefilter.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeForScan lowercases and diacritic-folds content for the
// Aho-Corasick prefilter. Positional matching always runs against the
// original content; this form is only used to decide which phrases are
// worth a positional scan.
func normalizeForScan(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
