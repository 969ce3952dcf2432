package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	editionSuffixRe = regexp.MustCompile(`(?i)\s*[:\-]?\s*\b(standard|deluxe|ultimate|gold|goty|game of the year|definitive|complete|remastered)\s+edition\b`)
	punctuationRe   = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeTitle canonicalizes a game or product title for matching and
// search: diacritics stripped, roman numerals kept as-is, punctuation and
// edition suffixes removed, whitespace collapsed, lowercased. "Pokémon™:
// Deluxe Edition" and "pokemon" normalize to the same key.
func NormalizeTitle(title string) string {
	s := RemoveDiacritics(title)
	s = strings.ToLower(s)
	s = editionSuffixRe.ReplaceAllString(s, "")
	s = punctuationRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// RemoveDiacritics strips combining marks via NFD decomposition, so
// accented storefront titles match their plain-ASCII spellings.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
