// Package title normalizes media titles and release names and scores their
// similarity, so downloads that carry no media IDs can still be attributed
// to the request they were grabbed for.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX when preceded by a space.
// Standalone "I" and "X" are excluded ("I Robot", "American History X"),
// as is the start of the string ("VII Days").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// metadataTokenRegex matches the first token of the metadata tail of a
// release name: a year, a season/episode marker, or a resolution. Everything
// from that token on describes the release, not the title.
var metadataTokenRegex = regexp.MustCompile(`(?i)\b(19\d{2}|20\d{2}|s\d{1,2}(e\d{1,3})?|season[ .]?\d{1,2}|\d{3,4}p|2160p|complete)\b`)

// Normalize reduces a media title to a canonical comparison form: lowercase,
// accents folded, Roman numerals II-IX converted, articles and punctuation
// stripped, whitespace collapsed.
func Normalize(title string) string {
	s := strings.ToLower(title)

	// Roman numerals first, before accent folding can touch the letters.
	s = foldRomanNumerals(s)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Subtitled titles ("Léon: The Professional") drop the article from
	// each part.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeRelease extracts and normalizes the title portion of a scene
// release name: separators become spaces and everything from the first
// year/season/resolution token on is discarded.
//
//	"Some.Movie.2024.1080p.WEB-DL" -> "some movie"
//	"Some_Show_S02_COMPLETE"       -> "some show"
func NormalizeRelease(name string) string {
	s := strings.NewReplacer(".", " ", "_", " ", "[", " ", "]", " ").Replace(name)

	if loc := metadataTokenRegex.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}

	return Normalize(s)
}

func foldRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.TrimSpace(match)
		if arabic, ok := romanToArabic[strings.ToUpper(roman)]; ok {
			return " " + arabic
		}
		return match
	})
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
