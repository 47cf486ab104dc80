package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedPattern matches everything except letters, digits, and spaces.
// Punctuation inside numeric tokens is removed too, so "$1.25 trillion"
// normalizes to "125 trillion".
var strippedPattern = regexp.MustCompile(`[^a-z0-9 ]+`)

// spaceRunPattern matches runs of whitespace for collapsing.
var spaceRunPattern = regexp.MustCompile(`\s+`)

// diacriticFolder decomposes accented characters and drops the combining
// marks, so "café" and "cafe" normalize identically.
var diacriticFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases text, folds diacritics, strips punctuation while
// keeping digits, collapses whitespace runs to single spaces, and trims.
// Normalize(Normalize(x)) == Normalize(x) for all x.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	folded, _, err := transform.String(diacriticFolder, text)
	if err == nil {
		text = folded
	}
	text = strings.ToLower(text)
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = strippedPattern.ReplaceAllString(text, "")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokens normalizes text and splits it into words. Empty input yields nil.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
