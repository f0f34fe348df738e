// Package piglatin rewrites words by their first character: vowel-leading
// words get "hay", consonant-leading words move the first character to a
// "-<c>ay" suffix ("first" becomes "irst-fay").
package piglatin

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	vowelSuffix     = "hay"
	consonantSuffix = "ay"
	separator       = " "
)

// IsVowel matches lowercase a, e, i, o, u only. Uppercase vowels count as consonants.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Transform rewrites a single word. It works on runes, so multi-byte
// leading characters move as a whole. The empty word is returned unchanged.
func Transform(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return ""
	}

	if IsVowel(first) {
		return word + vowelSuffix
	}

	var b strings.Builder
	b.Grow(len(word) + 4)
	b.WriteString(word[size:])
	b.WriteByte('-')
	// Full mapping: one rune may lower to several (İ -> i̇).
	b.WriteString(cases.Lower(language.Und).String(string(first)))
	b.WriteString(consonantSuffix)
	return b.String()
}

// Sentence transforms every whitespace-separated word of text and joins
// them with a space after each word, including the last.
func Sentence(text string) string {
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		b.WriteString(Transform(word))
		b.WriteString(separator)
	}
	return b.String()
}
