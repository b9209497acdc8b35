// Package text provides the shared tokenization, word normalization and
// string similarity primitives used by the classifiers.
package text

import (
	"regexp"
	"strings"
)

// MinWordLength is the shortest normalized word worth learning from.
// Shorter tokens ("de", "do", "01") carry no categorization signal.
const MinWordLength = 3

// nonLetters matches everything outside lowercase ASCII letters and the
// Portuguese accented letters, so "uber*23/04" normalizes to "uber".
var nonLetters = regexp.MustCompile(`[^a-zàáâãçéêíóôõúü]`)

// Tokenize lowercases, trims and splits a description on whitespace.
func Tokenize(description string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(description)))
}

// NormalizeWord strips a token down to letters only. Returns the empty
// string when nothing usable remains.
func NormalizeWord(token string) string {
	return nonLetters.ReplaceAllString(strings.ToLower(token), "")
}

// SignificantWords tokenizes a description and returns the normalized
// words long enough to act as pattern keys, in encounter order.
func SignificantWords(description string) []string {
	tokens := Tokenize(description)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		word := NormalizeWord(token)
		if len([]rune(word)) >= MinWordLength {
			words = append(words, word)
		}
	}
	return words
}
