package search

import (
	"strings"
	"unicode"
)

// Document represents a searchable catalog entry
type Document struct {
	ID      int
	Title   string // Metadata
	Content string
	Vector  SparseVector
}

// Tokenize splits text into lowercase word tokens of at least two runes,
// dropping English stop words.
func Tokenize(text string) []string {
	f := func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c) && c != '_'
	}
	fields := strings.FieldsFunc(text, f)
	var tokens []string
	for _, field := range fields {
		if len([]rune(field)) < 2 {
			continue
		}
		token := strings.ToLower(field)
		if IsStopWord(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
