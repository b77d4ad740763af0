package services

import (
	"strings"
)

type TextTokenizer interface {
	Tokenize(text string) []string
	TokenSet(text string) map[string]struct{}
}

type textTokenizer struct{}

func NewTextTokenizer() TextTokenizer {
	return &textTokenizer{}
}

// Tokenize implements TextTokenizer. Tokens are lowercased runs of
// non-whitespace; punctuation stays attached to its word.
func (tt *textTokenizer) Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// TokenSet implements TextTokenizer.
func (tt *textTokenizer) TokenSet(text string) map[string]struct{} {
	tokens := tt.Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
