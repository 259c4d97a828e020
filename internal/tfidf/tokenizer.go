// Package tfidf implements corpus vectorization: tokenization, smoothed
// inverse-document-frequency weighting, and L2-normalized sparse vectors
// suitable for cosine similarity via dot product.
package tfidf

import (
	"strings"
	"unicode"
)

const minTokenLength = 2

// Tokenize splits text into normalized terms. A term is a contiguous span of
// Unicode letters or digits, lowercased. Spans shorter than two runes and
// stop words are dropped. This is the single tokenization rule for both
// corpus items and queries; changing it changes every score.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.ToLower(current.String())
		current.Reset()
		if len([]rune(word)) < minTokenLength {
			return
		}
		if _, isStop := stopWords[word]; isStop {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// stopWords is the fixed English stop-word list. Terms here never enter the
// vocabulary and never contribute query weight.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "being": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "does": {}, "each": {},
	"every": {}, "few": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "his": {}, "how": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "just": {},
	"may": {}, "might": {}, "more": {}, "most": {}, "must": {}, "no": {},
	"not": {}, "of": {}, "on": {}, "or": {}, "other": {}, "our": {},
	"shall": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "they": {},
	"this": {}, "to": {}, "too": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {}, "who": {},
	"whom": {}, "why": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}
