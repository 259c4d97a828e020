package tfidf

import (
	"fmt"
	"math"
	"sort"

	"github.com/execai/kbase/internal/domain"
)

// Term is a single non-zero vector component.
type Term struct {
	Index  int
	Weight float64
}

// Vector is a sparse weighted term vector, sorted by column index.
// The sorted representation keeps dot products bit-deterministic: summation
// order never depends on map iteration.
type Vector []Term

// Dot returns the dot product of two sorted sparse vectors.
// For unit-normalized vectors this equals their cosine similarity.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			i++
		case a[i].Index > b[j].Index:
			j++
		default:
			sum += a[i].Weight * b[j].Weight
			i++
			j++
		}
	}
	return sum
}

// Vectorizer holds the vocabulary and per-term IDF weights fitted on a corpus.
// It is immutable after Fit; queries never grow the vocabulary.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// Fit builds the vocabulary and IDF model from the corpus texts.
// Vocabulary indices are assigned lexicographically so output is reproducible.
// IDF uses the smoothed formula ln((1+N)/(1+df)) + 1, which keeps terms
// present in every document at a positive weight.
func Fit(texts []string) (*Vectorizer, error) {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, term := range Tokenize(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, fmt.Errorf("fit %d texts: %w", len(texts), domain.ErrDegenerateCorpus)
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(texts))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v, nil
}

// Transform converts text into an L2-normalized tf-idf vector.
// Terms absent from the vocabulary are dropped. Text that tokenizes to
// nothing known yields the zero vector, which scores 0 against everything.
func (v *Vectorizer) Transform(text string) Vector {
	counts := make(map[int]int)
	for _, term := range Tokenize(text) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(counts))
	for idx, tf := range counts {
		vec = append(vec, Term{Index: idx, Weight: float64(tf) * v.idf[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })

	var sumSq float64
	for _, t := range vec {
		sumSq += t.Weight * t.Weight
	}
	norm := math.Sqrt(sumSq)
	for i := range vec {
		vec[i].Weight /= norm
	}
	return vec
}

// VocabularySize returns the number of fitted terms.
func (v *Vectorizer) VocabularySize() int { return len(v.vocab) }
