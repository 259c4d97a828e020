package tfidf

import (
	"errors"
	"math"
	"testing"

	"github.com/execai/kbase/internal/domain"
)

const epsilon = 1e-9

func TestFit_DegenerateCorpus(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{"empty corpus", nil},
		{"only stop words", []string{"the of and", "to be or not to be"}},
		{"only short tokens", []string{"x y z", "q w"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.texts)
			if !errors.Is(err, domain.ErrDegenerateCorpus) {
				t.Fatalf("expected ErrDegenerateCorpus, got %v", err)
			}
		})
	}
}

func TestFit_LexicographicIndices(t *testing.T) {
	v, err := Fit([]string{"zebra apple", "mango apple"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.VocabularySize() != 3 {
		t.Fatalf("expected 3 terms, got %d", v.VocabularySize())
	}
	// apple < mango < zebra
	if v.vocab["apple"] != 0 || v.vocab["mango"] != 1 || v.vocab["zebra"] != 2 {
		t.Errorf("indices not lexicographic: %v", v.vocab)
	}
}

func TestFit_SmoothedIDF(t *testing.T) {
	// "common" appears in both documents, "rare" in one.
	v, err := Fit([]string{"common rare", "common"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCommon := math.Log(3.0/3.0) + 1 // ln((1+2)/(1+2)) + 1 = 1
	wantRare := math.Log(3.0/2.0) + 1

	if got := v.idf[v.vocab["common"]]; math.Abs(got-wantCommon) > epsilon {
		t.Errorf("idf(common) = %v, want %v", got, wantCommon)
	}
	if got := v.idf[v.vocab["rare"]]; math.Abs(got-wantRare) > epsilon {
		t.Errorf("idf(rare) = %v, want %v", got, wantRare)
	}
}

func TestTransform_UnitNorm(t *testing.T) {
	v, err := Fit([]string{"business model canvas", "lean startup validation"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vec := v.Transform("business model model canvas")
	var sumSq float64
	for _, term := range vec {
		sumSq += term.Weight * term.Weight
	}
	if math.Abs(sumSq-1) > epsilon {
		t.Errorf("squared norm = %v, want 1", sumSq)
	}
}

func TestTransform_SortedIndices(t *testing.T) {
	v, err := Fit([]string{"zebra mango apple kiwi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vec := v.Transform("zebra apple kiwi")
	for i := 1; i < len(vec); i++ {
		if vec[i-1].Index >= vec[i].Index {
			t.Fatalf("vector not sorted by index: %v", vec)
		}
	}
}

func TestTransform_UnknownTermsDropped(t *testing.T) {
	v, err := Fit([]string{"business model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withUnknown := v.Transform("business unicorn")
	if len(withUnknown) != 1 {
		t.Fatalf("expected 1 component, got %d", len(withUnknown))
	}

	if vec := v.Transform("unicorn rainbow"); vec != nil {
		t.Errorf("expected zero vector for out-of-vocabulary text, got %v", vec)
	}
	if vec := v.Transform(""); vec != nil {
		t.Errorf("expected zero vector for empty text, got %v", vec)
	}
	if vec := v.Transform("the of and"); vec != nil {
		t.Errorf("expected zero vector for stop-word text, got %v", vec)
	}
}

func TestDot_IdenticalTextScoresOne(t *testing.T) {
	texts := []string{
		"business model canvas value proposition",
		"lean startup validation",
	}
	v, err := Fit(texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := v.Transform(texts[0])
	query := v.Transform(texts[0])
	if got := Dot(query, doc); math.Abs(got-1) > epsilon {
		t.Errorf("self-similarity = %v, want 1", got)
	}
}

func TestDot_ZeroVector(t *testing.T) {
	v, err := Fit([]string{"business model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := v.Transform("business model")
	if got := Dot(nil, doc); got != 0 {
		t.Errorf("Dot(zero, doc) = %v, want 0", got)
	}
}

func TestDot_DisjointVectors(t *testing.T) {
	v, err := Fit([]string{"business model", "lean startup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := v.Transform("business model")
	b := v.Transform("lean startup")
	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot(disjoint) = %v, want 0", got)
	}
}

func TestDot_RangeZeroToOne(t *testing.T) {
	texts := []string{
		"business model canvas value proposition infrastructure customers",
		"lean startup validation experiments metrics",
		"venture capital fundraising term sheets",
	}
	v, err := Fit(texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	docs := make([]Vector, len(texts))
	for i, text := range texts {
		docs[i] = v.Transform(text)
	}
	query := v.Transform("startup business validation")
	for i, doc := range docs {
		got := Dot(query, doc)
		if got < 0 || got > 1+epsilon {
			t.Errorf("Dot(query, doc[%d]) = %v, out of [0,1]", i, got)
		}
	}
}
