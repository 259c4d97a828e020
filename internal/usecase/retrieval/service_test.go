package retrieval

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/execai/kbase/internal/domain"
)

func testCorpus() []domain.KnowledgeItem {
	return []domain.KnowledgeItem{
		{
			ID:           "a",
			Content:      "business model canvas value proposition",
			Domain:       "business",
			Capabilities: []string{"strategic_advice", "business_modeling"},
		},
		{
			ID:           "b",
			Content:      "lean startup validation",
			Domain:       "lean",
			Capabilities: []string{"founder_mentorship"},
		},
	}
}

func testDomains() []domain.Domain {
	return []domain.Domain{
		{ID: "business", Name: "Business Mentorship"},
		{ID: "lean", Name: "Lean Startup"},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(testCorpus(), testDomains(), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func mustRequest(t *testing.T, query string, domains, capabilities []string) domain.QueryRequest {
	t.Helper()
	req, err := domain.NewQueryRequest(query, domains, capabilities)
	if err != nil {
		t.Fatalf("NewQueryRequest: %v", err)
	}
	return req
}

func TestNew_DegenerateCorpus(t *testing.T) {
	items := []domain.KnowledgeItem{{ID: "x", Content: "the of and"}}
	_, err := New(items, nil, zap.NewNop())
	if !errors.Is(err, domain.ErrDegenerateCorpus) {
		t.Fatalf("expected ErrDegenerateCorpus, got %v", err)
	}
}

func TestQuery_RanksMostSimilarFirst(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), mustRequest(t, "business model canvas", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("expected results")
	}
	if resp.Items[0].Item.ID != "a" {
		t.Errorf("expected item a first, got %s", resp.Items[0].Item.ID)
	}
	if resp.Items[0].Score <= MinScore {
		t.Errorf("expected score above threshold, got %v", resp.Items[0].Score)
	}
	for _, si := range resp.Items {
		if si.Item.ID == "b" && si.Score < MinScore {
			t.Errorf("item b below threshold must be excluded, score %v", si.Score)
		}
	}
}

func TestQuery_SelfQueryScoresMax(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(),
		mustRequest(t, "business model canvas value proposition", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Items[0].Item.ID != "a" {
		t.Fatalf("expected item a first, got %s", resp.Items[0].Item.ID)
	}
	if math.Abs(resp.Items[0].Score-1) > 1e-9 {
		t.Errorf("self-query score = %v, want 1", resp.Items[0].Score)
	}
}

func TestQuery_ScoresWithinBoundsAndNonIncreasing(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), mustRequest(t, "business startup validation model", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := 1.0
	for i, si := range resp.Items {
		if si.Score < MinScore || si.Score > 1.0 {
			t.Errorf("item %d score %v out of [%v, 1.0]", i, si.Score, MinScore)
		}
		if si.Score > prev {
			t.Errorf("scores increase at position %d: %v > %v", i, si.Score, prev)
		}
		prev = si.Score
	}
}

func TestQuery_DomainFilterExcludes(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(),
		mustRequest(t, "business model canvas lean startup", []string{"lean"}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, si := range resp.Items {
		if si.Item.Domain != "lean" {
			t.Errorf("domain filter leaked item %s (domain %s)", si.Item.ID, si.Item.Domain)
		}
	}
}

func TestQuery_CapabilityFilterExcludes(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(),
		mustRequest(t, "business model canvas lean startup", nil, []string{"founder_mentorship"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, si := range resp.Items {
		if !si.Item.HasCapability("founder_mentorship") {
			t.Errorf("capability filter leaked item %s", si.Item.ID)
		}
	}
}

func TestQuery_FilteringOnlyRemoves(t *testing.T) {
	svc := newTestService(t)
	query := "business model canvas lean startup validation"

	unfiltered, err := svc.Query(context.Background(), mustRequest(t, query, nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filtered, err := svc.Query(context.Background(), mustRequest(t, query, []string{"business"}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unfilteredIDs := make(map[string]struct{}, len(unfiltered.Items))
	for _, si := range unfiltered.Items {
		unfilteredIDs[si.Item.ID] = struct{}{}
	}
	for _, si := range filtered.Items {
		if _, ok := unfilteredIDs[si.Item.ID]; !ok {
			t.Errorf("filtering added item %s not present without filters", si.Item.ID)
		}
	}
	if len(filtered.Items) > len(unfiltered.Items) {
		t.Error("filtering increased result count")
	}
}

func TestQuery_Idempotent(t *testing.T) {
	svc := newTestService(t)
	req := mustRequest(t, "business model validation startup", nil, nil)

	first, err := svc.Query(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Query(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Errorf("repeated query returned different items:\nfirst:  %v\nsecond: %v",
			first.Items, second.Items)
	}
}

func TestQuery_StopWordOnlyQueryReturnsEmpty(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), mustRequest(t, "the of and to", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected empty result, got %d items", len(resp.Items))
	}
	if resp.Items == nil {
		t.Error("items must be empty, not nil")
	}
}

func TestQuery_OutOfVocabularyQueryReturnsEmpty(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), mustRequest(t, "quantum chromodynamics", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected empty result, got %d items", len(resp.Items))
	}
}

func TestQuery_TopKCap(t *testing.T) {
	items := make([]domain.KnowledgeItem, 8)
	for i := range items {
		items[i] = domain.KnowledgeItem{
			ID:      string(rune('a' + i)),
			Content: "startup funding strategy growth",
			Domain:  "business",
		}
	}
	svc, err := New(items, testDomains(), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := svc.Query(context.Background(), mustRequest(t, "startup funding strategy", nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) != TopK {
		t.Errorf("expected %d items, got %d", TopK, len(resp.Items))
	}
	// All documents are identical, so ties must keep corpus order.
	for i, si := range resp.Items {
		if want := string(rune('a' + i)); si.Item.ID != want {
			t.Errorf("position %d: expected %s (corpus order), got %s", i, want, si.Item.ID)
		}
	}
}

func TestQuery_EmptyQueryRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Query(context.Background(), domain.QueryRequest{})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestQuery_ResponseMetadata(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(),
		mustRequest(t, "business model", []string{"business"}, []string{"strategic_advice"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Metadata.Query != "business model" {
		t.Errorf("metadata query = %q", resp.Metadata.Query)
	}
	if !reflect.DeepEqual(resp.Metadata.Domains, []string{"business"}) {
		t.Errorf("metadata domains = %v", resp.Metadata.Domains)
	}
	if resp.Metadata.Timestamp.IsZero() {
		t.Error("metadata timestamp not set")
	}
	if len(resp.Sources) != 1 || resp.Sources[0].ModuleType != "RetrievalEngine" {
		t.Errorf("unexpected sources: %v", resp.Sources)
	}
}

func TestDomains_ReturnsCopy(t *testing.T) {
	svc := newTestService(t)

	domains := svc.Domains(context.Background())
	if len(domains) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(domains))
	}
	domains[0].ID = "mutated"
	if svc.Domains(context.Background())[0].ID == "mutated" {
		t.Error("Domains must return a copy")
	}
}
