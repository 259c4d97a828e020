// Package retrieval implements the knowledge retrieval engine: it fits the
// tf-idf model on the corpus once at construction, then scores, filters, and
// ranks corpus items for incoming queries.
package retrieval

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/execai/kbase/internal/domain"
	"github.com/execai/kbase/internal/tfidf"
	"github.com/execai/kbase/internal/version"
)

const (
	// MinScore is the minimum-relevance threshold. Matches below it are noise.
	MinScore = 0.1
	// TopK caps the number of returned items.
	TopK = 5

	moduleID   = "knowledge-base"
	moduleType = "RetrievalEngine"
)

// Service holds the fitted vectorizer and the corpus matrix. All fields are
// immutable after New, so concurrent queries need no locking.
type Service struct {
	items   []domain.KnowledgeItem
	domains []domain.Domain
	vec     *tfidf.Vectorizer
	matrix  []tfidf.Vector
	logger  *zap.Logger

	queriesTotal    *prometheus.CounterVec
	resultsReturned prometheus.Observer
}

// New fits the engine on the corpus. Row i of the matrix corresponds to
// items[i]. Returns domain.ErrDegenerateCorpus (wrapped) when the corpus
// yields an empty vocabulary.
func New(items []domain.KnowledgeItem, domains []domain.Domain, logger *zap.Logger) (*Service, error) {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Content
	}

	vec, err := tfidf.Fit(texts)
	if err != nil {
		return nil, fmt.Errorf("fit corpus: %w", err)
	}

	matrix := make([]tfidf.Vector, len(texts))
	for i, text := range texts {
		matrix[i] = vec.Transform(text)
	}

	logger.Info("Knowledge engine fitted",
		zap.Int("items", len(items)),
		zap.Int("domains", len(domains)),
		zap.Int("vocabulary", vec.VocabularySize()),
	)

	return &Service{
		items:   items,
		domains: domains,
		vec:     vec,
		matrix:  matrix,
		logger:  logger,
	}, nil
}

// WithMetrics attaches Prometheus instruments. queriesTotal carries an
// "outcome" label ("ok"/"invalid"); resultsReturned observes result counts.
func (s *Service) WithMetrics(queriesTotal *prometheus.CounterVec, resultsReturned prometheus.Observer) *Service {
	s.queriesTotal = queriesTotal
	s.resultsReturned = resultsReturned
	return s
}

// Query scores the corpus against the query, filters by domain and
// capability, and returns at most TopK items ordered by descending score.
// Ties keep corpus order, so identical inputs always produce identical
// output. Zero matches is a success with an empty item list.
func (s *Service) Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResponse, error) {
	if req.Query() == "" {
		s.incQueries("invalid")
		return domain.QueryResponse{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}

	queryVec := s.vec.Transform(req.Query())

	scores := make([]float64, len(s.items))
	order := make([]int, len(s.items))
	for i := range s.items {
		scores[i] = tfidf.Dot(queryVec, s.matrix[i])
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	domainSet := toSet(req.Domains())
	capabilitySet := toSet(req.Capabilities())

	accepted := make([]domain.ScoredItem, 0, TopK)
	for _, idx := range order {
		score := scores[idx]
		if score < MinScore {
			break // sorted descending, nothing relevant remains
		}
		item := s.items[idx]
		if len(domainSet) > 0 {
			if _, ok := domainSet[item.Domain]; !ok {
				continue
			}
		}
		if len(capabilitySet) > 0 && !hasAnyCapability(&item, capabilitySet) {
			continue
		}
		accepted = append(accepted, domain.ScoredItem{Item: item, Score: score})
		if len(accepted) == TopK {
			break
		}
	}

	s.incQueries("ok")
	if s.resultsReturned != nil {
		s.resultsReturned.Observe(float64(len(accepted)))
	}
	s.logger.Debug("Knowledge query served",
		zap.String("query", req.Query()),
		zap.Int("results", len(accepted)),
	)

	return domain.QueryResponse{
		Items: accepted,
		Sources: []domain.Source{{
			ModuleID:   moduleID,
			ModuleType: moduleType,
			Version:    version.Version,
		}},
		Metadata: domain.QueryMetadata{
			Query:        req.Query(),
			Domains:      req.Domains(),
			Capabilities: req.Capabilities(),
			Timestamp:    time.Now().UTC(),
		},
	}, nil
}

// Domains returns the static domain records.
func (s *Service) Domains(_ context.Context) []domain.Domain {
	out := make([]domain.Domain, len(s.domains))
	copy(out, s.domains)
	return out
}

// Size returns the corpus item count. Used by health checks.
func (s *Service) Size() int { return len(s.items) }

func (s *Service) incQueries(outcome string) {
	if s.queriesTotal != nil {
		s.queriesTotal.WithLabelValues(outcome).Inc()
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func hasAnyCapability(item *domain.KnowledgeItem, want map[string]struct{}) bool {
	for _, c := range item.Capabilities {
		if _, ok := want[c]; ok {
			return true
		}
	}
	return false
}
