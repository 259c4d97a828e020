// Package persona implements the Strategic Catalyst persona: a static
// profile plus templated response assembly around retrieved knowledge.
package persona

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/execai/kbase/internal/domain"
	"github.com/execai/kbase/internal/usecase/insights"
)

// The persona always queries this fixed slice of the corpus.
var (
	respondDomains      = []string{"business", "finance", "tech", "legal"}
	respondCapabilities = []string{"strategic_advice", "business_modeling", "founder_mentorship"}
)

// Response is a single persona reply.
type Response struct {
	Content          string
	Persona          string
	KnowledgeItems   []domain.ScoredItem
	StrategicInsight string
	NextStep         string
	Timestamp        time.Time
}

// Service generates Strategic Catalyst responses.
type Service struct {
	knowledge KnowledgeQuerier
	profile   Profile
}

// New creates the persona service.
func New(knowledge KnowledgeQuerier) *Service {
	return &Service{
		knowledge: knowledge,
		profile:   strategicCatalystProfile(),
	}
}

// Profile returns the static persona profile.
func (s *Service) Profile() Profile { return s.profile }

// Respond assembles a persona reply: relevant knowledge from the fixed
// domain set, the topic's leading strategic insight, and a next step.
// conversationContext is accepted for interface compatibility but the
// template does not use it.
func (s *Service) Respond(ctx context.Context, query string, conversationContext []string) (Response, error) {
	_ = conversationContext

	req, err := domain.NewQueryRequest(query, respondDomains, respondCapabilities)
	if err != nil {
		return Response{}, err
	}

	results, err := s.knowledge.Query(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("query knowledge: %w", err)
	}

	var insight, nextStep string
	if list := insights.InsightsFor(query); len(list) > 0 {
		insight = list[0]
	}
	if list := insights.NextStepsFor(query); len(list) > 0 {
		nextStep = list[0]
	}

	return Response{
		Content:          buildContent(query, results.Items, insight, nextStep),
		Persona:          s.profile.Name,
		KnowledgeItems:   results.Items,
		StrategicInsight: insight,
		NextStep:         nextStep,
		Timestamp:        time.Now().UTC(),
	}, nil
}

// buildContent renders the response template: acknowledgment, up to two
// knowledge item bodies, the strategic insight, and the next step.
func buildContent(query string, items []domain.ScoredItem, insight, nextStep string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As The Strategic Catalyst, I appreciate your question about %s.\n\n", strings.ToLower(query))

	if len(items) > 0 {
		b.WriteString(items[0].Item.Content)
		b.WriteString("\n\n")
		if len(items) > 1 {
			fmt.Fprintf(&b, "Additionally, %s\n\n", items[1].Item.Content)
		}
	}

	if insight != "" {
		fmt.Fprintf(&b, "From a strategic perspective, %s\n\n", insight)
	}
	if nextStep != "" {
		b.WriteString(nextStep)
	}

	return b.String()
}
