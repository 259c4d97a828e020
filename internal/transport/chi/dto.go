package chi

import (
	"time"

	"github.com/execai/kbase/internal/domain"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

type domainDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon,omitempty"`
	Capabilities []string `json:"capabilities"`
}

type domainListResponse struct {
	Domains []domainDTO `json:"domains"`
	Total   int         `json:"total"`
}

type queryRequest struct {
	Query        string   `json:"query"`
	Domains      []string `json:"domains,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

type knowledgeItemDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Content      string   `json:"content"`
	Categories   []string `json:"categories,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Source       string   `json:"source,omitempty"`
	Domain       string   `json:"domain"`
	Capabilities []string `json:"capabilities,omitempty"`
	Relevance    float64  `json:"relevance,omitempty"`
}

type scoredItemDTO struct {
	Item            knowledgeItemDTO `json:"item"`
	SimilarityScore float64          `json:"similarity_score"`
}

type sourceDTO struct {
	ModuleID   string `json:"module_id"`
	ModuleType string `json:"module_type"`
	Version    string `json:"version"`
}

type queryMetadataDTO struct {
	Query        string   `json:"query"`
	Domains      []string `json:"domains,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Timestamp    string   `json:"timestamp"`
}

type queryResponseDTO struct {
	Items    []scoredItemDTO  `json:"items"`
	Sources  []sourceDTO      `json:"sources"`
	Metadata queryMetadataDTO `json:"metadata"`
}

type personaRequest struct {
	Query   string   `json:"query"`
	Context []string `json:"context,omitempty"`
}

type personaResponse struct {
	Response         string          `json:"response"`
	Persona          string          `json:"persona"`
	KnowledgeItems   []scoredItemDTO `json:"knowledge_items"`
	StrategicInsight string          `json:"strategic_insight,omitempty"`
	NextStep         string          `json:"next_step,omitempty"`
	Timestamp        string          `json:"timestamp"`
}

type coreFunctionDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type behaviorDTO struct {
	Tone     string `json:"tone"`
	Style    string `json:"style"`
	Bias     string `json:"bias"`
	Delivery string `json:"delivery"`
}

type profileResponse struct {
	Name          string            `json:"name"`
	Role          string            `json:"role"`
	Focus         string            `json:"focus"`
	Description   string            `json:"description"`
	CoreFunctions []coreFunctionDTO `json:"core_functions"`
	Behavior      behaviorDTO       `json:"behavioral_parameters"`
}

func scoredItemToDTO(s domain.ScoredItem) scoredItemDTO {
	return scoredItemDTO{
		Item: knowledgeItemDTO{
			ID:           s.Item.ID,
			Title:        s.Item.Title,
			Description:  s.Item.Description,
			Content:      s.Item.Content,
			Categories:   s.Item.Categories,
			Keywords:     s.Item.Keywords,
			Source:       s.Item.Source,
			Domain:       s.Item.Domain,
			Capabilities: s.Item.Capabilities,
			Relevance:    s.Item.Relevance,
		},
		SimilarityScore: s.Score,
	}
}

func queryResponseToDTO(resp domain.QueryResponse) queryResponseDTO {
	items := make([]scoredItemDTO, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = scoredItemToDTO(it)
	}

	sources := make([]sourceDTO, len(resp.Sources))
	for i, src := range resp.Sources {
		sources[i] = sourceDTO{
			ModuleID:   src.ModuleID,
			ModuleType: src.ModuleType,
			Version:    src.Version,
		}
	}

	return queryResponseDTO{
		Items:   items,
		Sources: sources,
		Metadata: queryMetadataDTO{
			Query:        resp.Metadata.Query,
			Domains:      resp.Metadata.Domains,
			Capabilities: resp.Metadata.Capabilities,
			Timestamp:    resp.Metadata.Timestamp.Format(time.RFC3339),
		},
	}
}
