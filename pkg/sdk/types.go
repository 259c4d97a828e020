package kbase

// QueryRequest is a knowledge query with optional filters.
type QueryRequest struct {
	Query        string   `json:"query"`
	Domains      []string `json:"domains,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// KnowledgeItem is a corpus entry returned by the API.
type KnowledgeItem struct {
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

// ScoredItem pairs an item with its similarity score.
type ScoredItem struct {
	Item            KnowledgeItem `json:"item"`
	SimilarityScore float64       `json:"similarity_score"`
}

// Source identifies the engine that produced a result set.
type Source struct {
	ModuleID   string `json:"module_id"`
	ModuleType string `json:"module_type"`
	Version    string `json:"version"`
}

// QueryMetadata echoes the query context back to the caller.
type QueryMetadata struct {
	Query        string   `json:"query"`
	Domains      []string `json:"domains,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Timestamp    string   `json:"timestamp"`
}

// QueryResponse is the result of a knowledge query.
type QueryResponse struct {
	Items    []ScoredItem  `json:"items"`
	Sources  []Source      `json:"sources"`
	Metadata QueryMetadata `json:"metadata"`
}

// Domain is a knowledge domain record.
type Domain struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon,omitempty"`
	Capabilities []string `json:"capabilities"`
}

// DomainList is the domain listing response.
type DomainList struct {
	Domains []Domain `json:"domains"`
	Total   int      `json:"total"`
}

// PersonaRequest asks the Strategic Catalyst persona for a reply.
type PersonaRequest struct {
	Query   string   `json:"query"`
	Context []string `json:"context,omitempty"`
}

// PersonaResponse is a persona reply.
type PersonaResponse struct {
	Response         string       `json:"response"`
	Persona          string       `json:"persona"`
	KnowledgeItems   []ScoredItem `json:"knowledge_items"`
	StrategicInsight string       `json:"strategic_insight,omitempty"`
	NextStep         string       `json:"next_step,omitempty"`
	Timestamp        string       `json:"timestamp"`
}

// CoreFunction is an advertised persona capability.
type CoreFunction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BehavioralParameters describe the persona's response style.
type BehavioralParameters struct {
	Tone     string `json:"tone"`
	Style    string `json:"style"`
	Bias     string `json:"bias"`
	Delivery string `json:"delivery"`
}

// PersonaProfile is the static persona record.
type PersonaProfile struct {
	Name          string               `json:"name"`
	Role          string               `json:"role"`
	Focus         string               `json:"focus"`
	Description   string               `json:"description"`
	CoreFunctions []CoreFunction       `json:"core_functions"`
	Behavior      BehavioralParameters `json:"behavioral_parameters"`
}

// HealthReport is the service health response.
type HealthReport struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}
