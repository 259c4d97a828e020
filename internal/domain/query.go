package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxQueryLength is the maximum allowed query length.
const MaxQueryLength = 4096

// QueryRequest is a validated knowledge query.
type QueryRequest struct {
	query        string
	domains      []string
	capabilities []string
}

// NewQueryRequest validates and normalizes query parameters.
// domains and capabilities may be nil (no filtering).
func NewQueryRequest(query string, domains, capabilities []string) (QueryRequest, error) {
	if strings.TrimSpace(query) == "" {
		return QueryRequest{}, fmt.Errorf("%w: query is required", ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return QueryRequest{}, fmt.Errorf("%w: query too long (max %d chars)", ErrInvalidQuery, MaxQueryLength)
	}
	return QueryRequest{
		query:        query,
		domains:      domains,
		capabilities: capabilities,
	}, nil
}

// Query returns the query text.
func (r *QueryRequest) Query() string { return r.query }

// Domains returns the domain filter (empty means no filtering).
func (r *QueryRequest) Domains() []string { return r.domains }

// Capabilities returns the capability filter (empty means no filtering).
func (r *QueryRequest) Capabilities() []string { return r.capabilities }

// ScoredItem pairs a corpus item with its similarity score in [0,1].
type ScoredItem struct {
	Item  KnowledgeItem
	Score float64
}

// Source identifies the engine that produced a result set.
type Source struct {
	ModuleID   string
	ModuleType string
	Version    string
}

// QueryMetadata echoes the query context back to the caller for traceability.
type QueryMetadata struct {
	Query        string
	Domains      []string
	Capabilities []string
	Timestamp    time.Time
}

// QueryResponse is the result of a knowledge query.
// Items is empty (never nil) when nothing scored above the relevance threshold.
type QueryResponse struct {
	Items    []ScoredItem
	Sources  []Source
	Metadata QueryMetadata
}
