package persona

import (
	"context"

	"github.com/execai/kbase/internal/domain"
)

// KnowledgeQuerier retrieves knowledge items for the persona's responses.
type KnowledgeQuerier interface {
	Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResponse, error)
}
