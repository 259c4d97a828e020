package health

import "context"

// CorpusReader exposes the loaded corpus size for readiness checks.
type CorpusReader interface {
	Size() int
}

// CachePinger checks query cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
