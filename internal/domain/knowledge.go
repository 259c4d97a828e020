package domain

// KnowledgeItem is a single entry of the static knowledge corpus.
// Items are immutable after corpus load.
type KnowledgeItem struct {
	ID           string
	Title        string
	Description  string
	Content      string
	Categories   []string
	Keywords     []string
	Source       string
	Domain       string
	Capabilities []string
	// Relevance is the authored weight carried over from the corpus.
	// Pass-through metadata only; ranking never consults it.
	Relevance float64
}

// HasCapability reports whether the item carries the given capability tag.
func (k *KnowledgeItem) HasCapability(capability string) bool {
	for _, c := range k.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// Domain is a read-only knowledge domain record.
type Domain struct {
	ID           string
	Name         string
	Description  string
	Icon         string
	Capabilities []string
}
