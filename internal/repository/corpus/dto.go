package corpus

import "github.com/execai/kbase/internal/domain"

// itemDTO is the YAML wire form of a knowledge item.
type itemDTO struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Content      string   `yaml:"content"`
	Categories   []string `yaml:"categories"`
	Keywords     []string `yaml:"keywords"`
	Source       string   `yaml:"source"`
	Domain       string   `yaml:"domain"`
	Capabilities []string `yaml:"capabilities"`
	Relevance    float64  `yaml:"relevance"`
}

// domainDTO is the YAML wire form of a domain record.
type domainDTO struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Icon         string   `yaml:"icon"`
	Capabilities []string `yaml:"capabilities"`
}

type itemsFile struct {
	Items []itemDTO `yaml:"items"`
}

type domainsFile struct {
	Domains []domainDTO `yaml:"domains"`
}

func (d itemDTO) toDomain() domain.KnowledgeItem {
	return domain.KnowledgeItem{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Content:      d.Content,
		Categories:   d.Categories,
		Keywords:     d.Keywords,
		Source:       d.Source,
		Domain:       d.Domain,
		Capabilities: d.Capabilities,
		Relevance:    d.Relevance,
	}
}

func (d domainDTO) toDomain() domain.Domain {
	return domain.Domain{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Icon:         d.Icon,
		Capabilities: d.Capabilities,
	}
}
