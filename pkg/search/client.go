package search

import "context"

type Client interface {
	Search(ctx context.Context, search string) ([]Result, error)
}

type Result struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`

	// Source names the backend (or search type) the result comes from.
	Source   string         `json:"source,omitempty" yaml:"source,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
