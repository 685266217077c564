package naver

import (
	"strings"

	"github.com/pkg/errors"
)

// SearchType is a logical category of the Naver search API.
type SearchType string

const (
	News         SearchType = "news"
	Blog         SearchType = "blog"
	Web          SearchType = "web"
	Book         SearchType = "book"
	Image        SearchType = "image"
	Shopping     SearchType = "shopping"
	Cafe         SearchType = "cafe"
	Kin          SearchType = "kin"
	Encyclopedia SearchType = "encyclopedia"
	Academic     SearchType = "academic"
	Local        SearchType = "local"
)

// endpoints maps each search type to its path segment under the search API
// base URL.
var endpoints = map[SearchType]string{
	News:         "news",
	Blog:         "blog",
	Web:          "webkr",
	Book:         "book",
	Image:        "image",
	Shopping:     "shop",
	Cafe:         "cafearticle",
	Kin:          "kin",
	Encyclopedia: "encyc",
	Academic:     "doc",
	Local:        "local",
}

var searchTypes = []SearchType{
	News, Blog, Web, Book, Image, Shopping, Cafe, Kin, Encyclopedia, Academic, Local,
}

// SearchTypes returns every supported search type.
func SearchTypes() []SearchType {
	types := make([]SearchType, len(searchTypes))
	copy(types, searchTypes)
	return types
}

// Endpoint returns the endpoint path segment of the search type.
func (t SearchType) Endpoint() (string, error) {
	endpoint, exists := endpoints[t]
	if !exists {
		return "", errors.Wrapf(ErrUnknownSearchType, "'%s'", t)
	}

	return endpoint, nil
}

func (t SearchType) String() string {
	return string(t)
}

// ParseSearchType resolves either a logical search type name ("web") or an
// endpoint segment ("webkr").
func ParseSearchType(raw string) (SearchType, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if _, exists := endpoints[SearchType(normalized)]; exists {
		return SearchType(normalized), nil
	}

	for searchType, endpoint := range endpoints {
		if endpoint == normalized {
			return searchType, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownSearchType, "'%s'", raw)
}
