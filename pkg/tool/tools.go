package tool

import (
	"github.com/bornholm/genai/llm"
	"github.com/bornholm/naversearch/pkg/search"
	"github.com/bornholm/naversearch/pkg/search/meta"
	"github.com/bornholm/naversearch/pkg/search/naver"
)

// GetDefaultResearchTools returns the Naver search tools along with a
// web_search tool querying news, blogs and websites at once.
func GetDefaultResearchTools(client *naver.Client, funcs ...NaverSearchOptionFunc) []llm.Tool {
	naverTools := NewNaverSearchTools(client, funcs...)

	tools := make([]llm.Tool, 0, len(naverTools)+1)
	for _, t := range naverTools {
		tools = append(tools, t.LLMTool())
	}

	tools = append(tools, NewWebSearchTool(NewMultiSearch(client, []naver.SearchType{naver.News, naver.Blog, naver.Web}, funcs...)))

	return tools
}

// NewMultiSearch returns a search.Client querying every given search type
// concurrently and merging the results. Retries, when enabled, are applied to
// each search type so that a failing type never discards the others.
func NewMultiSearch(client *naver.Client, searchTypes []naver.SearchType, funcs ...NaverSearchOptionFunc) search.Client {
	opts := newNaverSearchOptions(funcs...)

	searchers := make([]search.Client, 0, len(searchTypes))
	for _, searchType := range searchTypes {
		var searcher search.Client = client.Searcher(opts.requestOptions(searchType)...)

		if opts.Retries > 0 {
			searcher = search.WithRetry(searcher, opts.Retries, opts.RetryDelay, search.RetryIf(naver.IsRetryable))
		}

		searchers = append(searchers, searcher)
	}

	if len(searchers) == 1 {
		return searchers[0]
	}

	return meta.NewClient(searchers...)
}
