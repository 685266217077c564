package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bornholm/genai/llm"
	"github.com/bornholm/naversearch/internal/logx"
	"github.com/bornholm/naversearch/pkg/search/naver"
	"github.com/pkg/errors"
)

// Definition declares a Naver search tool.
type Definition struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	SearchType  naver.SearchType `yaml:"searchType"`
}

var (
	NaverSearchResults = Definition{
		Name: "naver_search_results_json",
		Description: "A search engine for Korean content using Naver's search API. " +
			"Useful for when you need to answer questions about Korean topics, news, blogs, etc. " +
			"Input should be a search query in Korean or English.",
		SearchType: naver.News,
	}

	NaverNewsSearch = Definition{
		Name: "naver_news_search",
		Description: "A search engine for Korean news using Naver's search API. " +
			"Useful for when you need to answer questions about current events in Korea. " +
			"Input should be a search query in Korean or English.",
		SearchType: naver.News,
	}

	NaverBlogSearch = Definition{
		Name: "naver_blog_search",
		Description: "A search engine for Korean blogs using Naver's search API. " +
			"Useful for when you need to answer questions about Korean opinions, recipes, lifestyle, etc. " +
			"Input should be a search query in Korean or English.",
		SearchType: naver.Blog,
	}

	NaverWebSearch = Definition{
		Name: "naver_web_search",
		Description: "A general web search engine for Korean websites using Naver's search API. " +
			"Useful for when you need to find Korean websites and general information. " +
			"Input should be a search query in Korean or English.",
		SearchType: naver.Web,
	}

	NaverBookSearch = Definition{
		Name: "naver_book_search",
		Description: "A search engine for Korean books using Naver's search API. " +
			"Useful for when you need to find Korean books and general information. " +
			"Input should be a search query in Korean or English.",
		SearchType: naver.Book,
	}
)

// Definitions returns every Naver tool definition.
func Definitions() []Definition {
	return []Definition{
		NaverSearchResults,
		NaverNewsSearch,
		NaverBlogSearch,
		NaverWebSearch,
		NaverBookSearch,
	}
}

// Searcher is the part of naver.Client used by the tools.
type Searcher interface {
	Results(ctx context.Context, query string, funcs ...naver.RequestOptionFunc) ([]naver.Item, error)
	ResultsAsync(ctx context.Context, query string, funcs ...naver.RequestOptionFunc) <-chan naver.Outcome
}

var _ Searcher = &naver.Client{}

type NaverSearchOptions struct {
	Display    int
	Start      int
	Sort       naver.Sort
	MaxResults int

	// Retries and RetryDelay apply to each search type queried by
	// NewMultiSearch. The Naver tools never retry.
	Retries    int
	RetryDelay time.Duration
}

func (o NaverSearchOptions) requestOptions(searchType naver.SearchType) []naver.RequestOptionFunc {
	return []naver.RequestOptionFunc{
		naver.WithSearchType(searchType),
		naver.WithDisplay(o.Display),
		naver.WithStart(o.Start),
		naver.WithSort(o.Sort),
		naver.WithMaxResults(o.MaxResults),
	}
}

type NaverSearchOptionFunc func(opts *NaverSearchOptions)

func newNaverSearchOptions(funcs ...NaverSearchOptionFunc) NaverSearchOptions {
	opts := NaverSearchOptions{
		Display:    naver.DefaultDisplay,
		Start:      naver.DefaultStart,
		Sort:       naver.SortSimilarity,
		MaxResults: naver.DefaultDisplay,
		RetryDelay: time.Second,
	}

	for _, fn := range funcs {
		fn(&opts)
	}

	return opts
}

func WithDisplay(display int) NaverSearchOptionFunc {
	return func(opts *NaverSearchOptions) {
		opts.Display = display
	}
}

func WithStart(start int) NaverSearchOptionFunc {
	return func(opts *NaverSearchOptions) {
		opts.Start = start
	}
}

func WithSort(sort naver.Sort) NaverSearchOptionFunc {
	return func(opts *NaverSearchOptions) {
		opts.Sort = sort
	}
}

func WithMaxResults(max int) NaverSearchOptionFunc {
	return func(opts *NaverSearchOptions) {
		opts.MaxResults = max
	}
}

// WithRetries retries each search type up to the given number of times on
// transient failures, waiting delay (doubled on each attempt) in between.
func WithRetries(retries int, delay time.Duration) NaverSearchOptionFunc {
	return func(opts *NaverSearchOptions) {
		opts.Retries = retries
		opts.RetryDelay = delay
	}
}

// NaverSearch adapts a Searcher to a tool definition.
type NaverSearch struct {
	definition Definition
	searcher   Searcher
	opts       NaverSearchOptions
}

func (t *NaverSearch) Definition() Definition {
	return t.definition
}

func (t *NaverSearch) Options() NaverSearchOptions {
	return t.opts
}

// Run executes the search and blocks until the results are available.
func (t *NaverSearch) Run(ctx context.Context, query string) ([]naver.Item, error) {
	ctx = t.logContext(ctx)

	slog.DebugContext(ctx, "executing naver search tool", slog.String("query", query))

	items, err := t.searcher.Results(ctx, query, t.requestOptions()...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return items, nil
}

// RunAsync executes the search without blocking the caller.
func (t *NaverSearch) RunAsync(ctx context.Context, query string) <-chan naver.Outcome {
	ctx = t.logContext(ctx)

	slog.DebugContext(ctx, "executing naver search tool asynchronously", slog.String("query", query))

	return t.searcher.ResultsAsync(ctx, query, t.requestOptions()...)
}

// Invoke executes the search and renders the result for a language model: a
// JSON array of records or, on failure, the error message.
func (t *NaverSearch) Invoke(ctx context.Context, query string) string {
	items, err := t.Run(ctx, query)
	if err != nil {
		slog.WarnContext(t.logContext(ctx), "naver search tool failed", slog.Any("error", err))
		return err.Error()
	}

	return t.render(ctx, items)
}

// InvokeAsync is the non-blocking form of Invoke. The returned channel
// receives exactly one rendered output and is then closed.
func (t *NaverSearch) InvokeAsync(ctx context.Context, query string) <-chan string {
	output := make(chan string, 1)
	outcomes := t.RunAsync(ctx, query)

	go func() {
		defer close(output)

		outcome := <-outcomes
		if outcome.Err != nil {
			slog.WarnContext(t.logContext(ctx), "naver search tool failed", slog.Any("error", outcome.Err))
			output <- outcome.Err.Error()
			return
		}

		output <- t.render(ctx, outcome.Items)
	}()

	return output
}

// LLMTool exposes the search as a function tool.
func (t *NaverSearch) LLMTool() llm.Tool {
	return llm.NewFuncTool(
		t.definition.Name,
		t.definition.Description,
		llm.NewJSONSchema().
			RequiredProperty("query", "search query to look up", "string"),
		func(ctx context.Context, params map[string]any) (string, error) {
			query, err := llm.ToolParam[string](params, "query")
			if err != nil {
				return "", errors.WithStack(err)
			}

			return t.Invoke(ctx, query), nil
		},
	)
}

func (t *NaverSearch) render(ctx context.Context, items []naver.Item) string {
	output, err := Render(items)
	if err != nil {
		slog.ErrorContext(t.logContext(ctx), "could not encode naver search results", slog.Any("error", err))
		return err.Error()
	}

	return output
}

// Render encodes the items as a JSON array of records.
func Render(items []naver.Item) (string, error) {
	if items == nil {
		items = []naver.Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(data), nil
}

func (t *NaverSearch) requestOptions() []naver.RequestOptionFunc {
	return t.opts.requestOptions(t.definition.SearchType)
}

func (t *NaverSearch) logContext(ctx context.Context) context.Context {
	return logx.WithAttrs(ctx,
		slog.String("tool", t.definition.Name),
		slog.String("search_type", t.definition.SearchType.String()),
	)
}

func NewNaverSearch(searcher Searcher, definition Definition, funcs ...NaverSearchOptionFunc) *NaverSearch {
	return &NaverSearch{
		definition: definition,
		searcher:   searcher,
		opts:       newNaverSearchOptions(funcs...),
	}
}

// NewNaverSearchTools creates one tool per definition, all sharing the same
// searcher and options.
func NewNaverSearchTools(searcher Searcher, funcs ...NaverSearchOptionFunc) []*NaverSearch {
	definitions := Definitions()

	tools := make([]*NaverSearch, 0, len(definitions))
	for _, d := range definitions {
		tools = append(tools, NewNaverSearch(searcher, d, funcs...))
	}

	return tools
}
