package naver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bornholm/naversearch/pkg/search"
	"github.com/pkg/errors"
)

const (
	headerClientID     = "X-Naver-Client-Id"
	headerClientSecret = "X-Naver-Client-Secret"
)

// Client performs authenticated requests against the Naver search API.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	http         *http.Client
	defaults     []RequestOptionFunc
}

// Outcome is the value delivered by the asynchronous calls.
type Outcome struct {
	Items []Item
	Err   error
}

// EndpointURL returns the URL of the JSON endpoint of the given search type.
func (c *Client) EndpointURL(searchType SearchType) (string, error) {
	endpoint, err := searchType.Endpoint()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSuffix(c.baseURL, "/") + "/" + endpoint + ".json", nil
}

// RawResults executes the search and returns the decoded API payload.
func (c *Client) RawResults(ctx context.Context, query string, funcs ...RequestOptionFunc) (*Response, error) {
	opts := c.requestOptions(funcs)

	req, err := c.newRequest(ctx, query, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "executing naver search",
		slog.String("search_type", opts.SearchType.String()),
		slog.String("url", req.URL.String()),
	)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "naver %s search request failed", opts.SearchType)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.WithStack(newStatusError(res))
	}

	var response Response
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "could not decode naver search response")
	}

	return &response, nil
}

// Results executes the search and returns the cleaned items, truncated to
// the MaxResults request option.
func (c *Client) Results(ctx context.Context, query string, funcs ...RequestOptionFunc) ([]Item, error) {
	response, err := c.RawResults(ctx, query, funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := c.requestOptions(funcs)

	return truncate(CleanItems(response.Items), opts.MaxResults), nil
}

// ResultsAsync is the non-blocking form of Results. The returned channel
// receives exactly one Outcome and is then closed.
func (c *Client) ResultsAsync(ctx context.Context, query string, funcs ...RequestOptionFunc) <-chan Outcome {
	outcome := make(chan Outcome, 1)

	go func() {
		defer close(outcome)

		items, err := c.Results(ctx, query, funcs...)
		outcome <- Outcome{Items: items, Err: err}
	}()

	return outcome
}

// Search implements search.Client with the client default request options.
func (c *Client) Search(ctx context.Context, query string) ([]search.Result, error) {
	return c.Searcher().Search(ctx, query)
}

// Searcher returns a search.Client bound to the given request options.
func (c *Client) Searcher(funcs ...RequestOptionFunc) search.Client {
	return &searcher{client: c, funcs: funcs}
}

func (c *Client) requestOptions(funcs []RequestOptionFunc) *RequestOptions {
	all := make([]RequestOptionFunc, 0, len(c.defaults)+len(funcs))
	all = append(all, c.defaults...)
	all = append(all, funcs...)

	return NewRequestOptions(all...)
}

func (c *Client) newRequest(ctx context.Context, query string, opts *RequestOptions) (*http.Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Wrap(ErrInvalidParameter, "query must not be empty")
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	if c.clientID == "" || c.clientSecret == "" {
		return nil, errors.WithStack(ErrMissingCredentials)
	}

	endpointURL, err := c.EndpointURL(opts.SearchType)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	u, err := url.Parse(endpointURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint url '%s'", endpointURL)
	}

	params := u.Query()
	params.Set("query", query)
	params.Set("display", strconv.Itoa(opts.Display))
	params.Set("start", strconv.Itoa(opts.Start))
	params.Set("sort", string(opts.Sort))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set(headerClientID, c.clientID)
	req.Header.Set(headerClientSecret, c.clientSecret)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

type searcher struct {
	client *Client
	funcs  []RequestOptionFunc
}

// Search implements search.Client.
func (s *searcher) Search(ctx context.Context, query string) ([]search.Result, error) {
	items, err := s.client.Results(ctx, query, s.funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	source := s.client.requestOptions(s.funcs).SearchType.String()

	results := make([]search.Result, 0, len(items))
	for _, item := range items {
		results = append(results, search.Result{
			Title:       item.Title,
			URL:         item.Link,
			Description: item.Description,
			Source:      source,
			Metadata:    item.Metadata,
		})
	}

	return results, nil
}

// NewClient creates a Naver search API client. Credentials are checked on
// each call, before any network activity.
func NewClient(funcs ...OptionFunc) *Client {
	opts := defaultOptions()
	for _, fn := range funcs {
		fn(opts)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		clientID:     strings.TrimSpace(opts.ClientID),
		clientSecret: strings.TrimSpace(opts.ClientSecret),
		baseURL:      opts.BaseURL,
		http:         httpClient,
		defaults:     opts.Defaults,
	}
}

var (
	_ search.Client = &Client{}
	_ search.Client = &searcher{}
)
