package naver

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Sort string

const (
	SortSimilarity Sort = "sim"
	SortDate       Sort = "date"
)

const (
	DefaultDisplay = 10
	DefaultStart   = 1

	MaxDisplay = 100
	MaxStart   = 1000
)

// RequestOptions are the per-call parameters of a search.
type RequestOptions struct {
	SearchType SearchType
	Display    int
	Start      int
	Sort       Sort

	// MaxResults truncates the cleaned result list. Zero disables truncation.
	MaxResults int
}

func (o *RequestOptions) Validate() error {
	if _, err := o.SearchType.Endpoint(); err != nil {
		return errors.WithStack(err)
	}

	if o.Display < 1 || o.Display > MaxDisplay {
		return errors.Wrapf(ErrInvalidParameter, "display must be between 1 and %d, got %d", MaxDisplay, o.Display)
	}

	if o.Start < 1 || o.Start > MaxStart {
		return errors.Wrapf(ErrInvalidParameter, "start must be between 1 and %d, got %d", MaxStart, o.Start)
	}

	if o.Sort != SortSimilarity && o.Sort != SortDate {
		return errors.Wrapf(ErrInvalidParameter, "sort must be '%s' or '%s', got '%s'", SortSimilarity, SortDate, o.Sort)
	}

	if o.MaxResults < 0 {
		return errors.Wrapf(ErrInvalidParameter, "max results must be positive, got %d", o.MaxResults)
	}

	return nil
}

type RequestOptionFunc func(opts *RequestOptions)

// NewRequestOptions returns the default request options with the given
// functions applied in order.
func NewRequestOptions(funcs ...RequestOptionFunc) *RequestOptions {
	opts := &RequestOptions{
		SearchType: News,
		Display:    DefaultDisplay,
		Start:      DefaultStart,
		Sort:       SortSimilarity,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSearchType(searchType SearchType) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.SearchType = searchType
	}
}

func WithDisplay(display int) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.Display = display
	}
}

func WithStart(start int) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.Start = start
	}
}

func WithSort(sort Sort) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.Sort = Sort(strings.ToLower(string(sort)))
	}
}

func WithMaxResults(max int) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.MaxResults = max
	}
}

// Options configure a Client.
type Options struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	HTTPClient   *http.Client
	Defaults     []RequestOptionFunc
}

type OptionFunc func(opts *Options)

func WithCredentials(clientID, clientSecret string) OptionFunc {
	return func(opts *Options) {
		opts.ClientID = clientID
		opts.ClientSecret = clientSecret
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

// WithConfig applies the credentials, base url and timeout of conf.
func WithConfig(conf Config) OptionFunc {
	return func(opts *Options) {
		opts.ClientID = conf.ClientID
		opts.ClientSecret = conf.ClientSecret

		if conf.BaseURL != "" {
			opts.BaseURL = conf.BaseURL
		}

		if conf.Timeout > 0 {
			opts.HTTPClient = &http.Client{Timeout: conf.Timeout}
		}
	}
}

// WithDefaults sets the request options applied before the per-call ones.
func WithDefaults(funcs ...RequestOptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.Defaults = append(opts.Defaults, funcs...)
	}
}

func defaultOptions() *Options {
	return &Options{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}
