package meta

import (
	"context"
	"sync"

	se "github.com/bornholm/naversearch/pkg/search"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Client queries several search clients concurrently and merges their
// results, in client order, dropping duplicated URLs.
type Client struct {
	clients []se.Client
}

// Search implements search.Client.
//
// Results of the clients that succeeded are returned along with the
// aggregated errors of the ones that failed.
func (s *Client) Search(ctx context.Context, search string) ([]se.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	perClient := make([][]se.Result, len(s.clients))

	var errLock sync.Mutex
	var aggregatedErr error

	var wg sync.WaitGroup

	wg.Add(len(s.clients))

	for i, e := range s.clients {
		go func(idx int, engine se.Client) {
			defer wg.Done()

			engineResults, err := engine.Search(ctx, search)
			if err != nil {
				errLock.Lock()
				aggregatedErr = multierror.Append(aggregatedErr, errors.WithStack(err))
				errLock.Unlock()
				return
			}

			perClient[idx] = engineResults
		}(i, e)
	}

	wg.Wait()

	mergedResults := make([]se.Result, 0)
	resultSet := make(map[string]struct{})

	for _, results := range perClient {
		for _, r := range results {
			if r.URL != "" {
				if _, exists := resultSet[r.URL]; exists {
					continue
				}

				resultSet[r.URL] = struct{}{}
			}

			mergedResults = append(mergedResults, r)
		}
	}

	if aggregatedErr != nil {
		return mergedResults, aggregatedErr
	}

	return mergedResults, nil
}

func NewClient(clients ...se.Client) *Client {
	return &Client{
		clients: clients,
	}
}

var _ se.Client = &Client{}
