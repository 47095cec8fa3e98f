package esplora

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/seedscan/seedscan-daemon/pkg/circuitbreaker"
	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/pricing"
	"github.com/seedscan/seedscan-daemon/pkg/util"
)

type esplora struct {
	apiURL      string
	linkBaseURL string
	client      *util.HTTPClient
	cb          *gobreaker.CircuitBreaker
	limiter     ratelimit.Limiter
	oracle      pricing.Oracle
}

// ServiceOpts is the struct given to the NewService method.
type ServiceOpts struct {
	APIURL              string
	ExplorerLinkBaseURL string
	RequestTimeout      time.Duration
	Oracle              pricing.Oracle
	Limiter             ratelimit.Limiter
}

func (o ServiceOpts) validate() error {
	if len(o.APIURL) <= 0 {
		return fmt.Errorf("api url must not be null")
	}
	if o.Oracle == nil {
		return fmt.Errorf("price oracle must not be null")
	}
	if o.Limiter == nil {
		return fmt.Errorf("rate limiter must not be null")
	}
	return nil
}

// NewService returns a new esplora service as an explorer.Service interface
func NewService(opts ServiceOpts) (explorer.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &esplora{
		apiURL:      opts.APIURL,
		linkBaseURL: opts.ExplorerLinkBaseURL,
		client:      util.NewHTTPClient(opts.RequestTimeout),
		cb:          circuitbreaker.NewCircuitBreaker("esplora"),
		limiter:     opts.Limiter,
		oracle:      opts.Oracle,
	}, nil
}

func (e *esplora) get(ctx context.Context, url string) (int, string, error) {
	e.limiter.Take()

	res, err := e.cb.Execute(func() (interface{}, error) {
		status, body, err := e.client.Get(ctx, url, nil, nil)
		if err != nil {
			return nil, err
		}
		if status >= http.StatusBadRequest {
			return nil, fmt.Errorf("explorer responded with status %d", status)
		}
		return [2]interface{}{status, body}, nil
	})
	if err != nil {
		return 0, "", err
	}

	pair := res.([2]interface{})
	return pair[0].(int), pair[1].(string), nil
}
