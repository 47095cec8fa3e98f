package trongrid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/seedscan/seedscan-daemon/pkg/circuitbreaker"
	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/pricing"
	"github.com/seedscan/seedscan-daemon/pkg/util"
)

// apiKeyHeader is TronGrid's API key convention: a custom header, not a
// query parameter.
const apiKeyHeader = "TRON-PRO-API-KEY"

type trongrid struct {
	apiURL       string
	apiKey       string
	linkBaseURL  string
	usdtContract string
	client       *util.HTTPClient
	cb           *gobreaker.CircuitBreaker
	limiter      ratelimit.Limiter
	oracle       pricing.Oracle
}

// ServiceOpts is the struct given to the NewService method.
type ServiceOpts struct {
	APIURL              string
	APIKey              string
	ExplorerLinkBaseURL string
	USDTContract        string
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

// NewService returns a new trongrid service as an explorer.Service interface
func NewService(opts ServiceOpts) (explorer.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &trongrid{
		apiURL:       opts.APIURL,
		apiKey:       opts.APIKey,
		linkBaseURL:  opts.ExplorerLinkBaseURL,
		usdtContract: opts.USDTContract,
		client:       util.NewHTTPClient(opts.RequestTimeout),
		cb:           circuitbreaker.NewCircuitBreaker("trongrid"),
		limiter:      opts.Limiter,
		oracle:       opts.Oracle,
	}, nil
}

func (t *trongrid) get(
	ctx context.Context, path string, query url.Values,
) (*envelope, error) {
	t.limiter.Take()

	var header map[string]string
	if len(t.apiKey) > 0 {
		header = map[string]string{apiKeyHeader: t.apiKey}
	}

	res, err := t.cb.Execute(func() (interface{}, error) {
		status, body, err := t.client.Get(ctx, t.apiURL+path, query, header)
		if err != nil {
			return nil, err
		}
		if status >= http.StatusBadRequest {
			return nil, fmt.Errorf("explorer responded with status %d", status)
		}
		if status == http.StatusNoContent || len(body) <= 0 {
			return nil, fmt.Errorf("explorer responded with an empty body")
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(res.(string)), &env); err != nil {
		return nil, fmt.Errorf("invalid explorer response: not JSON")
	}
	return &env, nil
}
