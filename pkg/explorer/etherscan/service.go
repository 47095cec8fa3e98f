package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/seedscan/seedscan-daemon/pkg/circuitbreaker"
	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/pricing"
	"github.com/seedscan/seedscan-daemon/pkg/util"
)

// etherscan queries the unified Etherscan V2 endpoint, parameterized by
// chain id so one adapter serves every EVM network.
type etherscan struct {
	apiURL       string
	apiKey       string
	chainID      int
	linkBaseURL  string
	usdtContract string
	priceSymbol  string
	client       *util.HTTPClient
	cb           *gobreaker.CircuitBreaker
	limiter      ratelimit.Limiter
	oracle       pricing.Oracle
}

// ServiceOpts is the struct given to the NewService method.
type ServiceOpts struct {
	APIURL              string
	APIKey              string
	ChainID             int
	ExplorerLinkBaseURL string
	USDTContract        string
	// PriceSymbol is the oracle symbol of the chain's native asset.
	PriceSymbol    string
	RequestTimeout time.Duration
	Oracle         pricing.Oracle
	Limiter        ratelimit.Limiter
}

func (o ServiceOpts) validate() error {
	if len(o.APIURL) <= 0 {
		return fmt.Errorf("api url must not be null")
	}
	if o.ChainID <= 0 {
		return fmt.Errorf("chain id must be a positive number")
	}
	if len(o.PriceSymbol) <= 0 {
		return fmt.Errorf("price symbol must not be null")
	}
	if o.Oracle == nil {
		return fmt.Errorf("price oracle must not be null")
	}
	if o.Limiter == nil {
		return fmt.Errorf("rate limiter must not be null")
	}
	return nil
}

// NewService returns a new etherscan service as an explorer.Service interface
func NewService(opts ServiceOpts) (explorer.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &etherscan{
		apiURL:       opts.APIURL,
		apiKey:       opts.APIKey,
		chainID:      opts.ChainID,
		linkBaseURL:  opts.ExplorerLinkBaseURL,
		usdtContract: opts.USDTContract,
		priceSymbol:  opts.PriceSymbol,
		client:       util.NewHTTPClient(opts.RequestTimeout),
		cb:           circuitbreaker.NewCircuitBreaker(fmt.Sprintf("etherscan-%d", opts.ChainID)),
		limiter:      opts.Limiter,
		oracle:       opts.Oracle,
	}, nil
}

// query runs one module=account action against the unified endpoint and
// decodes the response envelope. Transport failures, non-2xx statuses and
// non-JSON bodies are fatal.
func (s *etherscan) query(
	ctx context.Context, address, action string, extra url.Values,
) (*envelope, error) {
	s.limiter.Take()

	query := url.Values{
		"module":  {"account"},
		"action":  {action},
		"address": {address},
		"chainid": {strconv.Itoa(s.chainID)},
		"tag":     {"latest"},
	}
	for key, values := range extra {
		query[key] = values
	}
	if len(s.apiKey) > 0 {
		query.Set("apikey", s.apiKey)
	}

	res, err := s.cb.Execute(func() (interface{}, error) {
		status, body, err := s.client.Get(ctx, s.apiURL, query, nil)
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
