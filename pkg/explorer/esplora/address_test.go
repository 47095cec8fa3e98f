package esplora

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/ratelimit"

	"github.com/seedscan/seedscan-daemon/pkg/pricing"
)

const testAddress = "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"

func newTestService(t *testing.T, handler http.Handler) (*httptest.Server, *esplora) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewService(ServiceOpts{
		APIURL:              server.URL,
		ExplorerLinkBaseURL: "https://example.com/address/",
		RequestTimeout:      5 * time.Second,
		Oracle:              pricing.NewDefaultOracle(),
		Limiter:             ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)
	return server, svc.(*esplora)
}

func TestAddressReport(t *testing.T) {
	_, svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/address/"+testAddress, r.URL.Path)
			w.Write([]byte(`{
				"address": "` + testAddress + `",
				"chain_stats": {"funded_txo_sum": 150000000, "spent_txo_sum": 50000000, "tx_count": 4},
				"mempool_stats": {"funded_txo_sum": 0, "spent_txo_sum": 0, "tx_count": 1}
			}`))
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.Equal(decimal.NewFromInt(1)))
	assert.True(t, report.BalanceUSD.Equal(decimal.NewFromInt(70000)))
	assert.True(t, report.HasTransactions)
	assert.True(t, report.HasRealBalance)
	require.NotNil(t, report.BalanceSats)
	assert.Equal(t, int64(100000000), *report.BalanceSats)
	assert.Equal(t, "https://example.com/address/"+testAddress, report.ExplorerLink)
	assert.Empty(t, report.FatalError)
}

func TestAddressReportEmptyAddress(t *testing.T) {
	_, svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"address": "` + testAddress + `",
				"chain_stats": {"funded_txo_sum": 0, "spent_txo_sum": 0, "tx_count": 0},
				"mempool_stats": {"funded_txo_sum": 0, "spent_txo_sum": 0, "tx_count": 0}
			}`))
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.IsZero())
	assert.False(t, report.HasTransactions)
	assert.False(t, report.HasRealBalance)
}

func TestAddressReportFullySpent(t *testing.T) {
	_, svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"chain_stats": {"funded_txo_sum": 200000, "spent_txo_sum": 200000, "tx_count": 2},
				"mempool_stats": {"funded_txo_sum": 0, "spent_txo_sum": 0, "tx_count": 0}
			}`))
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	// History without balance still counts as activity.
	assert.True(t, report.HasTransactions)
	assert.False(t, report.HasRealBalance)
	assert.True(t, report.BalanceCrypto.IsZero())
}

func TestAddressReportFatalFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		_, svc := newTestService(t, http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		))
		_, err := svc.AddressReport(context.Background(), testAddress)
		require.Error(t, err)
	})

	t.Run("non-JSON body", func(t *testing.T) {
		_, svc := newTestService(t, http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json at all"))
			},
		))
		_, err := svc.AddressReport(context.Background(), testAddress)
		require.Error(t, err)
	})
}

func TestAddressReportNoContent(t *testing.T) {
	_, svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)
	assert.True(t, report.BalanceCrypto.IsZero())
	assert.False(t, report.HasRealBalance)
}
