package trongrid

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

	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/pricing"
)

const (
	testAddress  = "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8"
	testContract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
)

func newTestService(t *testing.T, handler http.Handler) explorer.Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewService(ServiceOpts{
		APIURL:              server.URL,
		APIKey:              "test-key",
		ExplorerLinkBaseURL: "https://tronscan.org/#/address/",
		USDTContract:        testContract,
		RequestTimeout:      5 * time.Second,
		Oracle:              pricing.NewDefaultOracle(),
		Limiter:             ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)
	return svc
}

func TestAddressReport(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("TRON-PRO-API-KEY"))

			switch r.URL.Path {
			case "/v1/accounts/" + testAddress:
				// 5 TRX in sun plus 1 USDT in token units.
				w.Write([]byte(`{
					"success": true,
					"data": [{
						"balance": 5000000,
						"trc20": [{"` + testContract + `": "1000000"}]
					}]
				}`))
			case "/v1/accounts/" + testAddress + "/transactions":
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				w.Write([]byte(`{"success": true, "data": [{"txID": "deadbeef"}]}`))
			default:
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.Equal(decimal.NewFromInt(6)))
	// 5 TRX * 0.12 + 1 USDT * 1.
	assert.True(t, report.BalanceUSD.Equal(decimal.NewFromFloat(1.6)))
	assert.True(t, report.HasRealBalance)
	assert.True(t, report.HasTransactions)
	assert.Equal(t, "https://tronscan.org/#/address/"+testAddress, report.ExplorerLink)
}

func TestAddressReportNeverActivatedAccount(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "data": []}`))
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.IsZero())
	assert.False(t, report.HasRealBalance)
	assert.False(t, report.HasTransactions)
}

func TestAddressReportExplorerWarning(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "message": "exceeds the frequency limit", "data": []}`))
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.IsZero())
	assert.False(t, report.HasRealBalance)
}

func TestAddressReportHistoryFailureKeepsBalance(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/accounts/"+testAddress {
				w.Write([]byte(`{"success": true, "data": [{"balance": 12000000, "trc20": []}]}`))
				return
			}
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.Equal(decimal.NewFromInt(12)))
	assert.True(t, report.HasRealBalance)
	assert.False(t, report.HasTransactions)
}

func TestAddressReportNoUSDTHolding(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/accounts/"+testAddress {
				w.Write([]byte(`{
					"success": true,
					"data": [{
						"balance": 1000000,
						"trc20": [{"TSomeOtherTokenContract": "999"}]
					}]
				}`))
				return
			}
			w.Write([]byte(`{"success": true, "data": []}`))
		},
	))

	report, err := svc.AddressReport(context.Background(), testAddress)
	require.NoError(t, err)

	assert.True(t, report.BalanceCrypto.Equal(decimal.NewFromInt(1)))
	assert.False(t, report.HasTransactions)
}

func TestAddressReportFatalFailure(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	))

	_, err := svc.AddressReport(context.Background(), testAddress)
	require.Error(t, err)
}
