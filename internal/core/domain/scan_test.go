package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
)

func TestScanRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		request     ScanRequest
		expectedErr error
	}{
		{
			name: "valid evm only",
			request: ScanRequest{
				SeedPhrase:       "abandon abandon abandon",
				SelectedNetworks: []hdwallet.Network{hdwallet.NetworkETH},
			},
		},
		{
			name: "valid btc with address type",
			request: ScanRequest{
				SeedPhrase:          "abandon abandon abandon",
				SelectedNetworks:    []hdwallet.Network{hdwallet.NetworkBTC},
				BitcoinAddressTypes: []hdwallet.AddressFormat{hdwallet.FormatBech32},
			},
		},
		{
			name: "missing seed phrase",
			request: ScanRequest{
				SelectedNetworks: []hdwallet.Network{hdwallet.NetworkETH},
			},
			expectedErr: ErrNullSeedPhrase,
		},
		{
			name: "missing networks",
			request: ScanRequest{
				SeedPhrase: "abandon abandon abandon",
			},
			expectedErr: ErrNullNetworks,
		},
		{
			name: "btc without address types",
			request: ScanRequest{
				SeedPhrase:       "abandon abandon abandon",
				SelectedNetworks: []hdwallet.Network{hdwallet.NetworkBTC},
			},
			expectedErr: ErrNullBitcoinAddressTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedErr != nil {
				require.EqualError(t, err, tt.expectedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestScanRequestWithDefaults(t *testing.T) {
	request := ScanRequest{}.WithDefaults()
	assert.Equal(t, "0", request.AccountIndices)
	assert.Equal(t, "0-10", request.AddressIndices)

	request = ScanRequest{
		AccountIndices: "1-2",
		AddressIndices: "5",
	}.WithDefaults()
	assert.Equal(t, "1-2", request.AccountIndices)
	assert.Equal(t, "5", request.AddressIndices)
}

func TestWalletReportHasFunds(t *testing.T) {
	report := WalletReport{}
	assert.False(t, report.HasFunds())

	report.HasRealBalance = true
	assert.True(t, report.HasFunds())

	report = WalletReport{}
	report.HasTransactions = true
	assert.True(t, report.HasFunds())
}
