package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedscan/seedscan-daemon/internal/core/domain"
	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 8080, GetInt(HTTPListeningPortKey))
	assert.Equal(t, "https://blockstream.info/api", GetString(EsploraEndpointKey))
	assert.Equal(t, "https://api.etherscan.io/v2/api", GetString(EtherscanEndpointKey))
	assert.Equal(t, "https://api.trongrid.io", GetString(TronGridEndpointKey))
	assert.Equal(t, 15*time.Second, GetDuration(ExplorerRequestTimeoutKey, time.Millisecond))
	assert.Equal(t, 4, GetInt(MaxConcurrentLookupsKey))
}

func TestSetOverridesDefault(t *testing.T) {
	Set(MaxConcurrentLookupsKey, 8)
	defer Set(MaxConcurrentLookupsKey, 4)

	assert.Equal(t, 8, GetInt(MaxConcurrentLookupsKey))
}

func TestNewExplorerFactory(t *testing.T) {
	factory := NewExplorerFactory()
	keys := domain.APIKeys{Ethereum: "eth-key", Tron: "trx-key"}

	supported := []hdwallet.Network{
		hdwallet.NetworkBTC,
		hdwallet.NetworkETH,
		hdwallet.NetworkBSC,
		hdwallet.NetworkMATIC,
		hdwallet.NetworkBASE,
		hdwallet.NetworkOPTIMISM,
		hdwallet.NetworkARBITRUM,
		hdwallet.NetworkTRX,
	}
	for _, network := range supported {
		svc, err := factory.NewService(network, keys)
		require.NoError(t, err, string(network))
		require.NotNil(t, svc, string(network))
	}

	_, err := factory.NewService(hdwallet.Network("DOGE"), keys)
	require.Error(t, err)
}
