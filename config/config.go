package config

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// HTTPListeningPortKey is the port where the HTTP interface will listen on
	HTTPListeningPortKey = "HTTP_LISTENING_PORT"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// EsploraEndpointKey is the endpoint where the Esplora REST API is listening
	EsploraEndpointKey = "ESPLORA_ENDPOINT"
	// EtherscanEndpointKey is the unified Etherscan V2 endpoint serving every EVM chain
	EtherscanEndpointKey = "ETHERSCAN_ENDPOINT"
	// TronGridEndpointKey is the endpoint where the TronGrid REST API is listening
	TronGridEndpointKey = "TRONGRID_ENDPOINT"
	// ExplorerRequestTimeoutKey are the milliseconds to wait for HTTP responses before timeouts
	ExplorerRequestTimeoutKey = "EXPLORER_REQUEST_TIMEOUT"
	// ScanTimeoutKey are the seconds one whole scan may take before its lookups are cut off
	ScanTimeoutKey = "SCAN_TIMEOUT"
	// MaxConcurrentLookupsKey is the number of explorer lookups allowed to run at once
	MaxConcurrentLookupsKey = "MAX_CONCURRENT_LOOKUPS"
	// EsploraRateLimitKey is the number of requests per second allowed towards the Esplora backend
	EsploraRateLimitKey = "ESPLORA_RATE_LIMIT"
	// EtherscanRateLimitKey is the number of requests per second allowed towards the Etherscan backend
	EtherscanRateLimitKey = "ETHERSCAN_RATE_LIMIT"
	// TronGridRateLimitKey is the number of requests per second allowed towards the TronGrid backend
	TronGridRateLimitKey = "TRONGRID_RATE_LIMIT"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("SEEDSCAN")
	vip.AutomaticEnv()

	vip.SetDefault(HTTPListeningPortKey, 8080)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(EsploraEndpointKey, "https://blockstream.info/api")
	vip.SetDefault(EtherscanEndpointKey, "https://api.etherscan.io/v2/api")
	vip.SetDefault(TronGridEndpointKey, "https://api.trongrid.io")
	vip.SetDefault(ExplorerRequestTimeoutKey, 15000)
	vip.SetDefault(ScanTimeoutKey, 120)
	vip.SetDefault(MaxConcurrentLookupsKey, 4)
	vip.SetDefault(EsploraRateLimitKey, 2)
	vip.SetDefault(EtherscanRateLimitKey, 4)
	vip.SetDefault(TronGridRateLimitKey, 3)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDuration returns the value of the key in the given unit
func GetDuration(key string, unit time.Duration) time.Duration {
	return time.Duration(vip.GetInt(key)) * unit
}

// InitLogger sets up the logging level from config
func InitLogger() {
	log.SetLevel(log.Level(GetInt(LogLevelKey)))
}
