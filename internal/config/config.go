package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/viper"
)

const (
	// BaseUrlKey is the key to customize the url of the remote Esplora
	// instance to query.
	BaseUrlKey = "BASE_URL"
	// NetworkKey is the key to customize the Bitcoin network. It drives the
	// decoding of addresses given as command args.
	NetworkKey = "NETWORK"
	// LogLevelKey is the key to customize the log level to catch more specific
	// or more high level logs.
	LogLevelKey = "LOG_LEVEL"
	// RequestTimeoutKey is the key to customize the timeout of every request
	// sent to the remote Esplora instance.
	RequestTimeoutKey = "REQUEST_TIMEOUT_IN_SECONDS"
)

var (
	vip *viper.Viper

	defaultBaseUrl        = "https://blockstream.info/api"
	defaultNetwork        = chaincfg.MainNetParams.Name
	defaultLogLevel       = 4
	defaultRequestTimeout = 30

	supportedNetworks = map[string]*chaincfg.Params{
		chaincfg.MainNetParams.Name:       &chaincfg.MainNetParams,
		chaincfg.TestNet3Params.Name:      &chaincfg.TestNet3Params,
		chaincfg.SigNetParams.Name:        &chaincfg.SigNetParams,
		chaincfg.RegressionNetParams.Name: &chaincfg.RegressionNetParams,
	}
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("ESPLORA")
	vip.AutomaticEnv()

	vip.SetDefault(BaseUrlKey, defaultBaseUrl)
	vip.SetDefault(NetworkKey, defaultNetwork)
	vip.SetDefault(LogLevelKey, defaultLogLevel)
	vip.SetDefault(RequestTimeoutKey, defaultRequestTimeout)

	if err := validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
}

func validate() error {
	baseUrl := GetString(BaseUrlKey)
	if len(baseUrl) <= 0 {
		return fmt.Errorf("base url must not be null")
	}
	if _, err := url.ParseRequestURI(baseUrl); err != nil {
		return fmt.Errorf("invalid base url: %s", err)
	}

	net := GetString(NetworkKey)
	if len(net) == 0 {
		return fmt.Errorf("network must not be null")
	}
	if _, ok := supportedNetworks[net]; !ok {
		return fmt.Errorf(
			"unknown network, must be one of: %s", GetSupportedNetworks(),
		)
	}

	if timeout := GetInt(RequestTimeoutKey); timeout <= 0 {
		return fmt.Errorf("request timeout must be a positive amount of seconds")
	}

	return nil
}

func GetNetwork() *chaincfg.Params {
	return supportedNetworks[GetString(NetworkKey)]
}

func GetSupportedNetworks() string {
	nets := make([]string, 0, len(supportedNetworks))
	for net := range supportedNetworks {
		nets = append(nets, net)
	}
	return strings.Join(nets, " | ")
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}
