package config

import (
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"btcforge/logx"
)

// Config is the main service configuration, loaded from a yaml file.
type Config struct {
	// Network selects the target Bitcoin network: mainnet, testnet3 or
	// regtest. Passed explicitly into every codec and signer call.
	Network string `yaml:"network"`

	// RPCListen is the JSON-RPC listen address.
	RPCListen string `yaml:"rpc_listen"`

	// MetricsListen is the prometheus listen address.
	MetricsListen string `yaml:"metrics_listen"`

	// HistoryPath is the bbolt history database file.
	HistoryPath string `yaml:"history_path"`
}

// ConfigFile wraps Config under a top-level key.
type ConfigFile struct {
	Config Config `yaml:"config"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Network:       "mainnet",
		RPCListen:     ":8545",
		MetricsListen: ":9100",
		HistoryPath:   "./btcforge-history.db",
	}
}

// LoadConfig reads and parses the yaml config file. Missing fields keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", "failed to open config file: ", err)
		return nil, err
	}
	defer file.Close()

	cfgFile := ConfigFile{Config: *DefaultConfig()}
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		logx.Error("CONFIG", "failed to decode yaml config: ", err)
		return nil, err
	}
	logx.Info("CONFIG", "loaded config: network=", cfgFile.Config.Network, " rpc=", cfgFile.Config.RPCListen)
	return &cfgFile.Config, nil
}

// ExplorerConfig tunes the block explorer client, loaded from an .ini file.
type ExplorerConfig struct {
	BaseURL   string `ini:"base_url"`
	TimeoutMs int    `ini:"timeout_ms"`
}

// DefaultExplorerConfig returns the explorer tuning used when no file is
// given. An empty BaseURL selects the public endpoint.
func DefaultExplorerConfig() *ExplorerConfig {
	return &ExplorerConfig{TimeoutMs: 15000}
}

// LoadExplorerConfig reads the [explorer] section of an .ini file.
func LoadExplorerConfig(path string) (*ExplorerConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	explorerCfg := DefaultExplorerConfig()
	if err := cfg.Section("explorer").MapTo(explorerCfg); err != nil {
		return nil, err
	}
	return explorerCfg, nil
}
