package cmd

import (
	"time"

	"btcforge/config"
	"btcforge/explorer"
)

var explorerConfigPath string

// explorerClient builds the explorer client from --explorer-config when
// given, otherwise from defaults.
func explorerClient() (*explorer.Client, error) {
	cfg := config.DefaultExplorerConfig()
	if explorerConfigPath != "" {
		loaded, err := config.LoadExplorerConfig(explorerConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return explorer.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&explorerConfigPath, "explorer-config", "", "path to explorer .ini config")
}
