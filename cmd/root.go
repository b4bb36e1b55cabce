package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"btcforge/chaincfg"
	"btcforge/logx"
)

var networkName string

var rootCmd = &cobra.Command{
	Use:   "btcforge",
	Short: "Bitcoin transaction construction and signing CLI",
	Long:  "Command line interface for building, signing and broadcasting legacy Bitcoin transactions.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&networkName, "network", "n", "mainnet", "target network: mainnet, testnet3 or regtest")
}

// netParams resolves the --network flag.
func netParams() (*chaincfg.Params, error) {
	return chaincfg.ParamsForName(networkName)
}
