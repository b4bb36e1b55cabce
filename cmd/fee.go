package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"btcforge/logx"
)

var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "Show tiered fee-rate estimates in sat/vB",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := explorerClient()
		if err != nil {
			return err
		}
		est, err := client.EstimateFee(context.Background())
		if err != nil {
			logx.Error("FEE CLI", err)
			return err
		}
		return printJSON(est)
	},
}

func init() {
	rootCmd.AddCommand(feeCmd)
}
