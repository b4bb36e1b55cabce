package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"btcforge/logx"
	"btcforge/service"
	"btcforge/types"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast <signed_tx_hex>",
	Short: "Broadcast a signed transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := netParams()
		if err != nil {
			return err
		}
		client, err := explorerClient()
		if err != nil {
			return err
		}

		svc := service.NewWalletService(params, nil, nil, client, nil)
		res, err := svc.Broadcast(context.Background(), args[0])
		if err != nil {
			logx.Error("BROADCAST CLI", err)
			return err
		}
		return printJSON(&types.BroadcastResponse{Txid: res.Txid})
	},
}

func init() {
	rootCmd.AddCommand(broadcastCmd)
}
