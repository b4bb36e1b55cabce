package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"btcforge/logx"
	"btcforge/service"
	"btcforge/types"
)

// signCmd signs an unsigned transaction with WIF keys supplied per input.
var signCmd = &cobra.Command{
	Use:   "sign [json_request]",
	Short: "Sign an unsigned transaction",
	Long: `Signs every input of an unsigned transaction. The n-th key entry signs the
n-th transaction input.

Example request:
  {"unsigned_tx_hex": "...",
   "inputs": [{"private_key_wif": "5K...", "address": "1A1z..."}]}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := netParams()
		if err != nil {
			return err
		}

		var req types.SignTxRequest
		if err := readJSONRequest(args, &req); err != nil {
			return err
		}

		svc := service.NewWalletService(params, nil, nil, nil, nil)
		res, err := svc.SignTransaction(context.Background(), &req)
		if err != nil {
			logx.Error("SIGN CLI", err)
			return err
		}
		return printJSON(res)
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
}
