package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"btcforge/logx"
	"btcforge/service"
	"btcforge/types"
)

// createCmd builds an unsigned transaction from a JSON request.
var createCmd = &cobra.Command{
	Use:   "create [json_request]",
	Short: "Build an unsigned transaction",
	Long: `Builds an unsigned transaction from a JSON request given as an argument or
on stdin.

Example request:
  {"inputs": [{"txid": "<64 hex chars>", "vout": 0}],
   "outputs": [{"address": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "amount": 10000}]}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := netParams()
		if err != nil {
			return err
		}

		var req types.CreateTxRequest
		if err := readJSONRequest(args, &req); err != nil {
			return err
		}

		svc := service.NewWalletService(params, nil, nil, nil, nil)
		res, err := svc.CreateTransaction(context.Background(), &req)
		if err != nil {
			logx.Error("CREATE CLI", err)
			return err
		}
		return printJSON(res)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
