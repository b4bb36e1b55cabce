package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"btcforge/logx"
)

var utxosCmd = &cobra.Command{
	Use:   "utxos <address>",
	Short: "List the unspent outputs of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := explorerClient()
		if err != nil {
			return err
		}
		utxos, err := client.ListUTXOs(context.Background(), args[0])
		if err != nil {
			logx.Error("UTXOS CLI", err)
			return err
		}
		if len(utxos) == 0 {
			fmt.Println("no unspent outputs")
			return nil
		}
		return printJSON(utxos)
	},
}

func init() {
	rootCmd.AddCommand(utxosCmd)
}
