package cmd

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spf13/cobra"

	"btcforge/wallet"
)

var keygenUncompressed bool

// keygenCmd creates a fresh random key pair. The key is printed once and
// never stored anywhere.
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a private key (WIF) and its P2PKH address",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := netParams()
		if err != nil {
			return err
		}

		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return err
		}
		key := &wallet.Key{PrivKey: priv, Compressed: !keygenUncompressed}

		return printJSON(map[string]string{
			"network":         params.Name,
			"private_key_wif": wallet.EncodeWIF(key, params),
			"address":         key.Address(params),
		})
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().BoolVar(&keygenUncompressed, "uncompressed", false, "export an uncompressed-pubkey key")
}
