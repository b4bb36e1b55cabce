package signing

import (
	"btcforge/address"
	"btcforge/chaincfg"
	"btcforge/errors"
	"btcforge/wallet"
	"btcforge/wire"
)

// SigningInput pairs the WIF private key owning one transaction input with
// the address the caller asserts that key controls. Entries are matched to
// transaction inputs by position: the n-th entry signs the n-th input.
type SigningInput struct {
	PrivateKeyWIF string `json:"private_key_wif"`
	Address       string `json:"address"`
}

// SignTransaction parses an unsigned transaction, signs every input and
// returns the fully signed hex. The operation is atomic: if any input
// fails, no partial result is returned.
//
// The claimed address serves two purposes: it regenerates the locking
// script of the spent output (this offline core has no UTXO lookup), and it
// guards against signing with an unrelated key — the address derived from
// the supplied key must equal the claimed address.
func SignTransaction(unsignedHex string, inputs []SigningInput, params *chaincfg.Params) (string, error) {
	tx, err := wire.DeserializeHex(unsignedHex)
	if err != nil {
		return "", err
	}

	if len(inputs) != len(tx.TxIn) {
		return "", errors.NewErrorf(errors.ErrCodeInputCountMismatch,
			"transaction has %d inputs but %d signing inputs were provided", len(tx.TxIn), len(inputs))
	}

	signed := tx.Copy()
	for i, in := range inputs {
		key, err := wallet.DecodeWIF(in.PrivateKeyWIF, params)
		if err != nil {
			return "", err
		}

		if derived := key.Address(params); derived != in.Address {
			return "", errors.NewErrorf(errors.ErrCodeAddressKeyMismatch,
				"key for input %d controls %s, not the claimed address %s", i, derived, in.Address)
		}

		spentScript, err := address.ScriptFor(in.Address, params)
		if err != nil {
			return "", err
		}

		digest, err := LegacySigHash(signed, i, spentScript)
		if err != nil {
			return "", err
		}

		sigScript, err := SignInput(digest, key)
		if err != nil {
			return "", err
		}
		signed.TxIn[i].SignatureScript = sigScript
	}

	return signed.SerializeHex(), nil
}
