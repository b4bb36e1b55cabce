package signing

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"btcforge/errors"
	"btcforge/script"
	"btcforge/wallet"
)

// SignInput signs a 32-byte digest with the key and returns the unlocking
// script: push(DER signature || sighash byte), push(public key).
//
// Nonces are derived deterministically (RFC6979), so identical inputs yield
// identical signatures, and the signature is normalized to low-S canonical
// form with strict minimal-length DER encoding.
func SignInput(digest [32]byte, key *wallet.Key) ([]byte, error) {
	sig := ecdsa.Sign(key.PrivKey, digest[:])

	der := sig.Serialize()
	if !sig.Verify(digest[:], key.PrivKey.PubKey()) {
		return nil, errors.NewError(errors.ErrCodeSigningFailed,
			"produced signature failed self-verification")
	}

	sigWithHashType := append(der, SigHashAll)
	return script.SigScript(sigWithHashType, key.PubKeyBytes()), nil
}
