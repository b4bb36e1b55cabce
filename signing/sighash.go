// Package signing computes legacy signature digests, produces canonical
// ECDSA signatures and assembles fully signed transactions.
package signing

import (
	"crypto/sha256"
	"encoding/binary"

	"btcforge/errors"
	"btcforge/wire"
)

// SigHashAll is the only supported sighash mode: the signature commits to
// every input and output.
const SigHashAll = 0x01

// LegacySigHash computes the digest the signature for input idx is made
// over, per the pre-segwit consensus algorithm: every input's unlocking
// script is emptied except input idx, whose script field temporarily holds
// the locking script of the output being spent; the transformed transaction
// is serialized, a 4-byte little-endian sighash type is appended, and the
// result is double-SHA256 hashed.
//
// The digest must be bit-exact with consensus rules; any divergence produces
// an on-chain-invalid signature. tx itself is never modified.
func LegacySigHash(tx *wire.MsgTx, idx int, spentScript []byte) ([32]byte, error) {
	var digest [32]byte
	if idx < 0 || idx >= len(tx.TxIn) {
		return digest, errors.NewErrorf(errors.ErrCodeMalformedTx,
			"input index %d out of range for %d inputs", idx, len(tx.TxIn))
	}

	txCopy := tx.Copy()
	for i, in := range txCopy.TxIn {
		if i == idx {
			in.SignatureScript = append([]byte(nil), spentScript...)
		} else {
			in.SignatureScript = nil
		}
	}

	preimage := txCopy.Serialize()
	preimage = binary.LittleEndian.AppendUint32(preimage, SigHashAll)

	first := sha256.Sum256(preimage)
	return sha256.Sum256(first[:]), nil
}
