package script

import (
	"btcforge/errors"
)

// Script opcodes used by the locking and unlocking scripts this package
// builds and recognizes.
const (
	OpDup         = 0x76
	OpHash160     = 0xa9
	OpEqual       = 0x87
	OpEqualVerify = 0x88
	OpCheckSig    = 0xac
	OpData20      = 0x14
	OpPushData1   = 0x4c
	OpPushData2   = 0x4d
	Op0           = 0x00
)

// Hash160Size is the byte length of a RIPEMD160(SHA256(...)) hash.
const Hash160Size = 20

// Class is the tagged set of locking-script templates. Only PubKeyHash is
// spendable by this wallet; the remaining classes are recognized so future
// script types can extend the codec without changing its contract.
type Class string

const (
	ClassNonStandard       Class = "nonstandard"
	ClassPubKeyHash        Class = "pubkeyhash"
	ClassScriptHash        Class = "scripthash"
	ClassWitnessPubKeyHash Class = "witness_pubkeyhash"
)

// PayToPubKeyHash builds the canonical P2PKH locking script:
// OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubKeyHash(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != Hash160Size {
		return nil, errors.NewErrorf(errors.ErrCodeInvalidAddress,
			"pubkey hash must be %d bytes, got %d", Hash160Size, len(pubKeyHash))
	}
	s := make([]byte, 0, 25)
	s = append(s, OpDup, OpHash160, OpData20)
	s = append(s, pubKeyHash...)
	s = append(s, OpEqualVerify, OpCheckSig)
	return s, nil
}

// ClassifyLocking reports the template class of a locking script.
func ClassifyLocking(s []byte) Class {
	switch {
	case len(s) == 25 && s[0] == OpDup && s[1] == OpHash160 && s[2] == OpData20 &&
		s[23] == OpEqualVerify && s[24] == OpCheckSig:
		return ClassPubKeyHash
	case len(s) == 23 && s[0] == OpHash160 && s[1] == OpData20 && s[22] == OpEqual:
		return ClassScriptHash
	case len(s) == 22 && s[0] == Op0 && s[1] == OpData20:
		return ClassWitnessPubKeyHash
	default:
		return ClassNonStandard
	}
}

// AppendPushData appends a minimal push of data to dst: a direct push below
// OP_PUSHDATA1, OP_PUSHDATA1 below 256 bytes, OP_PUSHDATA2 otherwise.
func AppendPushData(dst, data []byte) []byte {
	n := len(data)
	switch {
	case n < OpPushData1:
		dst = append(dst, byte(n))
	case n < 0x100:
		dst = append(dst, OpPushData1, byte(n))
	default:
		dst = append(dst, OpPushData2, byte(n&0xff), byte(n>>8))
	}
	return append(dst, data...)
}

// SigScript builds the P2PKH unlocking script:
// push(signature || sighash byte) push(pubkey).
func SigScript(sigWithHashType, pubKey []byte) []byte {
	s := make([]byte, 0, 2+len(sigWithHashType)+len(pubKey))
	s = AppendPushData(s, sigWithHashType)
	s = AppendPushData(s, pubKey)
	return s
}
