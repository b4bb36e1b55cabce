// Package address validates and decodes base58check Bitcoin addresses for a
// target network and derives their locking scripts.
package address

import (
	"crypto/sha256"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"btcforge/chaincfg"
	"btcforge/errors"
	"btcforge/script"
)

// Decoded is a successfully decoded address: its network version byte, the
// embedded 20-byte hash and the script class the version byte maps to.
type Decoded struct {
	Version byte
	Hash    [script.Hash160Size]byte
	Class   script.Class
}

// Decode validates addr against params and extracts its embedded hash.
// A bad checksum or malformed payload yields invalid_address; a valid
// address whose version byte belongs to neither template of the target
// network yields network_mismatch.
func Decode(addr string, params *chaincfg.Params) (*Decoded, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeInvalidAddress,
			"invalid address %q: %v", addr, err)
	}
	if len(payload) != script.Hash160Size {
		return nil, errors.NewErrorf(errors.ErrCodeInvalidAddress,
			"invalid address %q: payload is %d bytes, want %d", addr, len(payload), script.Hash160Size)
	}

	var class script.Class
	switch version {
	case params.PubKeyHashVersion:
		class = script.ClassPubKeyHash
	case params.ScriptHashVersion:
		class = script.ClassScriptHash
	default:
		return nil, errors.NewErrorf(errors.ErrCodeNetworkMismatch,
			"address %q version byte 0x%02x does not belong to network %s", addr, version, params.Name)
	}

	d := &Decoded{Version: version, Class: class}
	copy(d.Hash[:], payload)
	return d, nil
}

// LockingScript derives the locking script for the decoded address. Only
// pay-to-pubkey-hash is currently spendable.
func (d *Decoded) LockingScript() ([]byte, error) {
	if d.Class != script.ClassPubKeyHash {
		return nil, errors.NewErrorf(errors.ErrCodeUnsupportedScript,
			"script class %s is not supported for spending", d.Class)
	}
	return script.PayToPubKeyHash(d.Hash[:])
}

// Encode builds the base58check address string for a 20-byte hash and
// version byte. Inverse of Decode for valid inputs.
func Encode(hash []byte, version byte) string {
	return base58.CheckEncode(hash, version)
}

// FromPubKey derives the P2PKH address of a serialized public key on the
// given network.
func FromPubKey(pubKey []byte, params *chaincfg.Params) string {
	return Encode(Hash160(pubKey), params.PubKeyHashVersion)
}

// Hash160 computes RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	rip := ripemd160.New()
	_, _ = rip.Write(sha[:])
	return rip.Sum(nil)
}

// ScriptFor is the one-call path used by the builder and assembler: decode
// addr for the network and derive its locking script.
func ScriptFor(addr string, params *chaincfg.Params) ([]byte, error) {
	d, err := Decode(addr, params)
	if err != nil {
		return nil, err
	}
	return d.LockingScript()
}
