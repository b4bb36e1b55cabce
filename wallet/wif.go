// Package wallet decodes wallet-import-format private keys and ties them to
// the addresses they control. Keys exist only transiently during signing;
// nothing in this package persists or logs key material.
package wallet

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"btcforge/address"
	"btcforge/chaincfg"
	"btcforge/errors"
)

const (
	privKeyLen        = 32
	compressionMarker = 0x01
)

// Key is a decoded private key together with the public-key form it was
// exported with. Compressed controls which serialization of the public key
// participates in address derivation and unlocking scripts.
type Key struct {
	PrivKey    *secp256k1.PrivateKey
	Compressed bool
}

// DecodeWIF parses a wallet-import-format string and validates it against
// the target network: version byte + 32-byte scalar + optional compression
// marker + 4-byte double-SHA256 checksum.
func DecodeWIF(wif string, params *chaincfg.Params) (*Key, error) {
	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeInvalidPrivateKey,
			"invalid private key encoding: %v", err)
	}

	var compressed bool
	switch len(payload) {
	case privKeyLen:
		compressed = false
	case privKeyLen + 1:
		if payload[privKeyLen] != compressionMarker {
			return nil, errors.NewErrorf(errors.ErrCodeInvalidPrivateKey,
				"invalid compression marker 0x%02x", payload[privKeyLen])
		}
		compressed = true
	default:
		return nil, errors.NewErrorf(errors.ErrCodeInvalidPrivateKey,
			"invalid private key payload length %d", len(payload))
	}

	if version != params.WIFVersion {
		return nil, errors.NewErrorf(errors.ErrCodeNetworkMismatch,
			"private key version byte 0x%02x does not belong to network %s", version, params.Name)
	}

	return &Key{
		PrivKey:    secp256k1.PrivKeyFromBytes(payload[:privKeyLen]),
		Compressed: compressed,
	}, nil
}

// EncodeWIF is the inverse of DecodeWIF, used by key tooling and tests.
func EncodeWIF(key *Key, params *chaincfg.Params) string {
	payload := key.PrivKey.Serialize()
	if key.Compressed {
		payload = append(payload, compressionMarker)
	}
	return base58.CheckEncode(payload, params.WIFVersion)
}

// PubKeyBytes serializes the public key in the form the WIF declared.
func (k *Key) PubKeyBytes() []byte {
	if k.Compressed {
		return k.PrivKey.PubKey().SerializeCompressed()
	}
	return k.PrivKey.PubKey().SerializeUncompressed()
}

// Address derives the P2PKH address this key controls on the given network.
func (k *Key) Address(params *chaincfg.Params) string {
	return address.FromPubKey(k.PubKeyBytes(), params)
}
