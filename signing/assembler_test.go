package signing

import (
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"btcforge/chaincfg"
	"btcforge/errors"
	"btcforge/wire"
)

const (
	// Spends vout 1 of the repeated-aa txid, paying 50000 satoshis to the
	// genesis address.
	e2eUnsignedHex = "0100000001aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa0100000000ffffffff0150c30000000000001976a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac00000000"

	// Digest for input 0 of e2eUnsignedHex against the keyOne locking
	// script with SIGHASH_ALL.
	e2eSigHashHex = "129eb7c11520acd5f380e9e6c35b5d4c602bcc17597946e1efaa5e53c006e9ea"

	keyOneWIF       = "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"
	keyOneAddr      = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	keyOnePubKeyHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func TestSignTransactionEndToEnd(t *testing.T) {
	signedHex, err := SignTransaction(e2eUnsignedHex, []SigningInput{
		{PrivateKeyWIF: keyOneWIF, Address: keyOneAddr},
	}, &chaincfg.MainNetParams)
	require.NoError(t, err)

	signed, err := wire.DeserializeHex(signedHex)
	require.NoError(t, err)
	require.Len(t, signed.TxIn, 1)

	// Everything except the unlocking script must survive untouched.
	unsigned, err := wire.DeserializeHex(e2eUnsignedHex)
	require.NoError(t, err)
	require.Equal(t, unsigned.Version, signed.Version)
	require.Equal(t, unsigned.LockTime, signed.LockTime)
	require.Equal(t, unsigned.TxIn[0].PreviousOutPoint, signed.TxIn[0].PreviousOutPoint)
	require.Equal(t, unsigned.TxIn[0].Sequence, signed.TxIn[0].Sequence)
	require.Equal(t, unsigned.TxOut, signed.TxOut)

	sigWithHashType, pubKey := splitSigScript(t, signed.TxIn[0].SignatureScript)
	require.Equal(t, keyOnePubKeyHex, hex.EncodeToString(pubKey))
	require.Equal(t, byte(SigHashAll), sigWithHashType[len(sigWithHashType)-1])

	// The embedded signature must verify against the consensus digest.
	sig, err := ecdsa.ParseDERSignature(sigWithHashType[:len(sigWithHashType)-1])
	require.NoError(t, err)
	pub, err := secp256k1.ParsePubKey(pubKey)
	require.NoError(t, err)
	digest, err := hex.DecodeString(e2eSigHashHex)
	require.NoError(t, err)
	require.True(t, sig.Verify(digest, pub))
}

func TestSignTransactionDeterministic(t *testing.T) {
	inputs := []SigningInput{{PrivateKeyWIF: keyOneWIF, Address: keyOneAddr}}

	first, err := SignTransaction(e2eUnsignedHex, inputs, &chaincfg.MainNetParams)
	require.NoError(t, err)
	second, err := SignTransaction(e2eUnsignedHex, inputs, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSignTransactionResignIdempotent(t *testing.T) {
	inputs := []SigningInput{{PrivateKeyWIF: keyOneWIF, Address: keyOneAddr}}

	signed, err := SignTransaction(e2eUnsignedHex, inputs, &chaincfg.MainNetParams)
	require.NoError(t, err)

	// Signing a signed transaction recomputes the same digest because the
	// sighash algorithm discards existing unlocking scripts.
	resigned, err := SignTransaction(signed, inputs, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, signed, resigned)
}

func TestSignTransactionInputCountMismatch(t *testing.T) {
	_, err := SignTransaction(e2eUnsignedHex, nil, &chaincfg.MainNetParams)
	require.True(t, errors.IsCode(err, errors.ErrCodeInputCountMismatch))

	_, err = SignTransaction(e2eUnsignedHex, []SigningInput{
		{PrivateKeyWIF: keyOneWIF, Address: keyOneAddr},
		{PrivateKeyWIF: keyOneWIF, Address: keyOneAddr},
	}, &chaincfg.MainNetParams)
	require.True(t, errors.IsCode(err, errors.ErrCodeInputCountMismatch))
}

func TestSignTransactionAddressKeyMismatch(t *testing.T) {
	// The uncompressed export of the same scalar controls a different
	// address, so claiming the compressed address must fail.
	_, err := SignTransaction(e2eUnsignedHex, []SigningInput{
		{PrivateKeyWIF: "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf", Address: keyOneAddr},
	}, &chaincfg.MainNetParams)
	require.True(t, errors.IsCode(err, errors.ErrCodeAddressKeyMismatch))
}

func TestSignTransactionWrongNetworkKey(t *testing.T) {
	_, err := SignTransaction(e2eUnsignedHex, []SigningInput{
		{PrivateKeyWIF: "cMahea7zqjxrtgAbB7LSGbcQUr1uX1ojuat9jZodMN87JcbXMTcA", Address: keyOneAddr},
	}, &chaincfg.MainNetParams)
	require.True(t, errors.IsCode(err, errors.ErrCodeNetworkMismatch))
}

func TestSignTransactionMalformedHex(t *testing.T) {
	_, err := SignTransaction("zzzz", []SigningInput{
		{PrivateKeyWIF: keyOneWIF, Address: keyOneAddr},
	}, &chaincfg.MainNetParams)
	require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
}
