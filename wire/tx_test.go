package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"btcforge/errors"
)

const (
	// One input spending vout 0 of the all-zero txid, one 10000-satoshi
	// output locked to the genesis address.
	unsignedTxHex = "010000000100000000000000000000000000000000000000000000000000000000000000000000000000ffffffff0110270000000000001976a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac00000000"
	unsignedTxid  = "7745ae490e50aaf558faa42b8c0c384cf538e58f1fc1ccd28f7e824819150c7a"

	genesisPkScriptHex = "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func referenceTx(t *testing.T) *MsgTx {
	t.Helper()
	prevOut, err := NewOutPoint("0000000000000000000000000000000000000000000000000000000000000000", 0)
	require.NoError(t, err)
	return &MsgTx{
		Version: TxVersion,
		TxIn: []*TxIn{{
			PreviousOutPoint: *prevOut,
			Sequence:         MaxSequence,
		}},
		TxOut: []*TxOut{{
			Value:    10000,
			PkScript: mustDecodeHex(t, genesisPkScriptHex),
		}},
	}
}

func TestSerializeReferenceTx(t *testing.T) {
	tx := referenceTx(t)
	require.Equal(t, unsignedTxHex, tx.SerializeHex())
}

func TestTxID(t *testing.T) {
	require.Equal(t, unsignedTxid, referenceTx(t).TxID())
}

func TestDeserializeInverseOfSerialize(t *testing.T) {
	tx, err := DeserializeHex(unsignedTxHex)
	require.NoError(t, err)

	require.Equal(t, TxVersion, tx.Version)
	require.Len(t, tx.TxIn, 1)
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000000", tx.TxIn[0].PreviousOutPoint.Txid())
	require.Equal(t, uint32(0), tx.TxIn[0].PreviousOutPoint.Index)
	require.Empty(t, tx.TxIn[0].SignatureScript)
	require.Equal(t, MaxSequence, tx.TxIn[0].Sequence)
	require.Len(t, tx.TxOut, 1)
	require.Equal(t, uint64(10000), tx.TxOut[0].Value)
	require.Equal(t, genesisPkScriptHex, hex.EncodeToString(tx.TxOut[0].PkScript))
	require.Equal(t, uint32(0), tx.LockTime)

	require.Equal(t, unsignedTxHex, tx.SerializeHex())
}

func TestTxidByteOrderRoundTrip(t *testing.T) {
	// txid hex is display order; wire order is reversed. Parsing then
	// serializing must not flip it twice.
	txidHex := "aa00000000000000000000000000000000000000000000000000000000000bb0"
	prevOut, err := NewOutPoint(txidHex, 7)
	require.NoError(t, err)

	tx := &MsgTx{
		Version: TxVersion,
		TxIn:    []*TxIn{{PreviousOutPoint: *prevOut, Sequence: MaxSequence}},
		TxOut:   []*TxOut{{Value: 1, PkScript: mustDecodeHex(t, genesisPkScriptHex)}},
	}

	decoded, err := Deserialize(tx.Serialize())
	require.NoError(t, err)
	require.Equal(t, txidHex, decoded.TxIn[0].PreviousOutPoint.Txid())
}

func TestNewOutPointRejectsBadTxid(t *testing.T) {
	_, err := NewOutPoint("abcd", 0)
	require.True(t, errors.IsCode(err, errors.ErrCodeInvalidTxid))

	_, err = NewOutPoint("zz00000000000000000000000000000000000000000000000000000000000000", 0)
	require.True(t, errors.IsCode(err, errors.ErrCodeInvalidTxid))
}

func TestVarIntBoundaries(t *testing.T) {
	cases := []struct {
		value   uint64
		encoded string
	}{
		{0x00, "00"},
		{0xfc, "fc"},
		{0xfd, "fdfd00"},
		{0xffff, "fdffff"},
		{0x10000, "fe00000100"},
		{0xffffffff, "feffffffff"},
		{0x100000000, "ff0000000001000000"},
	}
	for _, tc := range cases {
		encoded := appendVarInt(nil, tc.value)
		require.Equal(t, tc.encoded, hex.EncodeToString(encoded), "value %#x", tc.value)

		decoded, err := readVarInt(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, tc.value, decoded)
	}
}

func TestDeserializeMalformed(t *testing.T) {
	raw := mustDecodeHex(t, unsignedTxHex)

	t.Run("not hex", func(t *testing.T) {
		_, err := DeserializeHex("zzzz")
		require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
	})

	t.Run("truncated", func(t *testing.T) {
		for _, cut := range []int{1, 4, 10, len(raw) / 2, len(raw) - 1} {
			_, err := Deserialize(raw[:cut])
			require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx), "cut at %d", cut)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := Deserialize(append(append([]byte(nil), raw...), 0x00))
		require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
	})

	t.Run("script length beyond buffer", func(t *testing.T) {
		mangled := append([]byte(nil), raw...)
		// input script length byte sits after version+count+txid+vout
		mangled[4+1+32+4] = 0xf0
		_, err := Deserialize(mangled)
		require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
	})

	t.Run("absurd input count", func(t *testing.T) {
		mangled := append([]byte(nil), raw...)
		mangled[4] = 0xfc
		_, err := Deserialize(mangled)
		require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
	})

	t.Run("oversized varint counts", func(t *testing.T) {
		// Counts whose varint encoding takes the 0xfd/0xfe/0xff prefixed
		// paths, including values chosen so that count*minInputSize wraps
		// around uint64. All must fail cleanly, never panic.
		counts := []uint64{
			0xfffe,
			0xffff,
			0xffffffff,
			449920587163647601, // *41 wraps to 25
			0xffffffffffffffff,
		}
		for _, count := range counts {
			payload := binary.LittleEndian.AppendUint32(nil, uint32(TxVersion))
			payload = appendVarInt(payload, count)
			payload = append(payload, make([]byte, 32)...)
			_, err := Deserialize(payload)
			require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx), "input count %d", count)
		}
	})

	t.Run("oversized output count", func(t *testing.T) {
		payload := binary.LittleEndian.AppendUint32(nil, uint32(TxVersion))
		payload = appendVarInt(payload, 0) // no inputs
		payload = appendVarInt(payload, 2049638230412172402) // *9 wraps to 2
		payload = append(payload, make([]byte, 32)...)
		_, err := Deserialize(payload)
		require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Deserialize(nil)
		require.True(t, errors.IsCode(err, errors.ErrCodeMalformedTx))
	})
}

func TestCopyIsDeep(t *testing.T) {
	tx := referenceTx(t)
	cp := tx.Copy()

	cp.TxIn[0].Sequence = 5
	cp.TxOut[0].PkScript[0] = 0xff

	require.Equal(t, MaxSequence, tx.TxIn[0].Sequence)
	require.Equal(t, byte(0x76), tx.TxOut[0].PkScript[0])
}

func TestRoundTripFuzzed(t *testing.T) {
	fuzzer := fuzz.New().NilChance(0).NumElements(1, 64)

	for i := 0; i < 200; i++ {
		tx := &MsgTx{}
		fuzzer.Fuzz(&tx.Version)
		fuzzer.Fuzz(&tx.LockTime)

		var inCount, outCount uint8
		fuzzer.Fuzz(&inCount)
		fuzzer.Fuzz(&outCount)

		for j := 0; j < int(inCount%5)+1; j++ {
			in := &TxIn{}
			fuzzer.Fuzz(&in.PreviousOutPoint.Hash)
			fuzzer.Fuzz(&in.PreviousOutPoint.Index)
			fuzzer.Fuzz(&in.Sequence)
			fuzzer.Fuzz(&in.SignatureScript)
			if len(in.SignatureScript) == 0 {
				in.SignatureScript = nil
			}
			tx.TxIn = append(tx.TxIn, in)
		}
		for j := 0; j < int(outCount%5)+1; j++ {
			out := &TxOut{}
			fuzzer.Fuzz(&out.Value)
			fuzzer.Fuzz(&out.PkScript)
			if len(out.PkScript) == 0 {
				out.PkScript = nil
			}
			tx.TxOut = append(tx.TxOut, out)
		}

		decoded, err := Deserialize(tx.Serialize())
		require.NoError(t, err, "iteration %d", i)
		require.Equal(t, tx, decoded, "iteration %d", i)
	}
}
