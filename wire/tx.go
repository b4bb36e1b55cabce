// Package wire implements the canonical binary serialization of legacy
// (pre-segwit) Bitcoin transactions, byte-exact with network consensus.
package wire

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"btcforge/errors"
)

const (
	// TxVersion is the version written into newly built transactions.
	TxVersion int32 = 1

	// MaxSequence disables relative-timelock signaling on an input.
	MaxSequence uint32 = 0xffffffff

	// TxidSize is the byte length of a transaction id.
	TxidSize = 32

	// maxTxSize bounds a decoded transaction. Consensus caps a
	// transaction at 1MB, so any length claim beyond that is malformed
	// rather than merely large.
	maxTxSize = 1_000_000

	// Minimum serialized sizes, used to reject absurd count claims
	// before allocating.
	minInputSize  = TxidSize + 4 + 1 + 4
	minOutputSize = 8 + 1

	// Hard caps implied by maxTxSize. Checked before any arithmetic on a
	// decoded count so a huge claim cannot overflow the sanity check.
	maxInputCount  = maxTxSize / minInputSize
	maxOutputCount = maxTxSize / minOutputSize
)

// OutPoint references one output of a previous transaction. Hash holds the
// txid in display order (the byte order of txid hex strings); it is reversed
// on the wire.
type OutPoint struct {
	Hash  [TxidSize]byte
	Index uint32
}

// NewOutPoint parses a 64-character txid hex string into an outpoint.
func NewOutPoint(txidHex string, index uint32) (*OutPoint, error) {
	if len(txidHex) != TxidSize*2 {
		return nil, errors.NewErrorf(errors.ErrCodeInvalidTxid,
			"txid must be %d hex characters, got %d", TxidSize*2, len(txidHex))
	}
	raw, err := hex.DecodeString(txidHex)
	if err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeInvalidTxid, "txid is not valid hex: %v", err)
	}
	op := &OutPoint{Index: index}
	copy(op.Hash[:], raw)
	return op, nil
}

// Txid returns the display-order hex form of the referenced txid.
func (o *OutPoint) Txid() string {
	return hex.EncodeToString(o.Hash[:])
}

// TxIn is one transaction input. SignatureScript is empty until signing and
// is populated exactly once.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut is one transaction output.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// MsgTx is a legacy Bitcoin transaction.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// Serialize encodes the transaction in exact wire order.
func (tx *MsgTx) Serialize() []byte {
	b := make([]byte, 0, tx.serializeSize())
	b = binary.LittleEndian.AppendUint32(b, uint32(tx.Version))
	b = appendVarInt(b, uint64(len(tx.TxIn)))
	for _, in := range tx.TxIn {
		// txid bytes are reversed on the wire
		for i := TxidSize - 1; i >= 0; i-- {
			b = append(b, in.PreviousOutPoint.Hash[i])
		}
		b = binary.LittleEndian.AppendUint32(b, in.PreviousOutPoint.Index)
		b = appendVarInt(b, uint64(len(in.SignatureScript)))
		b = append(b, in.SignatureScript...)
		b = binary.LittleEndian.AppendUint32(b, in.Sequence)
	}
	b = appendVarInt(b, uint64(len(tx.TxOut)))
	for _, out := range tx.TxOut {
		b = binary.LittleEndian.AppendUint64(b, out.Value)
		b = appendVarInt(b, uint64(len(out.PkScript)))
		b = append(b, out.PkScript...)
	}
	b = binary.LittleEndian.AppendUint32(b, tx.LockTime)
	return b
}

// SerializeHex returns the lowercase hex encoding of the wire bytes.
func (tx *MsgTx) SerializeHex() string {
	return hex.EncodeToString(tx.Serialize())
}

func (tx *MsgTx) serializeSize() int {
	n := 4 + 4 + 9 + 9
	for _, in := range tx.TxIn {
		n += minInputSize + 8 + len(in.SignatureScript)
	}
	for _, out := range tx.TxOut {
		n += minOutputSize + 8 + len(out.PkScript)
	}
	return n
}

// TxID computes the transaction id: double SHA256 of the wire bytes,
// rendered in reversed (display) byte order.
func (tx *MsgTx) TxID() string {
	first := sha256.Sum256(tx.Serialize())
	second := sha256.Sum256(first[:])
	for i, j := 0, len(second)-1; i < j; i, j = i+1, j-1 {
		second[i], second[j] = second[j], second[i]
	}
	return hex.EncodeToString(second[:])
}

// Copy returns a deep copy of the transaction.
func (tx *MsgTx) Copy() *MsgTx {
	cp := &MsgTx{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		TxIn:     make([]*TxIn, len(tx.TxIn)),
		TxOut:    make([]*TxOut, len(tx.TxOut)),
	}
	for i, in := range tx.TxIn {
		inCopy := &TxIn{
			PreviousOutPoint: in.PreviousOutPoint,
			Sequence:         in.Sequence,
		}
		if in.SignatureScript != nil {
			inCopy.SignatureScript = append([]byte(nil), in.SignatureScript...)
		}
		cp.TxIn[i] = inCopy
	}
	for i, out := range tx.TxOut {
		outCopy := &TxOut{Value: out.Value}
		if out.PkScript != nil {
			outCopy.PkScript = append([]byte(nil), out.PkScript...)
		}
		cp.TxOut[i] = outCopy
	}
	return cp
}

// Deserialize is the exact inverse of Serialize. Truncation, internally
// inconsistent lengths and trailing bytes all yield malformed_tx.
func Deserialize(raw []byte) (*MsgTx, error) {
	if len(raw) > maxTxSize {
		return nil, malformed("transaction exceeds %d bytes", maxTxSize)
	}
	r := bytes.NewReader(raw)

	var verBuf [4]byte
	if _, err := io.ReadFull(r, verBuf[:]); err != nil {
		return nil, malformed("truncated version")
	}
	tx := &MsgTx{Version: int32(binary.LittleEndian.Uint32(verBuf[:]))}

	inCount, err := readVarInt(r)
	if err != nil {
		return nil, malformed("truncated input count")
	}
	if inCount > maxInputCount {
		return nil, malformed("input count %d exceeds maximum %d", inCount, maxInputCount)
	}
	if inCount*minInputSize > uint64(r.Len()) {
		return nil, malformed("input count %d inconsistent with remaining %d bytes", inCount, r.Len())
	}
	tx.TxIn = make([]*TxIn, 0, inCount)
	for i := uint64(0); i < inCount; i++ {
		in := &TxIn{}
		var hashBuf [TxidSize]byte
		if _, err := io.ReadFull(r, hashBuf[:]); err != nil {
			return nil, malformed("truncated previous txid in input %d", i)
		}
		// undo the wire byte reversal
		for j := 0; j < TxidSize; j++ {
			in.PreviousOutPoint.Hash[j] = hashBuf[TxidSize-1-j]
		}
		var u32 [4]byte
		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, malformed("truncated vout in input %d", i)
		}
		in.PreviousOutPoint.Index = binary.LittleEndian.Uint32(u32[:])
		if in.SignatureScript, err = readScript(r); err != nil {
			return nil, malformed("bad unlocking script in input %d: %v", i, err)
		}
		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, malformed("truncated sequence in input %d", i)
		}
		in.Sequence = binary.LittleEndian.Uint32(u32[:])
		tx.TxIn = append(tx.TxIn, in)
	}

	outCount, err := readVarInt(r)
	if err != nil {
		return nil, malformed("truncated output count")
	}
	if outCount > maxOutputCount {
		return nil, malformed("output count %d exceeds maximum %d", outCount, maxOutputCount)
	}
	if outCount*minOutputSize > uint64(r.Len()) {
		return nil, malformed("output count %d inconsistent with remaining %d bytes", outCount, r.Len())
	}
	tx.TxOut = make([]*TxOut, 0, outCount)
	for i := uint64(0); i < outCount; i++ {
		out := &TxOut{}
		var u64 [8]byte
		if _, err := io.ReadFull(r, u64[:]); err != nil {
			return nil, malformed("truncated value in output %d", i)
		}
		out.Value = binary.LittleEndian.Uint64(u64[:])
		if out.PkScript, err = readScript(r); err != nil {
			return nil, malformed("bad locking script in output %d: %v", i, err)
		}
		tx.TxOut = append(tx.TxOut, out)
	}

	var ltBuf [4]byte
	if _, err := io.ReadFull(r, ltBuf[:]); err != nil {
		return nil, malformed("truncated locktime")
	}
	tx.LockTime = binary.LittleEndian.Uint32(ltBuf[:])

	if r.Len() != 0 {
		return nil, malformed("%d trailing bytes after locktime", r.Len())
	}
	return tx, nil
}

// DeserializeHex decodes a lowercase or uppercase hex transaction string.
func DeserializeHex(txHex string) (*MsgTx, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, malformed("transaction is not valid hex: %v", err)
	}
	return Deserialize(raw)
}

func readScript(r *bytes.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("truncated script length")
	}
	if n > uint64(r.Len()) {
		return nil, fmt.Errorf("script length %d exceeds remaining %d bytes", n, r.Len())
	}
	if n == 0 {
		return nil, nil
	}
	s := make([]byte, n)
	if _, err := io.ReadFull(r, s); err != nil {
		return nil, fmt.Errorf("truncated script")
	}
	return s, nil
}

func malformed(format string, args ...interface{}) error {
	return errors.NewErrorf(errors.ErrCodeMalformedTx, format, args...)
}
