// Package txbuild assembles caller-supplied previous-output references and
// destination outputs into an unsigned legacy transaction.
//
// The builder performs no fee or change computation and does not verify that
// input value covers output value: the caller supplies exact outputs and is
// responsible for leaving an adequate implicit fee.
package txbuild

import (
	"btcforge/address"
	"btcforge/chaincfg"
	"btcforge/errors"
	"btcforge/wire"
)

// Input references one unspent output to spend.
type Input struct {
	Txid string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// Output is one destination address and amount in satoshis.
type Output struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// BuildUnsigned validates the input and output lists against the target
// network and returns the unsigned transaction: version 1, locktime 0, one
// input per reference with an empty unlocking script and maximal sequence
// (no relative-timelock signaling), one output per destination with its
// P2PKH locking script.
func BuildUnsigned(inputs []Input, outputs []Output, params *chaincfg.Params) (*wire.MsgTx, error) {
	if len(inputs) == 0 {
		return nil, errors.NewError(errors.ErrCodeEmptyInputs, "at least one input is required")
	}
	if len(outputs) == 0 {
		return nil, errors.NewError(errors.ErrCodeEmptyOutputs, "at least one output is required")
	}

	tx := &wire.MsgTx{
		Version:  wire.TxVersion,
		LockTime: 0,
		TxIn:     make([]*wire.TxIn, 0, len(inputs)),
		TxOut:    make([]*wire.TxOut, 0, len(outputs)),
	}

	for _, in := range inputs {
		prevOut, err := wire.NewOutPoint(in.Txid, in.Vout)
		if err != nil {
			return nil, err
		}
		tx.TxIn = append(tx.TxIn, &wire.TxIn{
			PreviousOutPoint: *prevOut,
			Sequence:         wire.MaxSequence,
		})
	}

	for _, out := range outputs {
		pkScript, err := address.ScriptFor(out.Address, params)
		if err != nil {
			return nil, err
		}
		tx.TxOut = append(tx.TxOut, &wire.TxOut{
			Value:    out.Amount,
			PkScript: pkScript,
		})
	}

	return tx, nil
}
