package types

import (
	"btcforge/signing"
	"btcforge/txbuild"
)

// CreateTxRequest is the build-boundary input: previous-output references
// and exact destination outputs. No fee or change is computed.
type CreateTxRequest struct {
	Inputs  []txbuild.Input  `json:"inputs"`
	Outputs []txbuild.Output `json:"outputs"`
}

// SignTxRequest supplies an unsigned transaction plus the owning keys,
// positionally aligned with the transaction's own input order.
type SignTxRequest struct {
	UnsignedTxHex string                 `json:"unsigned_tx_hex"`
	Inputs        []signing.SigningInput `json:"inputs"`
}

// TxResponse carries transaction hex back to the caller.
type TxResponse struct {
	TxHex string `json:"tx_hex"`
}

// BroadcastResponse carries the network-accepted txid.
type BroadcastResponse struct {
	Txid string `json:"txid"`
}
