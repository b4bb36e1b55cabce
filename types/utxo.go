package types

// UTXO is one unspent output as reported by the explorer, in the shape the
// build request consumes.
type UTXO struct {
	Txid         string `json:"txid"`
	Vout         uint32 `json:"vout"`
	Value        uint64 `json:"value"`
	Confirmed    bool   `json:"confirmed"`
	ScriptPubKey string `json:"script_pubkey,omitempty"`
}
