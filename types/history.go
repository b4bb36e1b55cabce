package types

// HistoryKind tags what produced a history entry.
type HistoryKind string

const (
	HistoryBuilt     HistoryKind = "built"
	HistorySigned    HistoryKind = "signed"
	HistoryBroadcast HistoryKind = "broadcast"
)

// HistoryEntry records one build, sign or broadcast performed by this
// wallet. Only transaction bytes and metadata are recorded; private key
// material is never part of an entry.
type HistoryEntry struct {
	Txid      string      `json:"txid"`
	Kind      HistoryKind `json:"kind"`
	TxHex     string      `json:"tx_hex"`
	Network   string      `json:"network"`
	Timestamp uint64      `json:"timestamp"`
}
