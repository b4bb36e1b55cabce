package interfaces

import "btcforge/types"

// HistoryStore persists the transactions this wallet has built, signed or
// broadcast. The core stays stateless; only the service layer writes here.
type HistoryStore interface {
	Record(entry *types.HistoryEntry) error
	List(limit int) ([]*types.HistoryEntry, error)
	MustClose()
}
