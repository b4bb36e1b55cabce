package interfaces

import (
	"context"

	"btcforge/types"
)

// UTXOSource lists the unspent outputs of an address. Implementations live
// outside the core; the builder never calls this itself.
type UTXOSource interface {
	ListUTXOs(ctx context.Context, address string) ([]types.UTXO, error)
}
