package interfaces

import "context"

// Broadcaster submits signed transaction hex to the network and returns the
// accepted txid, or the rejection reason as an error.
type Broadcaster interface {
	Broadcast(ctx context.Context, txHex string) (string, error)
}
