package interfaces

import (
	"context"

	"btcforge/types"
)

// FeeEstimator returns tiered satoshi-per-vbyte fee rates.
type FeeEstimator interface {
	EstimateFee(ctx context.Context) (*types.FeeEstimate, error)
}
