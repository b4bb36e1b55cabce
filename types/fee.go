package types

// FeeEstimate carries tiered satoshi-per-vbyte fee rates. The core never
// consults these; callers use them to choose output amounts before building.
type FeeEstimate struct {
	Fast   float64 `json:"fast"`
	Medium float64 `json:"medium"`
	Slow   float64 `json:"slow"`
}
