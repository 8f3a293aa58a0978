package risk

import "math"

// Bounds of a single recommended trade amount
const (
	MinTradeAmount = 0.01
	MaxTradeAmount = 0.1
)

// TradeAmount splits the asset value across the allowed number of concurrent
// trades and clamps the share into [MinTradeAmount, MaxTradeAmount].
// A maxConcurrent below 1 is treated as 1.
func TradeAmount(assetValue float64, maxConcurrent float64) float64 {
	divisor := math.Max(1, maxConcurrent)
	return ClampAmount(assetValue / divisor)
}

// ClampAmount bounds an amount into [MinTradeAmount, MaxTradeAmount]
func ClampAmount(amount float64) float64 {
	return math.Max(MinTradeAmount, math.Min(MaxTradeAmount, amount))
}
