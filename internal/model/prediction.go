package model

import "encoding/json"

// Side is the direction of a recommended trade
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Request is the inference payload read from the caller.
// Field names are camelCase; snake_case variants are not recognised.
type Request struct {
	AssetValue    float64           `json:"assetValue"`
	OpenTrades    []json.RawMessage `json:"openTrades"` // Only the count is used
	MaxConcurrent float64           `json:"maxConcurrent"`
}

// NewRequest returns a request populated with the defaults used for absent fields
func NewRequest() Request {
	return Request{
		AssetValue:    0,
		OpenTrades:    []json.RawMessage{},
		MaxConcurrent: 1,
	}
}

// Recommendation is the successful inference result
type Recommendation struct {
	Symbol string  `json:"symbol"`
	Side   Side    `json:"side"`
	Amount float64 `json:"amount"`
}

// ErrorResponse is written to the error channel when inference fails
type ErrorResponse struct {
	Error string `json:"error"`
}
