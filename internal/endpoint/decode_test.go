package endpoint

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/qmoi-infer/internal/model"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		assetValue    float64
		openTrades    int
		maxConcurrent float64
	}{
		{name: "empty object", input: `{}`, assetValue: 0, openTrades: 0, maxConcurrent: 1},
		{name: "all fields", input: `{"assetValue": 0.7, "openTrades": [{}, {}], "maxConcurrent": 3}`, assetValue: 0.7, openTrades: 2, maxConcurrent: 3},
		{name: "snake case is ignored", input: `{"asset_value": 1.0, "open_trades": [1]}`, assetValue: 0, openTrades: 0, maxConcurrent: 1},
		{name: "keys are case sensitive", input: `{"AssetValue": 1.0, "MAXCONCURRENT": 5}`, assetValue: 0, openTrades: 0, maxConcurrent: 1},
		{name: "fractional max concurrent", input: `{"maxConcurrent": 2.5}`, assetValue: 0, openTrades: 0, maxConcurrent: 2.5},
		{name: "surrounding whitespace", input: " \n{\"assetValue\": 2}\n", assetValue: 2, openTrades: 0, maxConcurrent: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.assetValue, req.AssetValue)
			assert.Len(t, req.OpenTrades, tt.openTrades)
			assert.NotNil(t, req.OpenTrades)
			assert.Equal(t, tt.maxConcurrent, req.MaxConcurrent)
		})
	}
}

func TestDecodeKeepsTradeRecordsOpaque(t *testing.T) {
	req, err := Decode([]byte(`{"openTrades": [{"symbol": "BTC/USDT"}, 7, "x"]}`))
	require.NoError(t, err)
	assert.Equal(t, []json.RawMessage{
		json.RawMessage(`{"symbol": "BTC/USDT"}`),
		json.RawMessage(`7`),
		json.RawMessage(`"x"`),
	}, req.OpenTrades)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		notObject bool
		contains  string
	}{
		{name: "array", input: `[]`, notObject: true, contains: "got array"},
		{name: "number", input: `42`, notObject: true, contains: "got number"},
		{name: "null", input: `null`, notObject: true, contains: "got null"},
		{name: "syntax", input: `{"assetValue": }`, contains: "invalid character"},
		{name: "string asset value", input: `{"assetValue": "high"}`, contains: "field assetValue: expected number, got string"},
		{name: "object open trades", input: `{"openTrades": {}}`, contains: "field openTrades: expected array, got object"},
		{name: "null asset value", input: `{"assetValue": null}`, contains: "field assetValue: expected number, got null"},
		{name: "null open trades", input: `{"openTrades": null}`, contains: "field openTrades: expected array, got null"},
		{name: "null max concurrent", input: `{"maxConcurrent": null}`, contains: "field maxConcurrent: expected number, got null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.notObject, errors.Is(err, ErrNotObject))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNewRequestDefaults(t *testing.T) {
	req := model.NewRequest()
	assert.Zero(t, req.AssetValue)
	assert.Empty(t, req.OpenTrades)
	assert.Equal(t, 1.0, req.MaxConcurrent)
}
