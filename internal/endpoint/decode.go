package endpoint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Alias1177/qmoi-infer/internal/model"
)

// Decode parses one JSON object into a request. Absent fields keep their
// defaults; an explicit null is a type error like any other non-matching value. Keys are matched exactly, so "asset_value" or "AssetValue"
// are ignored like any other unknown key.
func Decode(raw []byte) (model.Request, error) {
	req := model.NewRequest()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, fmt.Errorf("%w, got %s", ErrNotObject, typeErr.Value)
		}
		return req, err
	}
	if fields == nil {
		return req, fmt.Errorf("%w, got null", ErrNotObject)
	}

	if err := decodeField(fields, "assetValue", "number", &req.AssetValue); err != nil {
		return req, err
	}
	if err := decodeField(fields, "openTrades", "array", &req.OpenTrades); err != nil {
		return req, err
	}
	if err := decodeField(fields, "maxConcurrent", "number", &req.MaxConcurrent); err != nil {
		return req, err
	}
	return req, nil
}

func decodeField(fields map[string]json.RawMessage, key, want string, dst any) error {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	// Unmarshal treats null as a no-op, so it has to be rejected here.
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return fmt.Errorf("field %s: expected %s, got null", key, want)
	}
	if err := json.Unmarshal(value, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("field %s: expected %s, got %s", key, want, typeErr.Value)
		}
		return fmt.Errorf("field %s: %w", key, err)
	}
	return nil
}
