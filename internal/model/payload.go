// Package model holds the typed records built from the fantasy game's raw
// feed payloads. Each record kind follows the same two-phase construction:
// a wire struct binds the raw JSON object (missing keys default to zero
// values, undeclared keys are ignored), then a pure transform produces the
// public record with all derived fields resolved. Public records carry no
// hidden storage and are never mutated after construction.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload marks payloads whose top-level shape is wrong: the feed
// body must be a JSON array of objects. Missing fields inside an object are
// never an error.
var ErrMalformedPayload = errors.New("malformed feed payload")

// decodeList splits a feed payload into its per-entity raw objects.
func decodeList(data json.RawMessage, kind string) ([]json.RawMessage, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %s feed is not a JSON array", ErrMalformedPayload, kind)
	}
	return raws, nil
}

func decodeObject(raw json.RawMessage, kind string, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s entry is not a JSON object: %v", ErrMalformedPayload, kind, err)
	}
	return nil
}
