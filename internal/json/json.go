// Package json contains utilities for handling JSON.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeJSON decodes a JSON object.
func DecodeJSON(dst any, decoder *json.Decoder) error {
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	// Ensure no extra tokens after decoding
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected token after JSON object: %w", err)
	}
	return nil
}

// DecodeStringList decodes s as a JSON array of strings.
func DecodeStringList(s string) ([]string, error) {
	var list []string
	if err := DecodeJSON(&list, json.NewDecoder(strings.NewReader(s))); err != nil {
		return nil, err
	}
	if list == nil {
		return nil, errors.New("expected a JSON array, got null")
	}
	return list, nil
}
