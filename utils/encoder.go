// Package utils holds small helpers shared by the client and tools.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSONBody renders body as a JSON request payload. HTML escaping is
// disabled so markdown content ("<h1>", "&amp;" and friends) reaches the
// server untouched.
func EncodeJSONBody(body any) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return &buf, nil
}
