// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValidateJSON checks that v serializes to JSON. Non-finite floats and
// unsupported types (channels, funcs, cyclic structures) are rejected.
// The check happens before any network call so a bad fragment never
// leaves the client.
func ValidateJSON(v interface{}) error {
	if _, err := json.Marshal(v); err != nil {
		return fmt.Errorf("not JSON compliant: %w", err)
	}
	return nil
}

// ToMap round-trips a typed value through JSON into a generic map.
// Used where a document must be manipulated key-by-key, such as merging
// extension fields or stripping blocks from a metadata-only update.
func ToMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("not JSON compliant: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// PrettyJSON indents b for human consumption, falling back to the raw
// bytes when b is not valid JSON.
func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "    "); err != nil {
		return string(b)
	}
	return out.String()
}
