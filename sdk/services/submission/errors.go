// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Expected failure modes are reported inside Result values; these
// sentinels exist so callers can still classify the local guards.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrAlreadySubmitted     = errors.New("dataset already submitted")
	ErrInvalidVerdict       = errors.New("invalid curation verdict")
	ErrNotFound             = errors.New("curation task not found")
)

const technicalDifficulties = "the service may be experiencing technical difficulties"

// interpret parses a service response. It returns the decoded body and an
// empty message on success (any 2xx with a parseable body). A body that
// does not decode is reported distinctly from a non-2xx status so callers
// can tell a broken response apart from a rejected request.
func interpret(status int, body []byte, action string) (map[string]interface{}, string) {
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		if status < 300 {
			return nil, fmt.Sprintf("error decoding %d response: %s", status, body)
		}
		return nil, fmt.Sprintf("error %d: %s", status, technicalDifficulties)
	}
	if status >= 300 {
		detail := interface{}(string(body))
		if e, ok := parsed["error"]; ok {
			detail = e
		}
		return parsed, fmt.Sprintf("error %d %s: %v", status, action, detail)
	}
	return parsed, ""
}
