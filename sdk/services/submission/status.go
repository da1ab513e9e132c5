// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

// CheckStatus looks up the status of one submission. An empty sourceID
// falls back to the source ID stored by the last successful submission.
func (s *SubmissionService) CheckStatus(ctx context.Context, sourceID string) StatusResult {
	if sourceID == "" {
		sourceID = s.sourceID
	}
	if sourceID == "" {
		return StatusResult{Error: "no dataset submitted"}
	}

	url := s.http.BuildURL(config.StatusRoute, sourceID)
	body, status, err := s.http.Do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return StatusResult{Error: fmt.Sprintf("status check failed: %v", err)}
	}

	parsed, errMsg := interpret(status, body, "fetching status")
	return StatusResult{
		Success:    errMsg == "",
		StatusCode: status,
		Error:      errMsg,
		Status:     parsed,
	}
}

// CheckAllSubmissions scans the caller's submissions, optionally
// filtered. Invalid filter arguments (a reversed or degenerate date
// range) are programmer errors and returned as a plain error; everything
// the service reports lands in the result.
func (s *SubmissionService) CheckAllSubmissions(ctx context.Context, req AllSubmissionsRequest) (AllSubmissionsResult, error) {
	filters := make([]Filter, 0, len(req.Filters)+4)
	filters = append(filters, req.Filters...)
	if req.ActiveOnly {
		filters = append(filters, Filter{"active", "==", true})
	}
	if req.ExcludeTests {
		filters = append(filters, Filter{"test", "==", false})
	}

	if !req.NewerThan.IsZero() && !req.OlderThan.IsZero() {
		if req.NewerThan.Equal(req.OlderThan) {
			return AllSubmissionsResult{}, errors.New(
				"date filters cannot be identical; to see submissions from one day, " +
					"set the older-than filter one day past the date in question")
		}
		if req.NewerThan.After(req.OlderThan) {
			return AllSubmissionsResult{}, errors.New("NewerThan must be before OlderThan")
		}
	}
	if !req.NewerThan.IsZero() {
		filters = append(filters, Filter{"submission_time", ">=", req.NewerThan.UTC().Format(time.RFC3339)})
	}
	if !req.OlderThan.IsZero() {
		filters = append(filters, Filter{"submission_time", "<=", req.OlderThan.UTC().Format(time.RFC3339)})
	}

	body, err := json.Marshal(map[string]interface{}{"filters": filters})
	if err != nil {
		return AllSubmissionsResult{}, err
	}

	url := s.http.BuildURL(config.AllStatusRoute, req.AdminCode)
	respBody, status, err := s.http.Do(ctx, http.MethodPost, url, body)
	if err != nil {
		return AllSubmissionsResult{Error: fmt.Sprintf("submission scan failed: %v", err)}, nil
	}

	parsed, errMsg := interpret(status, respBody, "fetching submissions")
	result := AllSubmissionsResult{
		Success:    errMsg == "",
		StatusCode: status,
		Error:      errMsg,
	}
	if raw, ok := parsed["submissions"].([]interface{}); ok {
		for _, entry := range raw {
			if sub, ok := entry.(map[string]interface{}); ok {
				result.Submissions = append(result.Submissions, sub)
			}
		}
	}
	return result, nil
}

// ActiveMessage renders the processing state of a status record.
func ActiveMessage(status map[string]interface{}) string {
	if active, _ := status["active"].(bool); active {
		return "This submission is still processing."
	}
	return "This submission is no longer processing."
}

// StatusWord classifies a compact per-step status code string into one
// human word, scanning for failure and progress markers.
func StatusWord(code string) string {
	switch {
	case code == "":
		return "Unknown"
	case strings.Contains(code, "F"):
		return "Failed"
	case strings.Contains(code, "P"):
		return "Processing"
	case strings.HasSuffix(code, "S"):
		return "Succeeded"
	case strings.HasSuffix(code, "X"):
		return "Cancelled"
	case strings.HasPrefix(code, "z"):
		return "Not started"
	case strings.Contains(code, "R"):
		return "Retrying error"
	default:
		return "Unknown"
	}
}

// SummaryLine renders a one-line summary of a scanned submission, in the
// shape "<source_id>: <Processing|Not processing> - <status word>".
func SummaryLine(sub map[string]interface{}) string {
	sourceID, _ := sub["source_id"].(string)
	code, _ := sub["status_code"].(string)
	processing := "Not processing"
	if active, _ := sub["active"].(bool); active {
		processing = "Processing"
	}
	return fmt.Sprintf("%s: %s - %s", sourceID, processing, StatusWord(code))
}
