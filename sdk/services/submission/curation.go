// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

// Curation verdicts.
const (
	VerdictAccept = "accept"
	VerdictReject = "reject"
)

// defaultCurationReasons back a verdict when the caller supplies none.
var defaultCurationReasons = map[string]string{
	VerdictAccept: "This submission has been accepted because it meets the appropriate standards",
	VerdictReject: "This submission has been rejected because it does not meet the appropriate standards",
}

// GetCurationTask fetches the content of one curation task. Requires
// curation permission on the submission; a missing task surfaces as a
// 404 with a not-found error message.
func (s *SubmissionService) GetCurationTask(ctx context.Context, sourceID string) CurationTaskResult {
	url := s.http.BuildURL(config.CurationRoute, sourceID)
	body, status, err := s.http.Do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CurationTaskResult{Error: fmt.Sprintf("curation task lookup failed: %v", err)}
	}

	parsed, errMsg := interpret(status, body, "fetching curation task")
	result := CurationTaskResult{
		Success:    errMsg == "",
		StatusCode: status,
		Error:      errMsg,
	}
	if task, ok := parsed["curation_task"].(map[string]interface{}); ok {
		result.Task = task
	}
	return result
}

// GetAvailableCurationTasks fetches all curation tasks open to the
// caller. adminCode is reserved for service administrators ("all").
func (s *SubmissionService) GetAvailableCurationTasks(ctx context.Context, adminCode string) CurationTasksResult {
	url := s.http.BuildURL(config.AllCurationRoute, adminCode)
	body, status, err := s.http.Do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CurationTasksResult{Error: fmt.Sprintf("curation task lookup failed: %v", err)}
	}

	parsed, errMsg := interpret(status, body, "fetching curation tasks")
	result := CurationTasksResult{
		Success:    errMsg == "",
		StatusCode: status,
		Error:      errMsg,
	}
	if raw, ok := parsed["curation_tasks"].([]interface{}); ok {
		for _, entry := range raw {
			if task, ok := entry.(map[string]interface{}); ok {
				result.Tasks = append(result.Tasks, task)
			}
		}
	}
	return result
}

// TaskSummary renders the short human summary of a curation task.
func TaskSummary(task map[string]interface{}) string {
	submitter := ""
	if info, ok := task["submission_info"].(map[string]interface{}); ok {
		submitter, _ = info["submitter"].(string)
	}
	return fmt.Sprintf("%v by %v\nWaiting since %v\n%v\n",
		task["source_id"], submitter, task["curation_start_date"], task["extraction_summary"])
}

// CompleteCuration accepts or rejects a pending curation task.
//
// The verdict is validated locally, the task existence is checked via
// GetCurationTask (a 404 is reported as not found), and when a Confirm
// hook is supplied it is consulted with a task summary before anything is
// sent. With no reason from the caller or the hook, a fixed default
// reason for the verdict is used.
func (s *SubmissionService) CompleteCuration(ctx context.Context, req CompleteCurationRequest) Result {
	verdict := strings.ToLower(strings.TrimSpace(req.Verdict))
	if _, ok := defaultCurationReasons[verdict]; !ok {
		return Result{Error: fmt.Sprintf("%v: %q is not one of [%s, %s]",
			ErrInvalidVerdict, req.Verdict, VerdictAccept, VerdictReject)}
	}

	task := s.GetCurationTask(ctx, req.SourceID)
	if task.StatusCode == http.StatusNotFound {
		errMsg := task.Error
		if errMsg == "" {
			errMsg = ErrNotFound.Error()
		}
		return Result{Error: errMsg, StatusCode: task.StatusCode}
	}
	if !task.Success {
		return Result{Error: task.Error, StatusCode: task.StatusCode}
	}

	reason := req.Reason
	if req.Confirm != nil {
		ok, confirmedReason := req.Confirm(verdict, TaskSummary(task.Task))
		if !ok {
			return Result{Error: "curation cancelled"}
		}
		if reason == "" {
			reason = confirmedReason
		}
	}
	if reason == "" {
		reason = defaultCurationReasons[verdict]
	}

	body, err := json.Marshal(map[string]string{"action": verdict, "reason": reason})
	if err != nil {
		return Result{Error: fmt.Sprintf("the curation command is not JSON compliant: %v", err)}
	}

	url := s.http.BuildURL(config.CurationRoute, req.SourceID)
	respBody, status, err := s.http.Do(ctx, http.MethodPost, url, body)
	if err != nil {
		return Result{Error: fmt.Sprintf("curation failed: %v", err)}
	}

	_, errMsg := interpret(status, respBody, "completing curation task")
	return Result{
		Success:    errMsg == "",
		SourceID:   req.SourceID,
		Error:      errMsg,
		StatusCode: status,
	}
}

// AcceptSubmission completes a curation task by accepting it.
func (s *SubmissionService) AcceptSubmission(ctx context.Context, sourceID, reason string, confirm ConfirmFunc) Result {
	return s.CompleteCuration(ctx, CompleteCurationRequest{
		SourceID: sourceID, Verdict: VerdictAccept, Reason: reason, Confirm: confirm,
	})
}

// RejectSubmission completes a curation task by rejecting it.
func (s *SubmissionService) RejectSubmission(ctx context.Context, sourceID, reason string, confirm ConfirmFunc) Result {
	return s.CompleteCuration(ctx, CompleteCurationRequest{
		SourceID: sourceID, Verdict: VerdictReject, Reason: reason, Confirm: confirm,
	})
}
