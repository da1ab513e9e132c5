// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
	"github.com/matconnect/connect-cli-sdk/sdk/utils"
)

// SubmitDataset sends the submission for processing and, on success,
// records the source ID the service assigned. All expected failures are
// reported in the Result rather than returned as errors.
//
// Without an explicit envelope, resubmitting a dataset that already has a
// source ID requires Update; the guard is skipped entirely when
// req.Submission is supplied, since the caller then owns the document.
// With Reset set, the builder state is cleared whatever the outcome, so a
// failed envelope is lost along with a successful one.
func (s *SubmissionService) SubmitDataset(ctx context.Context, req SubmitRequest) Result {
	env := req.Submission
	if env == nil {
		if !req.Update && s.sourceID != "" {
			return Result{Error: fmt.Sprintf("%v: set Update to resubmit it", ErrAlreadySubmitted)}
		}
		s.update = req.Update
		env = s.Submission()
	}

	if (len(env.DC) == 0 || len(env.DataSources) == 0) &&
		env.IncrementalUpdate == "" && !env.MetadataOnly {
		return Result{Error: "you must populate the dc and data_sources blocks before submission"}
	}

	body, err := json.Marshal(env)
	if err != nil {
		return Result{Error: fmt.Sprintf("the submission is not JSON compliant: %v", err)}
	}

	url := s.http.BuildURL(config.SubmitRoute, "")
	respBody, status, err := s.http.Do(ctx, http.MethodPost, url, body)
	if err != nil {
		return Result{Error: fmt.Sprintf("submission failed: %v", err)}
	}

	parsed, errMsg := interpret(status, respBody, "submitting dataset")
	if errMsg == "" {
		if id, ok := parsed["source_id"].(string); ok {
			s.sourceID = id
		}
	}

	sourceID := s.sourceID
	if req.Reset {
		s.Reset()
	}

	return Result{
		Success:    errMsg == "",
		SourceID:   sourceID,
		Error:      errMsg,
		StatusCode: status,
	}
}

// SubmitMetadataUpdate sends an update to a dataset entry, not to its
// data or records. Blocks that only apply to a full submission are
// stripped before sending. The stored source ID is never touched.
func (s *SubmissionService) SubmitMetadataUpdate(ctx context.Context, req MetadataUpdateRequest) Result {
	update := req.Update
	if update == nil {
		m, err := utils.ToMap(s.Submission())
		if err != nil {
			return Result{Error: fmt.Sprintf("the metadata update is %v", err)}
		}
		update = m
	}
	for _, key := range []string{
		"data_sources", "test", "update", "data_destinations", "index",
		"extraction_config", "services", "curation", "no_extract",
		"incremental_update", "metadata_only",
	} {
		delete(update, key)
	}

	body, err := json.Marshal(update)
	if err != nil {
		return Result{Error: fmt.Sprintf("the metadata update is not JSON compliant: %v", err)}
	}

	url := s.http.BuildURL(config.MetadataUpdateRoute, req.SourceID)
	respBody, status, err := s.http.Do(ctx, http.MethodPost, url, body)
	if err != nil {
		return Result{Error: fmt.Sprintf("metadata update failed: %v", err)}
	}

	_, errMsg := interpret(status, respBody, "updating dataset")

	if req.Reset {
		s.Reset()
	}

	return Result{
		Success:    errMsg == "",
		Error:      errMsg,
		StatusCode: status,
	}
}
