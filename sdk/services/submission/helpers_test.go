// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission_test

import (
	"context"
	"testing"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
	"github.com/matconnect/connect-cli-sdk/sdk/services/submission"
)

func newService(t *testing.T, baseURL string, opts ...submission.Option) *submission.SubmissionService {
	t.Helper()
	svc, err := submission.NewSubmissionService(context.Background(), config.Config{
		Core: config.CoreConfig{
			BaseURL:     baseURL,
			AccessToken: "test-token",
		},
	}, nil, opts...)
	if err != nil {
		t.Fatalf("failed to init service: %v", err)
	}
	return svc
}
