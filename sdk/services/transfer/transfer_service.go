// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

// DefaultEndpointID is the staging endpoint used when a request does not
// name one.
const DefaultEndpointID = "82f1b5c6-6e9b-11e5-ba47-22000b92c6ec"

// TransferService stages local data onto a remote endpoint so a
// submission can reference it as a data source.
type TransferService struct {
	staging StagingClient
}

// NewTransferService picks the staging backend from configuration: an
// S3-compatible store when staging credentials are configured, otherwise
// authenticated HTTPS PUT using the given authorizer and resolver.
func NewTransferService(ctx context.Context, conf config.Config, authorizer config.Authorizer, resolve ResolveFunc) (*TransferService, error) {
	if conf.Staging.AccessKey != "" || conf.Staging.EndpointURL != "" {
		staging, err := NewS3Staging(ctx, conf.Staging)
		if err != nil {
			return nil, fmt.Errorf("staging init failed: %w", err)
		}
		return &TransferService{staging: staging}, nil
	}
	return &TransferService{staging: NewHTTPSStaging(nil, authorizer, resolve)}, nil
}

// NewTransferServiceWithStaging wires an explicit staging backend.
func NewTransferServiceWithStaging(staging StagingClient) *TransferService {
	return &TransferService{staging: staging}
}
