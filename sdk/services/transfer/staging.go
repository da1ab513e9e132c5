// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"io"
)

// StagingClient abstracts the remote store that holds uploaded data
// before the ingestion service transfers it. Two backends exist: an
// authenticated HTTPS PUT endpoint and an S3-compatible object store.
type StagingClient interface {
	// ResolveBaseURL returns the base location files are written under
	// for the given endpoint.
	ResolveBaseURL(ctx context.Context, endpointID string) (string, error)
	// CreateDirectory materializes a remote directory. Backends where
	// directories appear implicitly may treat this as a no-op.
	CreateDirectory(ctx context.Context, endpointID, path string) error
	// PutFile writes one object. Uploads are strictly sequential; a
	// failed put aborts the caller's walk with no rollback of files
	// already written.
	PutFile(ctx context.Context, endpointID, remotePath string, r io.Reader, size int64, contentType string) error
	// BrowseURL renders the browsable reference for a staged path.
	BrowseURL(endpointID, path string) string
}
