// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package transfer

// UploadRequest stages a local file or directory onto a remote endpoint.
type UploadRequest struct {
	// LocalPath is the file or directory to stage. Required.
	LocalPath string
	// EndpointID identifies the staging endpoint. Defaults to
	// DefaultEndpointID.
	EndpointID string
	// ParentDir is the remote directory staged data is created under.
	// Defaults to "/tmp".
	ParentDir string
	// ChildDir names the per-upload directory. Defaults to a random UUID
	// so repeated uploads never collide.
	ChildDir string
	Verbose  bool
}

// UploadResult reports where the staged data landed.
type UploadResult struct {
	// DataSourceURL is the browsable reference to the staged data,
	// suitable for AddDataSource on a submission.
	DataSourceURL string
	Files         []FileInfo
}

// FileInfo describes one staged file.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	ContentType  string `json:"content_type"`
	LastModified string `json:"last_modified"`
	Size         int64  `json:"size"`
}
