// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

func infof(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", a...)
}

// UploadToEndpoint stages a local file or directory onto the remote
// endpoint and returns a browsable data source URL for it, suitable for
// AddDataSource on a submission.
//
// Files are uploaded strictly sequentially in directory-walk order. The
// first failed put aborts the whole upload; files already staged are
// left in place with no rollback.
func (s *TransferService) UploadToEndpoint(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if req.LocalPath == "" {
		return nil, errors.New("missing required input file or directory")
	}
	endpointID := req.EndpointID
	if endpointID == "" {
		endpointID = DefaultEndpointID
	}
	parent := req.ParentDir
	if parent == "" {
		parent = "/tmp"
	}
	child := req.ChildDir
	if child == "" {
		child = uuid.New().String()
	}
	destPath := path.Join(parent, child)

	if err := s.staging.CreateDirectory(ctx, endpointID, destPath); err != nil {
		return nil, fmt.Errorf("failed to create destination folder %s: %w", destPath, err)
	}

	st, err := os.Stat(req.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access input: %w", err)
	}

	var files []FileInfo
	if st.IsDir() {
		files, err = s.uploadDir(ctx, endpointID, destPath, req.LocalPath, req.Verbose)
	} else {
		var info FileInfo
		info, err = s.uploadFile(ctx, endpointID, path.Join(destPath, st.Name()), req.LocalPath, "")
		files = []FileInfo{info}
	}
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		DataSourceURL: s.staging.BrowseURL(endpointID, destPath),
		Files:         files,
	}, nil
}

// uploadDir walks localPath and puts every regular file, recreating the
// directory layout under destPath. Subdirectories are materialized on
// the endpoint before their files are written.
func (s *TransferService) uploadDir(ctx context.Context, endpointID, destPath, localPath string, verbose bool) ([]FileInfo, error) {
	var localFiles []string
	err := filepath.Walk(localPath, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk error: %w", walkErr)
		}
		if info.IsDir() {
			if p != localPath {
				rel, err := filepath.Rel(localPath, p)
				if err != nil {
					return fmt.Errorf("relative path error: %w", err)
				}
				sub := path.Join(destPath, filepath.ToSlash(rel))
				if err := s.staging.CreateDirectory(ctx, endpointID, sub); err != nil {
					return fmt.Errorf("error while creating child directory %s: %w", sub, err)
				}
			}
			return nil
		}
		localFiles = append(localFiles, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if verbose {
		infof("Staging directory %s → %s (%d files)", localPath, destPath, len(localFiles))
	}

	var files []FileInfo
	for i, p := range localFiles {
		rel, err := filepath.Rel(localPath, p)
		if err != nil {
			return nil, fmt.Errorf("relative path error: %w", err)
		}
		relSlash := filepath.ToSlash(rel)
		if verbose {
			infof("   [%d/%d] %s", i+1, len(localFiles), relSlash)
		}
		info, err := s.uploadFile(ctx, endpointID, path.Join(destPath, relSlash), p, path.Dir(relSlash))
		if err != nil {
			return nil, err
		}
		files = append(files, info)
	}
	return files, nil
}

// uploadFile puts one local file and describes it for the result.
func (s *TransferService) uploadFile(ctx context.Context, endpointID, remotePath, localPath, relDir string) (FileInfo, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	st, err := file.Stat()
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat error: %w", err)
	}

	contentType, err := sniffContentType(file)
	if err != nil {
		return FileInfo{}, err
	}

	if err := s.staging.PutFile(ctx, endpointID, remotePath, file, st.Size(), contentType); err != nil {
		return FileInfo{}, err
	}

	relPath := st.Name()
	if relDir != "" && relDir != "." {
		relPath = relDir + "/" + st.Name()
	}
	return FileInfo{
		Path:         relPath,
		Name:         st.Name(),
		ContentType:  contentType,
		LastModified: st.ModTime().UTC().Format(time.RFC1123),
		Size:         st.Size(),
	}, nil
}

// sniffContentType detects the MIME type from the first 512 bytes and
// rewinds the file for the actual upload.
func sniffContentType(file *os.File) (string, error) {
	header := make([]byte, 512)
	n, _ := file.Read(header)
	contentType := http.DetectContentType(header[:n])
	if _, err := file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("seek error: %w", err)
	}
	return contentType, nil
}
