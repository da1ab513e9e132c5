// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

const browseURLTemplate = "https://app.globus.org/file-manager?origin_id=%s&origin_path=%s"

// ResolveFunc maps a staging endpoint ID to its HTTPS base URL.
type ResolveFunc func(ctx context.Context, endpointID string) (string, error)

// httpsStaging writes files to a transfer endpoint over authenticated
// HTTPS PUT requests.
type httpsStaging struct {
	httpClient *http.Client
	authorizer config.Authorizer
	resolve    ResolveFunc
}

// NewHTTPSStaging builds the HTTPS staging backend. resolve translates
// endpoint IDs into base URLs; it is typically backed by the transfer
// provider's endpoint lookup.
func NewHTTPSStaging(httpClient *http.Client, authorizer config.Authorizer, resolve ResolveFunc) StagingClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpsStaging{httpClient: httpClient, authorizer: authorizer, resolve: resolve}
}

func (h *httpsStaging) ResolveBaseURL(ctx context.Context, endpointID string) (string, error) {
	if h.resolve == nil {
		return "", fmt.Errorf("no endpoint resolver configured for %q", endpointID)
	}
	return h.resolve(ctx, endpointID)
}

// CreateDirectory is a no-op: HTTPS transfer endpoints materialize
// directories from the paths of the objects written into them.
func (h *httpsStaging) CreateDirectory(ctx context.Context, endpointID, path string) error {
	return nil
}

func (h *httpsStaging) PutFile(ctx context.Context, endpointID, remotePath string, r io.Reader, size int64, contentType string) error {
	base, err := h.ResolveBaseURL(ctx, endpointID)
	if err != nil {
		return err
	}
	url := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(remotePath, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, r)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)
	if h.authorizer != nil {
		header, err := h.authorizer.AuthorizationHeader(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", header)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload error (%s): %w", remotePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("error on HTTPS PUT, got response %d: %s", resp.StatusCode, body)
	}
	return nil
}

func (h *httpsStaging) BrowseURL(endpointID, path string) string {
	return fmt.Sprintf(browseURLTemplate, endpointID, escapePath(path))
}

// escapePath percent-encodes everything outside the unreserved set and
// '*', including path separators, for embedding in a query string.
func escapePath(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '*' || c == '-' || c == '_' || c == '.' || c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
