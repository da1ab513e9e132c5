// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
)

// Service routes, appended to the instance base URL.
const (
	SubmitRoute         = "/submit"
	StatusRoute         = "/status/"
	AllStatusRoute      = "/submissions/"
	CurationRoute       = "/curate/"
	AllCurationRoute    = "/curation/"
	MetadataUpdateRoute = "/update/"
)

type CoreHTTP interface {
	BuildURL(route, id string) string
	// Do performs one synchronous round trip and returns the raw body and
	// status code. A non-2xx status is not an error here; interpreting it
	// belongs to the calling service. On 401/403 the authorizer is asked
	// to refresh exactly once and the request is retried exactly once.
	Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error)
}

type httpCore struct {
	httpClient *http.Client
	baseURL    string
	authorizer Authorizer
}

func NewHTTPCore(httpClient *http.Client, baseURL string, authorizer Authorizer) CoreHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpCore{httpClient: httpClient, baseURL: baseURL, authorizer: authorizer}
}

func (c *httpCore) BuildURL(route, id string) string {
	return strings.TrimSuffix(c.baseURL, "/") + route + id
}

func (c *httpCore) Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	body, status, err := c.roundTrip(ctx, method, url, data)
	if err != nil {
		return nil, 0, err
	}
	if status != http.StatusUnauthorized && status != http.StatusForbidden {
		return body, status, nil
	}
	if c.authorizer == nil {
		return body, status, nil
	}
	if rerr := c.authorizer.HandleMissingAuthorization(ctx); rerr != nil {
		return body, status, nil
	}
	return c.roundTrip(ctx, method, url, data)
}

func (c *httpCore) roundTrip(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authorizer != nil {
		header, err := c.authorizer.AuthorizationHeader(ctx)
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Authorization", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if rerr != nil {
		return nil, resp.StatusCode, rerr
	}
	return b, resp.StatusCode, nil
}
