// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"sync"
)

// Authorizer produces the Authorization header for Connect requests and
// can attempt a silent credential refresh when the service rejects one.
type Authorizer interface {
	AuthorizationHeader(ctx context.Context) (string, error)
	// HandleMissingAuthorization is called once after a 401/403 response.
	// Implementations refresh whatever credential they hold; returning an
	// error means the caller should give up instead of retrying.
	HandleMissingAuthorization(ctx context.Context) error
}

// RefreshFunc exchanges expired credentials for a fresh bearer token.
type RefreshFunc func(ctx context.Context) (string, error)

// TokenAuthorizer holds a bearer token, optionally refreshable.
type TokenAuthorizer struct {
	mu      sync.Mutex
	token   string
	refresh RefreshFunc
}

func NewTokenAuthorizer(token string, refresh RefreshFunc) *TokenAuthorizer {
	return &TokenAuthorizer{token: token, refresh: refresh}
}

func (a *TokenAuthorizer) AuthorizationHeader(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token == "" {
		return "", errors.New("no access token available")
	}
	return "Bearer " + a.token, nil
}

func (a *TokenAuthorizer) HandleMissingAuthorization(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.refresh == nil {
		return errors.New("credentials rejected and no refresh configured")
	}
	token, err := a.refresh(ctx)
	if err != nil {
		return err
	}
	a.token = token
	return nil
}
