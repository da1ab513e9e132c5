// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"context"
	"strings"
	"testing"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

func TestResolveBaseURL(t *testing.T) {
	cases := []struct {
		instance string
		want     string
	}{
		{"", config.ProductionURL},
		{"prod", config.ProductionURL},
		{"production", config.ProductionURL},
		{"dev", config.DevelopmentURL},
		{"development", config.DevelopmentURL},
	}
	for _, tc := range cases {
		got, err := config.CoreConfig{ServiceInstance: tc.instance}.ResolveBaseURL()
		if err != nil {
			t.Errorf("ResolveBaseURL(%q) errored: %v", tc.instance, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveBaseURL(%q) = %s, want %s", tc.instance, got, tc.want)
		}
	}

	_, err := config.CoreConfig{ServiceInstance: "staging"}.ResolveBaseURL()
	if err == nil || !strings.Contains(err.Error(), `"staging"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestResolveBaseURLOverride(t *testing.T) {
	// An explicit BaseURL wins even over a named instance.
	got, err := config.CoreConfig{ServiceInstance: "dev", BaseURL: "http://localhost:5000"}.ResolveBaseURL()
	if err != nil {
		t.Fatal(err)
	}
	if got != "http://localhost:5000" {
		t.Fatalf("got %s", got)
	}
}

func TestTokenAuthorizer(t *testing.T) {
	a := config.NewTokenAuthorizer("tok1", func(ctx context.Context) (string, error) {
		return "tok2", nil
	})

	header, err := a.AuthorizationHeader(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if header != "Bearer tok1" {
		t.Fatalf("header = %q", header)
	}

	if err := a.HandleMissingAuthorization(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	header, _ = a.AuthorizationHeader(context.Background())
	if header != "Bearer tok2" {
		t.Fatalf("header after refresh = %q", header)
	}
}

func TestTokenAuthorizerNoToken(t *testing.T) {
	a := config.NewTokenAuthorizer("", nil)
	if _, err := a.AuthorizationHeader(context.Background()); err == nil {
		t.Fatal("expected an error with no token")
	}
	if err := a.HandleMissingAuthorization(context.Background()); err == nil {
		t.Fatal("expected an error with no refresh configured")
	}
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("MDF_SERVICE_INSTANCE", "dev")
	t.Setenv("MDF_ACCESS_TOKEN", "env-token")
	t.Setenv("MDF_STAGING_BUCKET", "my-bucket")
	// Keep the test hermetic if the developer has a real INI at $HOME.
	t.Setenv("HOME", t.TempDir())

	conf := config.FromEnvironment()
	if conf.Core.ServiceInstance != "dev" {
		t.Errorf("ServiceInstance = %q", conf.Core.ServiceInstance)
	}
	if conf.Core.AccessToken != "env-token" {
		t.Errorf("AccessToken = %q", conf.Core.AccessToken)
	}
	if conf.Staging.Bucket != "my-bucket" {
		t.Errorf("Bucket = %q", conf.Staging.Bucket)
	}
}

func TestWriteAndReadEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MDF_SERVICE_INSTANCE", "prod")
	t.Setenv("MDF_ACCESS_TOKEN", "persisted-token")

	if err := config.WriteEnvironment("team"); err != nil {
		t.Fatalf("WriteEnvironment failed: %v", err)
	}

	// Drop the process env; the INI section must now supply the values.
	t.Setenv("MDF_SERVICE_INSTANCE", "")
	t.Setenv("MDF_ACCESS_TOKEN", "")

	conf := config.FromEnvironment("team")
	if conf.Core.ServiceInstance != "prod" {
		t.Errorf("ServiceInstance = %q", conf.Core.ServiceInstance)
	}
	if conf.Core.AccessToken != "persisted-token" {
		t.Errorf("AccessToken = %q", conf.Core.AccessToken)
	}
}
