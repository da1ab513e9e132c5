// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

const (
	// ProductionURL is the default Connect service location.
	ProductionURL = "https://api.materialsdatafacility.org"
	// DevelopmentURL is the sandbox instance of the Connect service.
	DevelopmentURL = "https://dev.api.materialsdatafacility.org"
)

// Config is the full configuration handed to the SDK services.
type Config struct {
	Core    CoreConfig
	Staging StagingConfig
}

// CoreConfig selects and authenticates against a Connect service instance.
type CoreConfig struct {
	// ServiceInstance selects the deployment: "", "prod" or "production"
	// for the live service, "dev" or "development" for the sandbox.
	// Any other value is rejected at service construction.
	ServiceInstance string

	// BaseURL overrides the instance URL entirely. Intended for tests
	// and private deployments.
	BaseURL string

	AccessToken string
}

// StagingConfig configures the file-staging backend used by the transfer
// service. When EndpointURL points at an S3-compatible store the S3 backend
// is used, otherwise files are staged over authenticated HTTPS.
type StagingConfig struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
	Bucket      string
}

// ResolveBaseURL maps the configured service instance to its URL.
// An unrecognized instance name is a programmer error and fails loudly.
func (c CoreConfig) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	switch c.ServiceInstance {
	case "", "prod", "production":
		return ProductionURL, nil
	case "dev", "development":
		return DevelopmentURL, nil
	}
	return "", fmt.Errorf("service instance must be 'prod' or 'dev', not %q", c.ServiceInstance)
}
