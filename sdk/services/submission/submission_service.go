// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"context"
	"errors"

	"github.com/matconnect/connect-cli-sdk/sdk/config"
)

// SubmissionService assembles dataset submissions and drives their
// lifecycle against one Connect service instance.
//
// A service instance owns its mutable submission state and is meant for
// exclusive single-threaded use. Concurrent use of one instance from
// multiple goroutines is undefined behavior; create one service per
// goroutine instead.
type SubmissionService struct {
	http config.CoreHTTP

	// Survives Reset, like the configured endpoint.
	test bool

	dc                map[string]interface{}
	mdf               map[string]interface{}
	mrr               map[string]interface{}
	custom            map[string]interface{}
	projects          map[string]map[string]interface{}
	dataSources       []string
	dataDestinations  []string
	externalURI       string
	index             map[string]IndexEntry
	extractionConfig  map[string]interface{}
	services          map[string]interface{}
	tags              []string
	curation          bool
	noExtract         bool
	datasetACL        []string
	incrementalUpdate string
	metadataOnly      bool
	update            bool
	sourceID          string
}

// Option tweaks service construction.
type Option func(*SubmissionService)

// WithTest marks every submission from this service as a test submission,
// processed against sandbox resources.
func WithTest(test bool) Option {
	return func(s *SubmissionService) { s.test = test }
}

// NewSubmissionService builds a service against the configured instance.
// An unrecognized service-instance selector or a missing authorizer is a
// construction error; everything else is reported through Results.
func NewSubmissionService(_ context.Context, conf config.Config, authorizer config.Authorizer, opts ...Option) (*SubmissionService, error) {
	baseURL, err := conf.Core.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	if authorizer == nil {
		if conf.Core.AccessToken == "" {
			return nil, errors.New("unable to authenticate: no authorizer and no access token")
		}
		authorizer = config.NewTokenAuthorizer(conf.Core.AccessToken, nil)
	}

	s := &SubmissionService{
		http: config.NewHTTPCore(nil, baseURL, authorizer),
	}
	s.Reset()
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SourceID returns the identifier assigned by the last successful
// submission, or "" when nothing has been submitted since the last Reset.
func (s *SubmissionService) SourceID() string {
	return s.sourceID
}

// Reset restores every submission field to its construction default.
// The test flag and the configured endpoint persist so a caller can run
// many submissions against the same environment. The assigned source ID
// is cleared; status checks afterwards need it passed explicitly.
func (s *SubmissionService) Reset() {
	s.dc = map[string]interface{}{}
	s.mdf = map[string]interface{}{}
	s.mrr = map[string]interface{}{}
	s.custom = map[string]interface{}{}
	s.projects = map[string]map[string]interface{}{}
	s.dataSources = nil
	s.dataDestinations = nil
	s.externalURI = ""
	s.index = map[string]IndexEntry{}
	s.extractionConfig = map[string]interface{}{}
	s.services = map[string]interface{}{}
	s.tags = nil
	s.curation = false
	s.noExtract = false
	s.datasetACL = nil
	s.incrementalUpdate = ""
	s.metadataOnly = false
	s.update = false
	s.sourceID = ""
}

// Submission exports the accumulated state as one canonical envelope.
// Optional blocks left at their defaults are absent from the serialized
// document.
func (s *SubmissionService) Submission() *Envelope {
	env := &Envelope{
		DC:                s.dc,
		DataSources:       s.dataSources,
		Test:              s.test,
		Update:            s.update,
		DataDestinations:  s.dataDestinations,
		ExternalURI:       s.externalURI,
		Tags:              s.tags,
		Curation:          s.curation,
		NoExtract:         s.noExtract,
		DatasetACL:        s.datasetACL,
		IncrementalUpdate: s.incrementalUpdate,
		MetadataOnly:      s.metadataOnly,
	}
	if len(s.mdf) > 0 {
		env.MDF = s.mdf
	}
	if len(s.mrr) > 0 {
		env.MRR = s.mrr
	}
	if len(s.custom) > 0 {
		env.Custom = s.custom
	}
	if len(s.projects) > 0 {
		env.Projects = s.projects
	}
	if len(s.index) > 0 {
		env.Index = s.index
	}
	if len(s.extractionConfig) > 0 {
		env.ExtractionConfig = s.extractionConfig
	}
	if len(s.services) > 0 {
		env.Services = s.services
	}
	return env
}
