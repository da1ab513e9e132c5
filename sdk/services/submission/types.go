// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"encoding/json"
	"time"
)

// Envelope is the single document representing one submission. Empty
// optional blocks are dropped on serialization; dc, data_sources, test
// and update are always present, matching what the service expects.
type Envelope struct {
	DC                map[string]interface{}            `json:"dc"`
	DataSources       []string                          `json:"data_sources"`
	Test              bool                              `json:"test"`
	Update            bool                              `json:"update"`
	MDF               map[string]interface{}            `json:"mdf,omitempty"`
	MRR               map[string]interface{}            `json:"mrr,omitempty"`
	Custom            map[string]interface{}            `json:"custom,omitempty"`
	Projects          map[string]map[string]interface{} `json:"projects,omitempty"`
	DataDestinations  []string                          `json:"data_destinations,omitempty"`
	ExternalURI       string                            `json:"external_uri,omitempty"`
	Index             map[string]IndexEntry             `json:"index,omitempty"`
	ExtractionConfig  map[string]interface{}            `json:"extraction_config,omitempty"`
	Services          map[string]interface{}            `json:"services,omitempty"`
	Tags              []string                          `json:"tags,omitempty"`
	Curation          bool                              `json:"curation,omitempty"`
	NoExtract         bool                              `json:"no_extract,omitempty"`
	DatasetACL        []string                          `json:"dataset_acl,omitempty"`
	IncrementalUpdate string                            `json:"incremental_update,omitempty"`
	MetadataOnly      bool                              `json:"metadata_only,omitempty"`
}

// IndexEntry holds extraction instructions for one data type.
type IndexEntry struct {
	Mapping   map[string]interface{} `json:"mapping"`
	Delimiter string                 `json:"delimiter,omitempty"`
	NAValues  []string               `json:"na_values,omitempty"`
}

// IndexDataTypes is the fixed set of data-type tags AddIndex accepts.
var IndexDataTypes = []string{"json", "csv", "yaml", "xml", "excel", "filename"}

// Link points at an external resource related to the dataset.
type Link struct {
	Type        string `json:"type,omitempty"`
	DOI         string `json:"doi,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	BibTeX      string `json:"bibtex,omitempty"`
}

// DCBlockRequest carries the bibliographic metadata for CreateDCBlock.
// Titles and Authors are required; everything else is optional.
type DCBlockRequest struct {
	Titles  []string
	Authors []string

	// Affiliations groups author affiliations. With exactly one group per
	// author, group i is assigned to author i. Any other length broadcasts
	// the whole value to every author.
	Affiliations [][]string

	Publisher       string
	PublicationYear string
	ResourceType    string
	Description     string
	DatasetDOI      string
	RelatedDOIs     []string
	Subjects        []string

	// Extra fields are deep-merged on top of the assembled block;
	// a colliding scalar in Extra wins, nested maps merge.
	Extra map[string]interface{}
}

// IndexRequest carries one indexing instruction for AddIndex.
type IndexRequest struct {
	DataType  string
	Mapping   map[string]interface{}
	Delimiter string
	NAValues  []string
}

// SubmitRequest drives SubmitDataset.
type SubmitRequest struct {
	// Update must be set to resubmit a dataset that already has an
	// assigned source ID.
	Update bool
	// Submission, when non-nil, is sent as-is and supersedes all state
	// assembled through the builder methods, including the resubmission
	// guard.
	Submission *Envelope
	// Reset clears the builder state after the attempt, whatever the
	// outcome. The assigned source ID is lost with it.
	Reset bool
}

// MetadataUpdateRequest drives SubmitMetadataUpdate.
type MetadataUpdateRequest struct {
	SourceID string
	// Update, when non-nil, supersedes the builder-assembled metadata.
	Update map[string]interface{}
	Reset  bool
}

// Result reports the outcome of a submission-shaped operation.
type Result struct {
	Success    bool   `json:"success"`
	SourceID   string `json:"source_id,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// StatusResult reports one submission's status lookup.
type StatusResult struct {
	Success    bool                   `json:"success"`
	StatusCode int                    `json:"status_code,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Status     map[string]interface{} `json:"status,omitempty"`
}

// Filter restricts a submission scan. It serializes as a
// [field, operator, value] triple.
type Filter struct {
	Field    string
	Operator string
	Value    interface{}
}

func (f Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{f.Field, f.Operator, f.Value})
}

// AllSubmissionsRequest drives CheckAllSubmissions.
type AllSubmissionsRequest struct {
	ActiveOnly   bool
	ExcludeTests bool
	// NewerThan / OlderThan bound the submission time, compared in UTC.
	NewerThan time.Time
	OlderThan time.Time
	Filters   []Filter
	// AdminCode is reserved for service administrators ("all", "active").
	AdminCode string
}

// AllSubmissionsResult reports a submission scan.
type AllSubmissionsResult struct {
	Success     bool                     `json:"success"`
	StatusCode  int                      `json:"status_code,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Submissions []map[string]interface{} `json:"submissions,omitempty"`
}

// CurationTaskResult reports a curation task lookup.
type CurationTaskResult struct {
	Success    bool                   `json:"success"`
	StatusCode int                    `json:"status_code,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Task       map[string]interface{} `json:"curation_task,omitempty"`
}

// CurationTasksResult reports the open curation tasks available to the caller.
type CurationTasksResult struct {
	Success    bool                     `json:"success"`
	StatusCode int                      `json:"status_code,omitempty"`
	Error      string                   `json:"error,omitempty"`
	Tasks      []map[string]interface{} `json:"curation_tasks,omitempty"`
}

// ConfirmFunc lets callers approve a curation verdict before it is sent.
// It receives the verdict and a task summary and returns whether to
// proceed, plus an optional reason overriding the default one.
type ConfirmFunc func(verdict, summary string) (ok bool, reason string)

// CompleteCurationRequest drives CompleteCuration.
type CompleteCurationRequest struct {
	SourceID string
	// Verdict must be VerdictAccept or VerdictReject.
	Verdict string
	// Reason, when empty, falls back to the fixed default for the verdict.
	Reason string
	// Confirm, when non-nil, is consulted before the verdict is sent.
	Confirm ConfirmFunc
}
