// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"fmt"
	"slices"

	"github.com/matconnect/connect-cli-sdk/sdk/utils"
)

// AddDataSource records the location(s) of the data, formatted with
// protocol. Cumulative: repeated calls append in order, duplicates kept.
func (s *SubmissionService) AddDataSource(dataSource ...string) {
	s.dataSources = append(s.dataSources, dataSource...)
}

// ClearDataSources drops all data sources added so far.
func (s *SubmissionService) ClearDataSources() {
	s.dataSources = nil
}

// AddDataDestination records destination endpoint(s) for the data.
// Cumulative, like AddDataSource.
func (s *SubmissionService) AddDataDestination(dataDestination ...string) {
	s.dataDestinations = append(s.dataDestinations, dataDestination...)
}

// ClearDataDestinations drops all data destinations added so far.
func (s *SubmissionService) ClearDataDestinations() {
	s.dataDestinations = nil
}

// AddTag adds keyword(s) to the dataset. Cumulative. Equivalent to
// setting subjects in CreateDCBlock; this exists for convenience.
func (s *SubmissionService) AddTag(tag ...string) {
	s.tags = append(s.tags, tag...)
}

// ClearTags drops all tags added so far.
func (s *SubmissionService) ClearTags() {
	s.tags = nil
}

// AddIndex stores extraction instructions for one data type. Calling it
// again for the same data type replaces that entry wholesale. The data
// type must be one of IndexDataTypes, and the mapping must serialize to
// JSON; on either failure nothing is stored.
func (s *SubmissionService) AddIndex(req IndexRequest) error {
	if !slices.Contains(IndexDataTypes, req.DataType) {
		return fmt.Errorf("data type %q is not supported; supported types are: %v", req.DataType, IndexDataTypes)
	}
	entry := IndexEntry{
		Mapping:   req.Mapping,
		Delimiter: req.Delimiter,
		NAValues:  req.NAValues,
	}
	if err := utils.ValidateJSON(entry); err != nil {
		return fmt.Errorf("index mapping is %w", err)
	}
	s.index[req.DataType] = entry
	return nil
}

// ClearIndex drops all indexing instructions set so far.
func (s *SubmissionService) ClearIndex() {
	s.index = map[string]IndexEntry{}
}

// AddService requests submission to an integrated service (for example
// "mdf_publish", "citrine" or "mrr"). A nil parameters map enables the
// service with its defaults.
func (s *SubmissionService) AddService(service string, parameters map[string]interface{}) error {
	if parameters == nil {
		s.services[service] = true
		return nil
	}
	if err := utils.ValidateJSON(parameters); err != nil {
		return fmt.Errorf("service parameters are %w", err)
	}
	s.services[service] = parameters
	return nil
}

// ClearServices drops all requested services.
func (s *SubmissionService) ClearServices() {
	s.services = map[string]interface{}{}
}

// SetTest switches between live and sandbox processing for subsequent
// submissions. The flag survives Reset.
func (s *SubmissionService) SetTest(test bool) {
	s.test = test
}

// AddOrganization registers the dataset with organization(s). Cumulative.
// Organizations unknown to the service are discarded server-side.
func (s *SubmissionService) AddOrganization(organization ...string) {
	existing, _ := s.mdf["organizations"].([]string)
	s.mdf["organizations"] = append(existing, organization...)
}

// ClearOrganizations removes all added organizations.
func (s *SubmissionService) ClearOrganizations() {
	delete(s.mdf, "organizations")
}

// AddLinks attaches external resource links to the dataset. Cumulative.
func (s *SubmissionService) AddLinks(links ...Link) {
	existing, _ := s.mdf["links"].([]Link)
	s.mdf["links"] = append(existing, links...)
}

// ClearLinks removes all added links.
func (s *SubmissionService) ClearLinks() {
	delete(s.mdf, "links")
}

// SetCustomBlock replaces the free-form custom block. The block must
// serialize to JSON; on failure the previous block is left in place.
func (s *SubmissionService) SetCustomBlock(customFields map[string]interface{}) error {
	if err := utils.ValidateJSON(customFields); err != nil {
		return fmt.Errorf("custom block is %w", err)
	}
	if customFields == nil {
		customFields = map[string]interface{}{}
	}
	s.custom = customFields
	return nil
}

// SetCustomDescriptions attaches descriptions to custom block fields by
// storing them under "<field>_desc" keys.
func (s *SubmissionService) SetCustomDescriptions(descriptions map[string]string) error {
	if err := utils.ValidateJSON(descriptions); err != nil {
		return fmt.Errorf("custom descriptions are %w", err)
	}
	for field, desc := range descriptions {
		s.custom[field+"_desc"] = desc
	}
	return nil
}

// SetProjectBlock sets one named project block, for members of approved
// projects. A nil data map deletes the block.
func (s *SubmissionService) SetProjectBlock(project string, data map[string]interface{}) error {
	if err := utils.ValidateJSON(data); err != nil {
		return fmt.Errorf("project block is %w", err)
	}
	if data == nil {
		delete(s.projects, project)
		return nil
	}
	s.projects[project] = data
	return nil
}

// SetBaseACL grants full read access on the whole dataset to the given
// principal identifiers, or to everyone via the sentinel "public".
// Unset, the dataset defaults to public.
func (s *SubmissionService) SetBaseACL(acl ...string) {
	s.mdf["acl"] = acl
}

// ClearBaseACL restores the default (public) base ACL.
func (s *SubmissionService) ClearBaseACL() {
	delete(s.mdf, "acl")
}

// SetDatasetACL grants read access to just the dataset entry. Principals
// in the base ACL already hold this permission.
func (s *SubmissionService) SetDatasetACL(acl ...string) {
	s.datasetACL = acl
}

// ClearDatasetACL removes the dataset-entry ACL, inheriting the base ACL.
func (s *SubmissionService) ClearDatasetACL() {
	s.datasetACL = nil
}

// SetSourceName sets the desired source name. The service cleans it on
// submission, so the effective name may differ.
func (s *SubmissionService) SetSourceName(sourceName string) {
	s.mdf["source_name"] = sourceName
}

// ClearSourceName removes a previously set source name.
func (s *SubmissionService) ClearSourceName() {
	delete(s.mdf, "source_name")
}

// SetIncrementalUpdate makes this submission an incremental update of a
// prior submission: server-side, unspecified fields inherit the previous
// metadata. Submissions in this mode may omit the dc and data_sources
// blocks. Submit with Update set.
func (s *SubmissionService) SetIncrementalUpdate(sourceID string) {
	s.incrementalUpdate = sourceID
}

// SetMetadataOnly marks the submission as touching only the dataset
// metadata. Like incremental updates, such submissions may omit the dc
// and data_sources blocks.
func (s *SubmissionService) SetMetadataOnly(metadataOnly bool) {
	s.metadataOnly = metadataOnly
}

// SetExternalURI points at a landing page outside the facility that also
// hosts the dataset.
func (s *SubmissionService) SetExternalURI(uri string) {
	s.externalURI = uri
}

// ClearExternalURI removes the external URI.
func (s *SubmissionService) ClearExternalURI() {
	s.externalURI = ""
}

// SetMRRBlock sets registry-schema metadata for the dataset.
func (s *SubmissionService) SetMRRBlock(mrrData map[string]interface{}) error {
	if err := utils.ValidateJSON(mrrData); err != nil {
		return fmt.Errorf("mrr block is %w", err)
	}
	if mrrData == nil {
		mrrData = map[string]interface{}{}
	}
	s.mrr = mrrData
	return nil
}

// SetPassthrough disables metadata extraction from the dataset's files.
// Only dataset-level metadata will be searchable. Intended for datasets
// that cannot be extracted.
func (s *SubmissionService) SetPassthrough(passthrough bool) {
	s.noExtract = passthrough
}

// SetCuration requires the dataset to be approved in curation before it
// is ingested downstream. Normally set by an organization rather than
// the submitter.
func (s *SubmissionService) SetCuration(curation bool) {
	s.curation = curation
}

// SetExtractionConfig sets advanced extraction parameters.
func (s *SubmissionService) SetExtractionConfig(conf map[string]interface{}) error {
	if err := utils.ValidateJSON(conf); err != nil {
		return fmt.Errorf("extraction config is %w", err)
	}
	if conf == nil {
		conf = map[string]interface{}{}
	}
	s.extractionConfig = conf
	return nil
}
