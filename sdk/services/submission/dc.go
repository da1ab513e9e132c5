// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matconnect/connect-cli-sdk/sdk/utils"
)

// CreateDCBlock assembles the bibliographic (DataCite) block of the
// submission and stores it, replacing any previous block wholesale.
// Titles and Authors are required.
//
// Affiliation assignment: when exactly one affiliation group is given per
// author, group i goes to author i. Any other count broadcasts the whole
// affiliations value, in order, to every author. A two-author request with
// two groups therefore zips, while two groups for three authors gives all
// three authors both groups.
func (s *SubmissionService) CreateDCBlock(req DCBlockRequest) error {
	if len(req.Titles) == 0 && len(req.Authors) == 0 {
		return fmt.Errorf("%w: titles and authors are required", ErrMissingRequiredField)
	}
	if len(req.Titles) == 0 {
		return fmt.Errorf("%w: titles are required", ErrMissingRequiredField)
	}
	if len(req.Authors) == 0 {
		return fmt.Errorf("%w: authors are required", ErrMissingRequiredField)
	}

	titles := make([]interface{}, 0, len(req.Titles))
	for _, t := range req.Titles {
		titles = append(titles, map[string]interface{}{"title": t})
	}

	creators := make([]interface{}, 0, len(req.Authors))
	for i, author := range req.Authors {
		given, family := SplitName(author)
		creator := map[string]interface{}{
			"creatorName": displayName(given, family),
			"familyName":  family,
			"givenName":   given,
		}
		if affs := affiliationsFor(req.Affiliations, len(req.Authors), i); len(affs) > 0 {
			creator["affiliations"] = affs
		}
		creators = append(creators, creator)
	}

	publisher := req.Publisher
	if publisher == "" {
		publisher = "Materials Data Facility"
	}

	year := req.PublicationYear
	if n, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		year = strconv.Itoa(n)
	} else {
		year = strconv.Itoa(time.Now().Year())
	}

	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = "Dataset"
	}

	dc := map[string]interface{}{
		"titles":          titles,
		"creators":        creators,
		"publisher":       publisher,
		"publicationYear": year,
		"resourceType": map[string]interface{}{
			"resourceTypeGeneral": "Dataset",
			"resourceType":        resourceType,
		},
	}

	if req.Description != "" {
		dc["descriptions"] = []interface{}{map[string]interface{}{
			"description":     req.Description,
			"descriptionType": "Other",
		}}
	}

	if req.DatasetDOI != "" {
		dc["identifier"] = map[string]interface{}{
			"identifier":     req.DatasetDOI,
			"identifierType": "DOI",
		}
	}

	if len(req.RelatedDOIs) > 0 {
		related := make([]interface{}, 0, len(req.RelatedDOIs))
		for _, doi := range req.RelatedDOIs {
			related = append(related, map[string]interface{}{
				"relatedIdentifier":     doi,
				"relatedIdentifierType": "DOI",
				"relationType":          "IsPartOf",
			})
		}
		dc["relatedIdentifiers"] = related
	}

	if len(req.Subjects) > 0 {
		subjects := make([]interface{}, 0, len(req.Subjects))
		for _, sub := range req.Subjects {
			subjects = append(subjects, map[string]interface{}{"subject": sub})
		}
		dc["subjects"] = subjects
	}

	if len(req.Extra) > 0 {
		if err := utils.ValidateJSON(req.Extra); err != nil {
			return fmt.Errorf("extra dc fields are %w", err)
		}
		dc = utils.MergeMaps(dc, req.Extra)
	}

	s.dc = dc
	return nil
}

// affiliationsFor resolves the affiliation set of author i out of n.
// A group count equal to n assigns positionally; anything else flattens
// the whole value and applies it identically to every author.
func affiliationsFor(groups [][]string, n, i int) []string {
	if len(groups) == 0 {
		return nil
	}
	if len(groups) == n {
		return groups[i]
	}
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
