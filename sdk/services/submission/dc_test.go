// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/matconnect/connect-cli-sdk/sdk/services/submission"
)

func TestCreateDCBlockFull(t *testing.T) {
	svc := newService(t, "http://localhost")

	err := svc.CreateDCBlock(submission.DCBlockRequest{
		Titles:          []string{"Connect Title"},
		Authors:         []string{"Data Facility, Materials"},
		Affiliations:    [][]string{{"UChicago"}},
		Publisher:       "Globus",
		PublicationYear: "2017",
		ResourceType:    "Dataset",
		Description:     "This is a test",
		DatasetDOI:      "10.555",
		RelatedDOIs:     []string{"10.5555"},
		Subjects:        []string{"Science"},
		Extra:           map[string]interface{}{"other": 5},
	})
	if err != nil {
		t.Fatalf("CreateDCBlock failed: %v", err)
	}

	want := map[string]interface{}{
		"titles": []interface{}{
			map[string]interface{}{"title": "Connect Title"},
		},
		"creators": []interface{}{
			map[string]interface{}{
				"creatorName":  "Data Facility, Materials",
				"familyName":   "Data Facility",
				"givenName":    "Materials",
				"affiliations": []string{"UChicago"},
			},
		},
		"publisher":       "Globus",
		"publicationYear": "2017",
		"resourceType": map[string]interface{}{
			"resourceTypeGeneral": "Dataset",
			"resourceType":        "Dataset",
		},
		"descriptions": []interface{}{
			map[string]interface{}{
				"description":     "This is a test",
				"descriptionType": "Other",
			},
		},
		"identifier": map[string]interface{}{
			"identifier":     "10.555",
			"identifierType": "DOI",
		},
		"relatedIdentifiers": []interface{}{
			map[string]interface{}{
				"relatedIdentifier":     "10.5555",
				"relatedIdentifierType": "DOI",
				"relationType":          "IsPartOf",
			},
		},
		"subjects": []interface{}{
			map[string]interface{}{"subject": "Science"},
		},
		"other": 5,
	}
	if got := svc.Submission().DC; !reflect.DeepEqual(got, want) {
		t.Fatalf("dc block mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestCreateDCBlockMinimumDefaults(t *testing.T) {
	svc := newService(t, "http://localhost")

	if err := svc.CreateDCBlock(submission.DCBlockRequest{
		Titles:  []string{"Project One"},
		Authors: []string{"Artemis Moonshot", "Landing, Apollo"},
	}); err != nil {
		t.Fatalf("CreateDCBlock failed: %v", err)
	}

	dc := svc.Submission().DC
	if dc["publisher"] != "Materials Data Facility" {
		t.Errorf("publisher = %v, want default", dc["publisher"])
	}
	if dc["publicationYear"] != strconv.Itoa(time.Now().Year()) {
		t.Errorf("publicationYear = %v, want current year", dc["publicationYear"])
	}
	creators := dc["creators"].([]interface{})
	first := creators[0].(map[string]interface{})
	if first["creatorName"] != "Moonshot, Artemis" {
		t.Errorf("creatorName = %v, want 'Moonshot, Artemis'", first["creatorName"])
	}
	if _, ok := first["affiliations"]; ok {
		t.Error("expected no affiliations on creator")
	}
}

func TestCreateDCBlockRequiredFields(t *testing.T) {
	svc := newService(t, "http://localhost")

	for _, req := range []submission.DCBlockRequest{
		{},
		{Titles: []string{"T"}},
		{Authors: []string{"A"}},
	} {
		err := svc.CreateDCBlock(req)
		if !errors.Is(err, submission.ErrMissingRequiredField) {
			t.Errorf("CreateDCBlock(%+v) error = %v, want missing required field", req, err)
		}
	}
}

func TestCreateDCBlockIdempotent(t *testing.T) {
	svc := newService(t, "http://localhost")
	req := submission.DCBlockRequest{
		Titles:       []string{"T1", "T2"},
		Authors:      []string{"Smith, John"},
		Affiliations: [][]string{{"NIST"}},
	}

	if err := svc.CreateDCBlock(req); err != nil {
		t.Fatalf("first CreateDCBlock failed: %v", err)
	}
	first := svc.Submission().DC
	if err := svc.CreateDCBlock(req); err != nil {
		t.Fatalf("second CreateDCBlock failed: %v", err)
	}
	second := svc.Submission().DC

	if !reflect.DeepEqual(first, second) {
		t.Fatal("CreateDCBlock is not idempotent for identical input")
	}
	if len(second["titles"].([]interface{})) != len(req.Titles) {
		t.Fatal("titles length does not match input")
	}
}

func TestAffiliationBroadcastVsZip(t *testing.T) {
	svc := newService(t, "http://localhost")

	// Two groups for three authors: everyone gets the whole value.
	if err := svc.CreateDCBlock(submission.DCBlockRequest{
		Titles:       []string{"T"},
		Authors:      []string{"A, One", "B, Two", "C, Three"},
		Affiliations: [][]string{{"NIST"}, {"UChicago"}},
	}); err != nil {
		t.Fatalf("CreateDCBlock failed: %v", err)
	}
	for i, c := range svc.Submission().DC["creators"].([]interface{}) {
		affs := c.(map[string]interface{})["affiliations"].([]string)
		if !reflect.DeepEqual(affs, []string{"NIST", "UChicago"}) {
			t.Errorf("creator %d affiliations = %v, want full broadcast", i, affs)
		}
	}

	// One group per author: positional assignment.
	if err := svc.CreateDCBlock(submission.DCBlockRequest{
		Titles:       []string{"T"},
		Authors:      []string{"A, One", "B, Two"},
		Affiliations: [][]string{{"NIST"}, {"NIST", "UChicago"}},
	}); err != nil {
		t.Fatalf("CreateDCBlock failed: %v", err)
	}
	creators := svc.Submission().DC["creators"].([]interface{})
	got0 := creators[0].(map[string]interface{})["affiliations"].([]string)
	got1 := creators[1].(map[string]interface{})["affiliations"].([]string)
	if !reflect.DeepEqual(got0, []string{"NIST"}) {
		t.Errorf("creator 0 affiliations = %v, want positional entry", got0)
	}
	if !reflect.DeepEqual(got1, []string{"NIST", "UChicago"}) {
		t.Errorf("creator 1 affiliations = %v, want positional entry", got1)
	}
}

func TestCreateDCBlockExtraDeepMerge(t *testing.T) {
	svc := newService(t, "http://localhost")

	if err := svc.CreateDCBlock(submission.DCBlockRequest{
		Titles:  []string{"T"},
		Authors: []string{"Smith, John"},
		Extra: map[string]interface{}{
			"publisher": "Override Press",
			"resourceType": map[string]interface{}{
				"resourceType": "Model",
			},
		},
	}); err != nil {
		t.Fatalf("CreateDCBlock failed: %v", err)
	}

	dc := svc.Submission().DC
	if dc["publisher"] != "Override Press" {
		t.Errorf("scalar collision: publisher = %v, want extra to win", dc["publisher"])
	}
	rt := dc["resourceType"].(map[string]interface{})
	if rt["resourceType"] != "Model" || rt["resourceTypeGeneral"] != "Dataset" {
		t.Errorf("nested collision: resourceType = %v, want merged maps", rt)
	}
}
