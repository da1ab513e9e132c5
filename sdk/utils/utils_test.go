// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package utils_test

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matconnect/connect-cli-sdk/sdk/utils"
)

func TestMergeMaps(t *testing.T) {
	base := map[string]interface{}{
		"scalar": 1,
		"nested": map[string]interface{}{"keep": "a", "replace": "b"},
		"only":   true,
	}
	override := map[string]interface{}{
		"scalar": 2,
		"nested": map[string]interface{}{"replace": "c", "add": "d"},
		"extra":  "e",
	}

	got := utils.MergeMaps(base, override)
	want := map[string]interface{}{
		"scalar": 2,
		"nested": map[string]interface{}{"keep": "a", "replace": "c", "add": "d"},
		"only":   true,
		"extra":  "e",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MergeMaps = %v, want %v", got, want)
	}

	// Inputs stay untouched.
	if base["scalar"] != 1 || base["nested"].(map[string]interface{})["replace"] != "b" {
		t.Fatal("base was mutated")
	}
	if len(override["nested"].(map[string]interface{})) != 2 {
		t.Fatal("override was mutated")
	}
}

func TestMergeMapsTypeCollision(t *testing.T) {
	base := map[string]interface{}{"k": map[string]interface{}{"a": 1}}
	override := map[string]interface{}{"k": "flat"}
	got := utils.MergeMaps(base, override)
	if got["k"] != "flat" {
		t.Fatalf("got %v, a non-map override must win wholesale", got["k"])
	}
}

func TestValidateJSON(t *testing.T) {
	if err := utils.ValidateJSON(map[string]interface{}{"ok": []int{1, 2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := utils.ValidateJSON(map[string]interface{}{"bad": math.NaN()})
	if err == nil || !strings.Contains(err.Error(), "not JSON compliant") {
		t.Fatalf("err = %v", err)
	}
	if err := utils.ValidateJSON(map[string]interface{}{"bad": math.Inf(1)}); err == nil {
		t.Fatal("infinity must be rejected")
	}
}

func TestToMap(t *testing.T) {
	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
		Skip  string `json:"skip,omitempty"`
	}
	m, err := utils.ToMap(doc{Name: "x", Count: 3})
	if err != nil {
		t.Fatalf("ToMap failed: %v", err)
	}
	if m["name"] != "x" || m["count"] != float64(3) {
		t.Fatalf("m = %v", m)
	}
	if _, ok := m["skip"]; ok {
		t.Fatal("omitempty field leaked into the map")
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(yamlPath, []byte("dc:\n  publisher: MDF\ntags:\n  - a\n  - b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := utils.LoadDocument(yamlPath)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	dc, _ := m["dc"].(map[string]interface{})
	if dc["publisher"] != "MDF" {
		t.Fatalf("m = %v", m)
	}
	tags, _ := m["tags"].([]interface{})
	if len(tags) != 2 || tags[0] != "a" {
		t.Fatalf("tags = %v", tags)
	}

	// JSON is a subset of YAML, so a JSON document loads the same way.
	jsonPath := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(jsonPath, []byte(`{"dc": {"publisher": "MDF"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := utils.LoadDocument(jsonPath); err != nil {
		t.Fatalf("JSON document failed: %v", err)
	}

	if _, err := utils.LoadDocument(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPrettyJSON(t *testing.T) {
	got := utils.PrettyJSON([]byte(`{"a":1}`))
	if !strings.Contains(got, "\n") || !strings.Contains(got, `"a": 1`) {
		t.Fatalf("PrettyJSON = %q", got)
	}
	if got := utils.PrettyJSON([]byte("not json")); got != "not json" {
		t.Fatalf("PrettyJSON fallback = %q", got)
	}
}
