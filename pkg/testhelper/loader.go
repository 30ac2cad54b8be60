// Package testhelper loads the JSON test case suites and golden files used
// by tisgen's integration tests.
//
// A suite is a directory of <name>.json files, each holding one case:
//
//	{
//	    "description": "absolute directories are made relative",
//	    "input": {...},
//	    "output": {...}
//	}
//
// Input and output stay raw so each test decodes them into its own types:
//
//	cases, err := testhelper.LoadTestSuite(filepath.Join(fixtures, "compdb"), "classify")
//	for _, tc := range cases {
//	    t.Run(tc.Name, func(t *testing.T) {
//	        var in classifyInput
//	        if err := tc.DecodeInput(&in); err != nil {
//	            t.Fatal(err)
//	        }
//	        ...
//	    })
//	}
package testhelper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TestCase represents a single test case loaded from a JSON file.
type TestCase struct {
	// Name is the test case name (derived from filename).
	Name string `json:"-"`

	// Suite is the test suite name (directory name).
	Suite string `json:"-"`

	// Input contains the input data for the test.
	Input json.RawMessage `json:"input"`

	// Output contains the expected output.
	Output json.RawMessage `json:"output"`

	// Description provides optional documentation.
	Description string `json:"description,omitempty"`

	// Skip marks the test as skipped if true.
	Skip bool `json:"skip,omitempty"`
}

// DecodeInput unmarshals the case input into v.
func (tc TestCase) DecodeInput(v any) error {
	return decodeStrict(tc.Input, v)
}

// DecodeOutput unmarshals the expected output into v.
func (tc TestCase) DecodeOutput(v any) error {
	return decodeStrict(tc.Output, v)
}

func decodeStrict(data json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// LoadTestSuite loads all test cases from <dir>/<suite>/*.json, ordered by
// file name.
func LoadTestSuite(dir, suite string) ([]TestCase, error) {
	files, err := filepath.Glob(filepath.Join(dir, suite, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("test suite %q has no cases in %s", suite, dir)
	}
	sort.Strings(files)

	cases := make([]TestCase, 0, len(files))
	for _, f := range files {
		tc, err := LoadTestCase(f)
		if err != nil {
			return nil, err
		}
		tc.Suite = suite
		cases = append(cases, *tc)
	}
	return cases, nil
}

// LoadTestCase loads a single test case from a JSON file. Both input and
// output are required.
func LoadTestCase(path string) (*TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tc TestCase
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(tc.Input) == 0 {
		return nil, fmt.Errorf("%s: missing \"input\"", path)
	}
	if len(tc.Output) == 0 {
		return nil, fmt.Errorf("%s: missing \"output\"", path)
	}

	tc.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	return &tc, nil
}
