// Package tisconfig assembles the analyzer configuration files: the shared
// common.config, one config per machdep, and the tis.config test matrix.
package tisconfig

import (
	"fmt"

	"github.com/AndreyAkinshin/tisgen/internal/config"
	"github.com/AndreyAkinshin/tisgen/internal/jsondoc"
	"github.com/AndreyAkinshin/tisgen/internal/machdep"
)

// TestCase is one entry of the test matrix.
type TestCase struct {
	Name     string
	Includes []string // Emitted as repeated "include" keys, in order
	Files    []string
	Main     string // Entry point override; empty keeps the analyzer default
}

// Document returns the test case as an ordered configuration object.
func (tc TestCase) Document() jsondoc.Document {
	doc := jsondoc.New("name", tc.Name)
	for _, inc := range tc.Includes {
		doc = doc.Add("include", inc)
	}
	files := tc.Files
	if files == nil {
		files = []string{}
	}
	doc = doc.Add("files", files)
	if tc.Main != "" {
		doc = doc.Add("main", tc.Main)
	}
	return doc
}

// MarshalJSON encodes the test case through its Document form.
func (tc TestCase) MarshalJSON() ([]byte, error) {
	return tc.Document().MarshalJSON()
}

// BuildSharedConfig returns the contents of the shared configuration file.
func BuildSharedConfig(s config.Settings) jsondoc.Document {
	c := s.Common
	manifest := make([]jsondoc.Document, 0, len(c.Filesystem.Files))
	for _, e := range c.Filesystem.Files {
		entry := jsondoc.New("name", e.Name)
		if e.Type != "" {
			entry = entry.Add("type", e.Type)
		}
		if e.From != "" {
			entry = entry.Add("from", e.From)
		}
		manifest = append(manifest, entry)
	}

	return jsondoc.New(
		"prefix_path", c.PrefixPath,
		"files", nonNil(c.Files),
		"machdep", c.Machdep,
		"cpp-extra-args", nonNil(c.CppExtraArgs),
		"filesystem", jsondoc.New(
			"system_errors", c.Filesystem.SystemErrors,
			"files", manifest,
		),
	)
}

// BuildArchitectureConfig returns {"machdep": p.Name} followed by the
// profile's own fields.
func BuildArchitectureConfig(p machdep.Profile) jsondoc.Document {
	return jsondoc.New(machdep.Key, p.Name).Merge(p.Fields)
}

// BuildTestMatrix returns one main test per machdep followed by one example
// test per (function, machdep) pair, functions in the outer loop.
func BuildTestMatrix(s config.Settings) []TestCase {
	profiles := s.Machdeps
	functions := s.Examples.Functions
	tests := make([]TestCase, 0, len(profiles)+len(functions)*len(profiles))

	for _, p := range profiles {
		tests = append(tests, mainTest(s, p))
	}
	for _, fn := range functions {
		for _, p := range profiles {
			tests = append(tests, exampleTest(s, fn, p))
		}
	}
	return tests
}

func mainTest(s config.Settings, p machdep.Profile) TestCase {
	return TestCase{
		Name:     fmt.Sprintf("%s, %s", s.MainTest.Name, p.PrettyName),
		Includes: []string{s.CommonConfig, p.ConfigPath(s.ProjectDir)},
		Files:    []string{s.MainTest.File},
	}
}

func exampleTest(s config.Settings, fn string, p machdep.Profile) TestCase {
	return TestCase{
		Name:     fmt.Sprintf("%s : %s(), %s", s.Examples.Name, fn, p.PrettyName),
		Includes: []string{s.CommonConfig, p.ConfigPath(s.ProjectDir)},
		Files:    []string{s.Examples.File},
		Main:     fn,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
