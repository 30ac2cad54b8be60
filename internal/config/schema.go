// Package config provides the generator settings: built-in defaults and the
// optional trustinsoft/regenerate.yaml override file.
package config

import (
	"github.com/AndreyAkinshin/tisgen/internal/machdep"
)

// Settings is the complete, immutable description of what the generator
// produces. Paths are slash-separated and relative to the project root.
type Settings struct {
	ProjectDir   string            `yaml:"project_dir" json:"project_dir"`
	CommonConfig string            `yaml:"common_config" json:"common_config"`
	MasterConfig string            `yaml:"master_config" json:"master_config"`
	MainTest     TestSource        `yaml:"main_test" json:"main_test"`
	Examples     ExampleSource     `yaml:"examples" json:"examples"`
	Common       CommonConfig      `yaml:"common" json:"common"`
	Machdeps     []machdep.Profile `yaml:"machdeps" json:"machdeps"`
}

// TestSource is a C source file run as one test per machdep.
type TestSource struct {
	Name string `yaml:"name" json:"name"` // Label used in test names
	File string `yaml:"file" json:"file"`
}

// ExampleSource is a C source file holding several entry functions, each run
// as its own test per machdep.
type ExampleSource struct {
	Name      string   `yaml:"name" json:"name"`
	File      string   `yaml:"file" json:"file"`
	Functions []string `yaml:"functions" json:"functions"`
}

// CommonConfig describes trustinsoft/common.config.
type CommonConfig struct {
	PrefixPath   string           `yaml:"prefix_path" json:"prefix_path"`
	Files        []string         `yaml:"files" json:"files"`
	Machdep      string           `yaml:"machdep" json:"machdep"`
	CppExtraArgs []string         `yaml:"cpp_extra_args" json:"cpp_extra_args"`
	Filesystem   FilesystemConfig `yaml:"filesystem" json:"filesystem"`
}

// FilesystemConfig is the simulated filesystem the analyzer exposes to the
// program under test.
type FilesystemConfig struct {
	SystemErrors bool              `yaml:"system_errors" json:"system_errors"`
	Files        []FilesystemEntry `yaml:"files" json:"files"`
}

// FilesystemEntry is one virtual path. An entry with From is a copy of a
// real input file; Type "dir" makes it a directory; neither makes it an empty
// file.
type FilesystemEntry struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	From string `yaml:"from,omitempty" json:"from,omitempty"`
}

// Inputs returns the real files referenced by the filesystem manifest, in
// manifest order and without duplicates.
func (fs FilesystemConfig) Inputs() []string {
	seen := make(map[string]bool)
	var inputs []string
	for _, e := range fs.Files {
		if e.From == "" || seen[e.From] {
			continue
		}
		seen[e.From] = true
		inputs = append(inputs, e.From)
	}
	return inputs
}
