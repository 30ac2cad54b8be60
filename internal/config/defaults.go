package config

import (
	"github.com/AndreyAkinshin/tisgen/internal/machdep"
)

// Default configuration values.
const (
	DefaultProjectDir     = "trustinsoft"
	DefaultCommonConfig   = "trustinsoft/common.config"
	DefaultMasterConfig   = "tis.config"
	DefaultSettingsFile   = "trustinsoft/regenerate.yaml"
	DefaultMainTestName   = "test.c"
	DefaultMainTestFile   = "test/test.c"
	DefaultExamplesName   = "examples.c"
	DefaultExamplesFile   = "trustinsoft/examples.c"
	DefaultPrefixPath     = ".."
	DefaultCommonMachdep  = "gcc_x86_64"
	DefaultSystemErrors   = false
	defaultInputsDir      = "trustinsoft/inputs/"
	defaultCompressFolder = "compress_me/"
)

// DefaultExampleFunctions are the entry points defined in trustinsoft/examples.c.
func DefaultExampleFunctions() []string {
	return []string{
		"create",
		"append",
		"extract_into_a_folder",
		"extract_into_memory",
		"extract_into_memory_no_allocation",
		"extract_entry_into_a_file",
		"list_all_entries",
		"compress_folder_recursively",
	}
}

// Default returns the settings used when no override file exists. Each call
// builds fresh values.
func Default() Settings {
	return Settings{
		ProjectDir:   DefaultProjectDir,
		CommonConfig: DefaultCommonConfig,
		MasterConfig: DefaultMasterConfig,
		MainTest: TestSource{
			Name: DefaultMainTestName,
			File: DefaultMainTestFile,
		},
		Examples: ExampleSource{
			Name:      DefaultExamplesName,
			File:      DefaultExamplesFile,
			Functions: DefaultExampleFunctions(),
		},
		Common: CommonConfig{
			PrefixPath: DefaultPrefixPath,
			Files: []string{
				"trustinsoft/stub.c",
				"src/zip.c",
			},
			Machdep: DefaultCommonMachdep,
			CppExtraArgs: []string{
				"-Isrc",
				"-DMINIZ_NO_TIME",
			},
			Filesystem: FilesystemConfig{
				SystemErrors: DefaultSystemErrors,
				Files:        defaultFilesystem(),
			},
		},
		Machdeps: machdep.Defaults(),
	}
}

func defaultFilesystem() []FilesystemEntry {
	return []FilesystemEntry{
		{Name: "/dev/null"},
		{Name: "./dotfiles", Type: "dir"},
		{Name: "/tmp", Type: "dir"},
		{Name: "foo.zip", From: defaultInputsDir + "foo.zip"},
		{Name: "foo-2.1.txt", From: defaultInputsDir + "foo-2.1.txt"},
		{Name: "foo-2.2.txt", From: defaultInputsDir + "foo-2.2.txt"},
		{Name: "foo-2.3.txt", From: defaultInputsDir + "foo-2.3.txt"},
		{Name: defaultCompressFolder + "I_want_to_be_compressed.txt", From: defaultInputsDir + "foo-2.1.txt"},
		{Name: defaultCompressFolder + "compression_is_my_destiny.txt", From: defaultInputsDir + "foo-2.2.txt"},
		{Name: defaultCompressFolder + "compress_me_too/I_am_the_biggest_fan_of_compression.txt", From: defaultInputsDir + "foo-2.3.txt"},
	}
}
