package testhelper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// CompareBytes reports whether actual is byte-identical to expected. When it
// is not, the second result is a line diff (-expected +actual).
func CompareBytes(expected, actual []byte) (bool, string) {
	if string(expected) == string(actual) {
		return true, ""
	}
	return false, cmp.Diff(strings.Split(string(expected), "\n"), strings.Split(string(actual), "\n"))
}

// CompareJSON decodes both documents and compares the resulting values, so
// formatting differences are ignored.
func CompareJSON(expected, actual []byte) (bool, string, error) {
	var want, got any
	if err := json.Unmarshal(expected, &want); err != nil {
		return false, "", err
	}
	if err := json.Unmarshal(actual, &got); err != nil {
		return false, "", err
	}
	diff := cmp.Diff(want, got)
	return diff == "", diff, nil
}

// CompareGoldenDir compares every file of goldenDir with the generated file
// of the same base name; actual maps base names to paths. It returns one diff
// per mismatched or missing file, keyed by base name.
func CompareGoldenDir(goldenDir string, actual map[string]string) (map[string]string, error) {
	entries, err := os.ReadDir(goldenDir)
	if err != nil {
		return nil, err
	}

	diffs := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		expected, err := os.ReadFile(filepath.Join(goldenDir, name))
		if err != nil {
			return nil, err
		}
		path, ok := actual[name]
		if !ok {
			diffs[name] = "not generated"
			continue
		}
		got, err := os.ReadFile(path)
		if err != nil {
			diffs[name] = err.Error()
			continue
		}
		if ok, diff := CompareBytes(expected, got); !ok {
			diffs[name] = diff
		}
	}
	return diffs, nil
}
