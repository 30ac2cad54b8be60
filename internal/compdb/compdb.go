// Package compdb reads, normalizes and summarizes compilation databases
// (compile_commands.json files).
package compdb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/jsondoc"
)

// Record is one compiler invocation of a compilation database.
type Record struct {
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Output    string   `json:"output,omitempty"`
}

// Args returns the argument vector of the invocation. Records that only carry
// a shell command string have it split with shell quoting rules.
func (r Record) Args() ([]string, error) {
	if len(r.Arguments) > 0 || r.Command == "" {
		return r.Arguments, nil
	}
	return shellquote.Split(r.Command)
}

// argv is Args for callers that cannot report errors. Parse rejects commands
// that fail to split, so the fallback only applies to hand-built records.
func (r Record) argv() []string {
	args, err := r.Args()
	if err != nil {
		return strings.Fields(r.Command)
	}
	return args
}

// sortKey orders records by directory, then file, then arguments.
func (r Record) sortKey() string {
	return r.Directory + " " + r.File + " " + strings.Join(r.argv(), " ")
}

// Parse decodes a compilation database. path is only used in error messages.
func Parse(path string, data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.MalformedLog(path, err)
	}
	for i, r := range records {
		if len(r.Arguments) == 0 && r.Command == "" {
			return nil, errors.MalformedLog(path, fmt.Errorf("entry %d (%s): either arguments or command is required", i, r.File))
		}
		if _, err := r.Args(); err != nil {
			return nil, errors.MalformedLog(path, fmt.Errorf("entry %d (%s): %w", i, r.File, err))
		}
	}
	return records, nil
}

// Load reads and decodes the compilation database at path.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingFile(path)
		}
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read '%s'", path))
	}
	return Parse(path, data)
}

// Save overwrites path with records, pretty-printed with 4-space indentation.
func Save(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	if err := jsondoc.WriteFile(path, records); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to save '%s'", path))
	}
	return nil
}

// Normalize returns a copy of records sorted by (directory, file, arguments).
// Equal keys keep their relative order, so the result is deterministic and
// normalizing twice changes nothing.
func Normalize(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].sortKey() < sorted[j].sortKey()
	})
	return sorted
}

// NormalizeFile rewrites the compilation database at path in normalized order.
func NormalizeFile(path string) error {
	records, err := Load(path)
	if err != nil {
		return err
	}
	return Save(path, Normalize(records))
}
