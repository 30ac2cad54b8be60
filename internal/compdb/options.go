package compdb

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Option prefixes recognized by Classify.
const (
	DefinePrefix   = "-D"
	UndefinePrefix = "-U"
	IncludePrefix  = "-I"
)

// Options are the preprocessor options of a build, partitioned by kind.
// Each list is free of duplicates.
type Options struct {
	Defines   []string `json:"-D"`
	Includes  []string `json:"-I"`
	Undefines []string `json:"-U"`
}

// Flags renders the options as compiler flags: defines, then undefines, then
// include paths.
func (o Options) Flags() []string {
	flags := make([]string, 0, len(o.Defines)+len(o.Undefines)+len(o.Includes))
	for _, v := range o.Defines {
		flags = append(flags, DefinePrefix+v)
	}
	for _, v := range o.Undefines {
		flags = append(flags, UndefinePrefix+v)
	}
	for _, v := range o.Includes {
		flags = append(flags, IncludePrefix+v)
	}
	return flags
}

// String renders the options as a single command line fragment.
func (o Options) String() string {
	return strings.Join(o.Flags(), " ")
}

// Classify collects the -D, -U and -I options of every record. Include
// directories are recorded twice, resolved against the record directory and
// against the directory of the compiled file, both seen from one level above
// the working directory. Classification starts from seed when it is non-nil.
func Classify(records []Record, seed *Options) Options {
	base, err := os.Getwd()
	if err != nil {
		base = ""
	}
	return ClassifyFrom(base, records, seed)
}

// ClassifyFrom is Classify with absolute record directories made relative to
// base instead of the working directory.
func ClassifyFrom(base string, records []Record, seed *Options) Options {
	defines := newSet()
	undefines := newSet()
	includes := newSet()
	if seed != nil {
		defines.add(seed.Defines...)
		undefines.add(seed.Undefines...)
		includes.add(seed.Includes...)
	}

	for _, r := range records {
		dir := relativeTo(base, r.Directory)
		fileDir := joinPath(dir, filepath.Dir(r.File))
		for _, arg := range r.argv() {
			if len(arg) < 2 {
				continue
			}
			prefix, value := arg[:2], arg[2:]
			switch prefix {
			case DefinePrefix:
				defines.add(value)
			case UndefinePrefix:
				undefines.add(value)
			case IncludePrefix:
				includes.add(
					filepath.ToSlash(joinPath("..", dir, value)),
					filepath.ToSlash(joinPath("..", fileDir, value)),
				)
			}
		}
	}

	return Options{
		Defines:   defines.sorted(),
		Includes:  includes.sorted(),
		Undefines: undefines.sorted(),
	}
}

// ClassifyFile loads the compilation database at path and classifies it.
func ClassifyFile(path string, seed *Options) (Options, error) {
	records, err := Load(path)
	if err != nil {
		return Options{}, err
	}
	return Classify(records, seed), nil
}

// Union merges two option sets. b is the newer build: a define of a that b
// undefines is dropped, and an undefine of a that b defines is dropped.
// Survivors of a come first, then the remaining values of b, each part
// sorted. Include paths are a plain sorted union.
func Union(a, b Options) Options {
	d1 := newSet(a.Defines...).minus(newSet(b.Undefines...)).sorted()
	d2 := newSet(b.Defines...).minus(newSet(d1...)).sorted()

	u1 := newSet(a.Undefines...).minus(newSet(b.Defines...)).sorted()
	u2 := newSet(b.Undefines...).minus(newSet(u1...)).sorted()

	includes := newSet(a.Includes...)
	includes.add(b.Includes...)

	return Options{
		Defines:   append(d1, d2...),
		Includes:  includes.sorted(),
		Undefines: append(u1, u2...),
	}
}

// relativeTo expresses dir relative to base. Relative directories are only
// cleaned.
func relativeTo(base, dir string) string {
	if dir == "" {
		return "."
	}
	if !filepath.IsAbs(dir) || base == "" {
		return filepath.Clean(dir)
	}
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return rel
}

// joinPath joins elements like filepath.Join, except that an absolute element
// discards everything before it.
func joinPath(elems ...string) string {
	result := ""
	for _, e := range elems {
		if filepath.IsAbs(e) {
			result = e
			continue
		}
		result = filepath.Join(result, e)
	}
	return filepath.Clean(result)
}

type stringSet map[string]struct{}

func newSet(values ...string) stringSet {
	s := make(stringSet, len(values))
	s.add(values...)
	return s
}

func (s stringSet) add(values ...string) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

func (s stringSet) minus(other stringSet) stringSet {
	out := make(stringSet, len(s))
	for v := range s {
		if _, ok := other[v]; !ok {
			out[v] = struct{}{}
		}
	}
	return out
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
