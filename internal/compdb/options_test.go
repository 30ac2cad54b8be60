package compdb

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyFrom(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		base    string
		records []Record
		want    Options
	}{
		{
			name: "file in record directory",
			records: []Record{
				{Directory: "build/sub", File: "a.c", Arguments: []string{"-DFOO", "-Ifoo/bar"}},
			},
			want: Options{
				Defines:   []string{"FOO"},
				Includes:  []string{"../build/sub/foo/bar"},
				Undefines: []string{},
			},
		},
		{
			name: "file in subdirectory gives two include paths",
			records: []Record{
				{Directory: "build", File: "src/a.c", Arguments: []string{"cc", "-Iinc", "-UNDEBUG", "-c", "src/a.c"}},
			},
			want: Options{
				Defines:   []string{},
				Includes:  []string{"../build/inc", "../build/src/inc"},
				Undefines: []string{"NDEBUG"},
			},
		},
		{
			name: "absolute directory is made relative to base",
			base: "/work/project",
			records: []Record{
				{Directory: "/work/project/build", File: "a.c", Arguments: []string{"-I../include"}},
			},
			want: Options{
				Defines:   []string{},
				Includes:  []string{"../include"},
				Undefines: []string{},
			},
		},
		{
			name: "absolute include path is kept",
			records: []Record{
				{Directory: "build", File: "a.c", Arguments: []string{"-I/usr/include"}},
			},
			want: Options{
				Defines:   []string{},
				Includes:  []string{"/usr/include"},
				Undefines: []string{},
			},
		},
		{
			name: "duplicates collapse and output is sorted",
			records: []Record{
				{Directory: ".", File: "b.c", Arguments: []string{"-DB", "-DA=1", "-O2", "-W", "-DB"}},
				{Directory: ".", File: "a.c", Command: "cc -DA=1 -DC -o a.o a.c"},
			},
			want: Options{
				Defines:   []string{"A=1", "B", "C"},
				Includes:  []string{},
				Undefines: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFrom(tt.base, tt.records, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClassifyFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyFrom_Seed(t *testing.T) {
	t.Parallel()
	seed := &Options{
		Defines:   []string{"SEEDED", "FOO"},
		Includes:  []string{"../src"},
		Undefines: []string{"OLD"},
	}
	records := []Record{
		{Directory: ".", File: "a.c", Arguments: []string{"-DFOO", "-UNEW", "-Isrc"}},
	}

	got := ClassifyFrom("", records, seed)
	want := Options{
		Defines:   []string{"FOO", "SEEDED"},
		Includes:  []string{"../src"},
		Undefines: []string{"NEW", "OLD"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClassifyFrom() mismatch (-want +got):\n%s", diff)
	}

	// The seed itself is not modified.
	if len(seed.Defines) != 2 || seed.Defines[0] != "SEEDED" {
		t.Errorf("seed modified: %+v", seed)
	}
}

func TestClassifyFile(t *testing.T) {
	t.Parallel()
	path := writeDB(t, `[{"directory": "build", "file": "a.c", "arguments": ["-DX", "-Iinc"]}]`)

	got, err := ClassifyFile(path, nil)
	if err != nil {
		t.Fatalf("ClassifyFile() error = %v", err)
	}
	if diff := cmp.Diff([]string{"X"}, got.Defines); diff != "" {
		t.Errorf("Defines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"../build/inc"}, got.Includes); diff != "" {
		t.Errorf("Includes mismatch (-want +got):\n%s", diff)
	}

	if _, err := ClassifyFile(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Error("ClassifyFile(missing) returned no error")
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Options
		want Options
	}{
		{
			name: "disjoint sets are a simple union",
			a:    Options{Defines: []string{"A"}, Undefines: []string{"U1"}, Includes: []string{"i1"}},
			b:    Options{Defines: []string{"B"}, Undefines: []string{"U2"}, Includes: []string{"i2"}},
			want: Options{Defines: []string{"A", "B"}, Undefines: []string{"U1", "U2"}, Includes: []string{"i1", "i2"}},
		},
		{
			name: "newer undefine drops older define",
			a:    Options{Defines: []string{"X"}},
			b:    Options{Undefines: []string{"X"}},
			want: Options{Defines: []string{}, Undefines: []string{"X"}, Includes: []string{}},
		},
		{
			name: "newer define drops older undefine",
			a:    Options{Undefines: []string{"X"}},
			b:    Options{Defines: []string{"X"}},
			want: Options{Defines: []string{"X"}, Undefines: []string{}, Includes: []string{}},
		},
		{
			name: "survivors of the older set come first",
			a:    Options{Defines: []string{"M", "Z"}},
			b:    Options{Defines: []string{"A", "Z"}},
			want: Options{Defines: []string{"M", "Z", "A"}, Undefines: []string{}, Includes: []string{}},
		},
		{
			name: "include paths are unioned and sorted",
			a:    Options{Includes: []string{"../b", "../a"}},
			b:    Options{Includes: []string{"../a", "../c"}},
			want: Options{Defines: []string{}, Undefines: []string{}, Includes: []string{"../a", "../b", "../c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Union(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Union() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnion_NoDefineAlsoUndefined(t *testing.T) {
	t.Parallel()
	a := Options{Defines: []string{"A", "B", "C"}, Undefines: []string{"D", "E"}}
	b := Options{Defines: []string{"D", "F"}, Undefines: []string{"A", "G"}}

	got := Union(a, b)
	undefined := newSet(got.Undefines...)
	for _, d := range got.Defines {
		if _, ok := undefined[d]; ok {
			t.Errorf("%q is both defined and undefined in %+v", d, got)
		}
	}
}

func TestOptions_String(t *testing.T) {
	t.Parallel()
	o := Options{
		Defines:   []string{"HAVE_OPEN", "X=1"},
		Includes:  []string{"../src"},
		Undefines: []string{"NDEBUG"},
	}
	if got, want := o.String(), "-DHAVE_OPEN -DX=1 -UNDEBUG -I../src"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Options{}).String(); got != "" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestOptions_JSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(Options{Defines: []string{"A"}, Includes: []string{"i"}, Undefines: []string{"U"}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `{"-D":["A"],"-I":["i"],"-U":["U"]}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
