// Package machdep describes the target architectures ("machine dependency"
// profiles) the analyzer is run against.
package machdep

import (
	"fmt"
	"path"

	"github.com/AndreyAkinshin/tisgen/internal/jsondoc"
)

// Key is the configuration field that names the machdep. Profiles must not
// set it in Fields.
const Key = "machdep"

// Profile is a named target architecture plus the extra analyzer fields
// needed to analyze code as if compiled for it.
type Profile struct {
	Name       string           `yaml:"machdep" json:"machdep"`
	PrettyName string           `yaml:"pretty_name" json:"pretty_name"`
	Fields     jsondoc.Document `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// ConfigPath returns the slash-separated path of the profile's configuration
// file inside dir.
func (p Profile) ConfigPath(dir string) string {
	return path.Join(dir, p.Name+".config")
}

const unalignedLoadsOff = "-DMINIZ_USE_UNALIGNED_LOADS_AND_STORES=0"

// Defaults returns the built-in profiles in generation order. Each call
// returns fresh values so callers cannot alter each other's profiles.
func Defaults() []Profile {
	return []Profile{
		{
			Name:       "gcc_x86_32",
			PrettyName: "little endian 32-bit (x86)",
			Fields: jsondoc.New(
				"address-alignment", 32,
				"cpp-extra-args", []string{unalignedLoadsOff},
			),
		},
		{
			Name:       "gcc_x86_64",
			PrettyName: "little endian 64-bit (x86)",
			Fields: jsondoc.New(
				"address-alignment", 64,
			),
		},
		{
			Name:       "gcc_ppc_32",
			PrettyName: "big endian 32-bit (PPC32)",
			Fields: jsondoc.New(
				"address-alignment", 32,
				"cpp-extra-args", []string{unalignedLoadsOff},
			),
		},
		{
			Name:       "gcc_ppc_64",
			PrettyName: "big endian 64-bit (PPC64)",
			Fields: jsondoc.New(
				"address-alignment", 64,
				"cpp-extra-args", []string{unalignedLoadsOff},
			),
		},
	}
}

// Validate checks that identifiers are present and unique, display names are
// set, and no profile redefines the machdep key or repeats a field.
func Validate(profiles []Profile) error {
	if len(profiles) == 0 {
		return fmt.Errorf("no machdep profiles defined")
	}
	seen := make(map[string]bool, len(profiles))
	for i, p := range profiles {
		if p.Name == "" {
			return fmt.Errorf("machdeps[%d]: machdep is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("machdeps[%d]: duplicate machdep %q", i, p.Name)
		}
		seen[p.Name] = true
		if p.PrettyName == "" {
			return fmt.Errorf("machdep %q: pretty_name is required", p.Name)
		}
		fields := make(map[string]bool, p.Fields.Len())
		for _, key := range p.Fields.Keys() {
			if key == Key {
				return fmt.Errorf("machdep %q: fields must not redefine %q", p.Name, Key)
			}
			if fields[key] {
				return fmt.Errorf("machdep %q: field %q defined twice", p.Name, key)
			}
			fields[key] = true
		}
	}
	return nil
}

// Names returns the identifiers of profiles, in order.
func Names(profiles []Profile) []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a profile by identifier.
func Lookup(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
