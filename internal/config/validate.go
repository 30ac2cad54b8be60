package config

import (
	"fmt"
	"path"
	"regexp"

	"github.com/AndreyAkinshin/tisgen/internal/machdep"
)

// Entry functions must be plain C identifiers.
var functionNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError represents a settings validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks settings for errors and returns warnings for non-fatal issues.
func Validate(s Settings) (warnings []string, err error) {
	if err := validatePaths(s); err != nil {
		return nil, err
	}

	if err := machdep.Validate(s.Machdeps); err != nil {
		return nil, &ValidationError{Field: "machdeps", Message: err.Error()}
	}

	if err := validateFunctions(s.Examples.Functions); err != nil {
		return nil, err
	}

	if len(s.Common.Files) == 0 {
		return nil, &ValidationError{Field: "common.files", Message: "at least one source file is required"}
	}

	if _, ok := machdep.Lookup(s.Machdeps, s.Common.Machdep); !ok {
		warnings = append(warnings, fmt.Sprintf("common.machdep %q is not one of the generated machdeps %v", s.Common.Machdep, machdep.Names(s.Machdeps)))
	}

	if len(s.Examples.Functions) == 0 {
		warnings = append(warnings, "examples.functions is empty; only the main test will be generated")
	}

	return warnings, nil
}

func validatePaths(s Settings) error {
	required := []struct {
		field, value string
	}{
		{"project_dir", s.ProjectDir},
		{"common_config", s.CommonConfig},
		{"master_config", s.MasterConfig},
		{"main_test.name", s.MainTest.Name},
		{"main_test.file", s.MainTest.File},
		{"examples.name", s.Examples.Name},
		{"examples.file", s.Examples.File},
		{"common.machdep", s.Common.Machdep},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: "must not be empty"}
		}
	}

	for _, p := range []struct{ field, value string }{
		{"project_dir", s.ProjectDir},
		{"common_config", s.CommonConfig},
		{"master_config", s.MasterConfig},
	} {
		if path.IsAbs(p.value) {
			return &ValidationError{Field: p.field, Message: fmt.Sprintf("path %q must be relative to the project root", p.value)}
		}
	}
	return nil
}

func validateFunctions(functions []string) error {
	seen := make(map[string]bool, len(functions))
	for i, fn := range functions {
		if !functionNamePattern.MatchString(fn) {
			return &ValidationError{
				Field:   fmt.Sprintf("examples.functions[%d]", i),
				Message: fmt.Sprintf("%q is not a valid C function name", fn),
			}
		}
		if seen[fn] {
			return &ValidationError{
				Field:   fmt.Sprintf("examples.functions[%d]", i),
				Message: fmt.Sprintf("duplicate function %q", fn),
			}
		}
		seen[fn] = true
	}
	return nil
}
