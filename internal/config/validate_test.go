package config

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/tisgen/internal/jsondoc"
	"github.com/AndreyAkinshin/tisgen/internal/machdep"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()
	err := &ValidationError{Field: "machdeps", Message: "bad"}
	if got := err.Error(); got != "machdeps: bad" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(s *Settings)
		field  string
	}{
		{"empty project dir", func(s *Settings) { s.ProjectDir = "" }, "project_dir"},
		{"empty main test file", func(s *Settings) { s.MainTest.File = "" }, "main_test.file"},
		{"absolute common config", func(s *Settings) { s.CommonConfig = "/abs/common.config" }, "common_config"},
		{"no machdeps", func(s *Settings) { s.Machdeps = nil }, "machdeps"},
		{
			"machdep redefines key",
			func(s *Settings) {
				s.Machdeps = []machdep.Profile{{Name: "a", PrettyName: "A", Fields: jsondoc.New("machdep", "b")}}
			},
			"machdeps",
		},
		{"invalid function", func(s *Settings) { s.Examples.Functions = []string{"bad-name"} }, "examples.functions[0]"},
		{"duplicate function", func(s *Settings) { s.Examples.Functions = []string{"a", "b", "a"} }, "examples.functions[2]"},
		{"no common files", func(s *Settings) { s.Common.Files = nil }, "common.files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			_, err := Validate(s)
			if err == nil {
				t.Fatal("expected error")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestValidate_UnknownCommonMachdepWarns(t *testing.T) {
	t.Parallel()
	s := Default()
	s.Common.Machdep = "gcc_arm"

	warnings, err := Validate(s)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], `"gcc_arm"`) {
		t.Errorf("warnings = %v", warnings)
	}
}
