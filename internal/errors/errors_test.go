package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTisgenError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TisgenError
		expected string
	}{
		{
			name:     "message only",
			err:      &TisgenError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with cause",
			err:      &TisgenError{Message: "write failed", Cause: errors.New("disk full")},
			expected: "write failed: disk full",
		},
		{
			name:     "path is not repeated",
			err:      MissingDirectory("trustinsoft"),
			expected: "Directory 'trustinsoft' not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTisgenError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &TisgenError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := &TisgenError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestTisgenError_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		expected int
	}{
		{"runtime", KindRuntime, ExitRuntimeError},
		{"config", KindConfig, ExitConfigError},
		{"validation", KindValidation, ExitConfigError},
		{"parse", KindParse, ExitConfigError},
		{"not found", KindNotFound, ExitEnvironmentError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &TisgenError{Kind: tt.kind}
			if got := err.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *TisgenError
		kind ErrorKind
		path string
	}{
		{"New", New("x"), KindRuntime, ""},
		{"Newf", Newf("x %d", 1), KindRuntime, ""},
		{"Config", Config("x"), KindConfig, ""},
		{"Configf", Configf("x %s", "y"), KindConfig, ""},
		{"Validation", Validation("tis.config", cause), KindValidation, "tis.config"},
		{"Wrap", Wrap(cause, "x"), KindRuntime, ""},
		{"MissingDirectory", MissingDirectory("trustinsoft"), KindNotFound, "trustinsoft"},
		{"MissingFile", MissingFile("trustinsoft/inputs/foo.zip"), KindNotFound, "trustinsoft/inputs/foo.zip"},
		{"MalformedLog", MalformedLog("compile_commands.json", cause), KindParse, "compile_commands.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Path != tt.path {
				t.Errorf("Path = %q, want %q", tt.err.Path, tt.path)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf("error %d: %s", 42, "details")
	if err.Message != "error 42: details" {
		t.Errorf("Message = %q, want %q", err.Message, "error 42: details")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("plain"), ExitRuntimeError},
		{"missing directory", MissingDirectory("trustinsoft"), ExitEnvironmentError},
		{"malformed log", MalformedLog("cc.json", errors.New("eof")), ExitConfigError},
		{"wrapped", fmt.Errorf("regenerate: %w", MissingFile("a")), ExitEnvironmentError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("check: %w", MissingDirectory("x"))) {
		t.Error("IsNotFound() = false for wrapped MissingDirectory")
	}
	if IsNotFound(Config("x")) {
		t.Error("IsNotFound() = true for config error")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) = true")
	}
}
