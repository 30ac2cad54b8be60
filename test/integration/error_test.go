package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/tisgen/internal/compdb"
	"github.com/AndreyAkinshin/tisgen/internal/config"
	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/output"
	"github.com/AndreyAkinshin/tisgen/internal/project"
	"github.com/AndreyAkinshin/tisgen/internal/tisconfig"
)

func runGenerator(t *testing.T, root string) (string, error) {
	t.Helper()
	proj, err := project.LoadProjectFrom(root, "")
	if err != nil {
		return "", err
	}
	var stdout, stderr bytes.Buffer
	g := &tisconfig.Generator{
		Root:     proj.Root,
		Settings: proj.Settings,
		Out:      output.NewWithWriters(&stdout, &stderr, false),
	}
	_, err = g.Run()
	return stderr.String(), err
}

func TestMissingProjectDirectory(t *testing.T) {
	t.Parallel()
	stderr, err := runGenerator(t, t.TempDir())
	if errors.GetExitCode(err) != errors.ExitEnvironmentError {
		t.Errorf("exit code = %d, want %d (err = %v)", errors.GetExitCode(err), errors.ExitEnvironmentError, err)
	}
	if !strings.Contains(stderr, "Directory 'trustinsoft' not found.") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMissingInputFile(t *testing.T) {
	t.Parallel()
	root := copyFixture(t, "zip-project")
	if err := os.Remove(filepath.Join(root, "trustinsoft", "inputs", "foo.zip")); err != nil {
		t.Fatal(err)
	}

	stderr, err := runGenerator(t, root)
	if !errors.IsNotFound(err) {
		t.Fatalf("error = %v, want not found", err)
	}
	if !strings.Contains(stderr, "File 'trustinsoft/inputs/foo.zip' not found.") {
		t.Errorf("stderr = %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "tis.config")); !os.IsNotExist(err) {
		t.Error("tis.config written despite missing input")
	}
}

func TestSettingsUnknownKeyError(t *testing.T) {
	t.Parallel()
	root := copyFixture(t, "zip-project")
	settings := filepath.Join(root, "trustinsoft", "regenerate.yaml")
	if err := writeFile(settings, "machdep: gcc_x86_64\n"); err != nil {
		t.Fatal(err)
	}

	_, err := runGenerator(t, root)
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("error = %v, want config error", err)
	}
}

func TestSettingsInvalidYAMLError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "regenerate.yaml")
	if err := writeFile(path, "examples: [unclosed\n"); err != nil {
		t.Fatal(err)
	}

	_, _, err := config.Load(path)
	te, ok := errors.As(err)
	if !ok || te.Kind != errors.KindConfig {
		t.Errorf("error = %v, want KindConfig", err)
	}
}

func TestMalformedCompilationDatabase(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "compile_commands.json")
	if err := writeFile(path, `[{"directory": "build", "file": "a.c"}]`); err != nil {
		t.Fatal(err)
	}

	_, err := compdb.ClassifyFile(path, nil)
	te, ok := errors.As(err)
	if !ok || te.Kind != errors.KindParse {
		t.Fatalf("error = %v, want KindParse", err)
	}
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d", errors.GetExitCode(err))
	}
}
