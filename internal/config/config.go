package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/tisgen/internal/errors"
	"github.com/AndreyAkinshin/tisgen/internal/schema"
)

// Load reads a YAML settings file and overlays it on the defaults. Keys
// absent from the file keep their default value; lists present in the file
// replace the default list entirely.
func Load(path string) (Settings, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, nil, errors.Wrap(err, fmt.Sprintf("failed to read settings file '%s'", path))
	}
	return Parse(path, data)
}

// Parse is Load for data already in memory. path is only used in messages.
func Parse(path string, data []byte) (Settings, []string, error) {
	if err := validateAgainstSchema(path, data); err != nil {
		return Settings{}, nil, err
	}

	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, nil, &errors.TisgenError{
			Kind:    errors.KindConfig,
			Message: fmt.Sprintf("failed to parse settings file '%s'", path),
			Path:    path,
			Cause:   err,
		}
	}

	warnings, err := Validate(settings)
	if err != nil {
		return Settings{}, warnings, &errors.TisgenError{
			Kind:    errors.KindValidation,
			Message: fmt.Sprintf("invalid settings in '%s'", path),
			Path:    path,
			Cause:   err,
		}
	}
	return settings, warnings, nil
}

// LoadForProject returns the settings for the project rooted at root. An
// explicit path must exist; otherwise trustinsoft/regenerate.yaml is used when
// present and the defaults when it is not.
func LoadForProject(root, path string) (Settings, []string, error) {
	if path != "" {
		return Load(path)
	}

	defaultPath := filepath.Join(root, filepath.FromSlash(DefaultSettingsFile))
	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		settings := Default()
		warnings, err := Validate(settings)
		return settings, warnings, err
	}
	return Load(defaultPath)
}

// validateAgainstSchema decodes YAML into a generic tree, converts it to JSON
// and checks it against the embedded settings schema.
func validateAgainstSchema(path string, data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &errors.TisgenError{
			Kind:    errors.KindConfig,
			Message: fmt.Sprintf("failed to parse settings file '%s'", path),
			Path:    path,
			Cause:   err,
		}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return &errors.TisgenError{
			Kind:    errors.KindConfig,
			Message: fmt.Sprintf("settings file '%s' is not representable as JSON", path),
			Path:    path,
			Cause:   err,
		}
	}

	if err := schema.ValidateSettings(jsonData); err != nil {
		return errors.Validation(path, err)
	}
	return nil
}
